package restaurant_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsoto007/nush/internal/api"
	"github.com/jsoto007/nush/internal/devserver"
	"github.com/jsoto007/nush/internal/restaurant"
)

func newPlatform(t *testing.T) *api.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(devserver.New(devserver.SeededCatalog()).Engine())
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL)
}

func TestListAndGet(t *testing.T) {
	svc := restaurant.NewService(newPlatform(t))
	ctx := context.Background()

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	got, err := svc.Get(ctx, listed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, listed[0].Name, got.Name)
	assert.Equal(t, restaurant.StatusActive, got.Status)
}

func TestGetUnknownRestaurant(t *testing.T) {
	svc := restaurant.NewService(newPlatform(t))

	_, err := svc.Get(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}

func TestActiveMenu(t *testing.T) {
	svc := restaurant.NewService(newPlatform(t))
	ctx := context.Background()

	listed, err := svc.List(ctx)
	require.NoError(t, err)

	mn, err := svc.ActiveMenu(ctx, listed[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, mn.Categories)
	require.NotEmpty(t, mn.Categories[0].Items)

	item := mn.Categories[0].Items[0]
	assert.True(t, item.IsActive)
	assert.Positive(t, item.BasePriceCents)
}
