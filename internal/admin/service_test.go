package admin_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsoto007/nush/internal/admin"
	"github.com/jsoto007/nush/internal/api"
	"github.com/jsoto007/nush/internal/auth"
	"github.com/jsoto007/nush/internal/devserver"
)

const (
	burgerBarID = "11111111-1111-1111-1111-111111111111"
	burgerMenu  = "menu-burger-bar"
)

func ownerService(t *testing.T) *admin.Service {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(devserver.New(devserver.SeededCatalog()).Engine())
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL)
	_, err := auth.NewSession(client).Login(context.Background(), "owner@nush.dev", "password123")
	require.NoError(t, err)
	return admin.NewService(client)
}

func TestManagedRestaurants(t *testing.T) {
	svc := ownerService(t)

	restaurants, err := svc.ManagedRestaurants(context.Background())
	require.NoError(t, err)
	assert.Len(t, restaurants, 2)
}

func TestUpdateRestaurantSettings(t *testing.T) {
	svc := ownerService(t)

	updated, err := svc.UpdateRestaurant(context.Background(), burgerBarID, map[string]any{
		"name":  "Nush Burger Palace",
		"phone": "555-0199",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nush Burger Palace", updated.Name)
	assert.Equal(t, "555-0199", updated.Phone)
}

func TestStaffRoster(t *testing.T) {
	svc := ownerService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddStaff(ctx, burgerBarID, "chef@nush.dev", "staff"))

	staff, err := svc.ListStaff(ctx, burgerBarID)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "chef@nush.dev", staff[0].Email)

	require.NoError(t, svc.RemoveStaff(ctx, staff[0].ID))

	staff, err = svc.ListStaff(ctx, burgerBarID)
	require.NoError(t, err)
	assert.Empty(t, staff)
}

func TestMenuAuthoring(t *testing.T) {
	svc := ownerService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, burgerMenu, "Desserts", 5)
	require.NoError(t, err)
	require.NotNil(t, category)

	item, err := svc.CreateItem(ctx, burgerMenu, map[string]any{
		"category_id":      category.ID,
		"name":             "Sundae",
		"base_price_cents": 450,
	})
	require.NoError(t, err)
	assert.True(t, item.IsActive)

	group, err := svc.CreateOptionGroup(ctx, item.ID, map[string]any{
		"name":        "Toppings",
		"max_choices": 3,
	})
	require.NoError(t, err)
	require.NotNil(t, group)

	option, err := svc.CreateOption(ctx, group.ID, map[string]any{
		"name":              "Sprinkles",
		"price_delta_cents": 50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), option.PriceDeltaCents)

	renamed, err := svc.UpdateItem(ctx, item.ID, map[string]any{"name": "Hot Fudge Sundae"})
	require.NoError(t, err)
	assert.Equal(t, "Hot Fudge Sundae", renamed.Name)
}

func TestCreateMenuReplacesPublished(t *testing.T) {
	svc := ownerService(t)

	mn, err := svc.CreateMenu(context.Background(), burgerBarID, "Winter Specials")
	require.NoError(t, err)
	assert.Equal(t, "Winter Specials", mn.Name)
	assert.Empty(t, mn.Categories, "a freshly published menu starts empty")
}

func TestStockToggle(t *testing.T) {
	svc := ownerService(t)

	item, err := svc.UpdateStock(context.Background(), "item-fries", false, 0)
	require.NoError(t, err)
	assert.False(t, item.IsActive)
}

func TestImageUpload(t *testing.T) {
	svc := ownerService(t)

	err := svc.UploadRestaurantImage(context.Background(), burgerBarID,
		"storefront.jpg", strings.NewReader("fake-jpeg-bytes"))
	require.NoError(t, err)
}
