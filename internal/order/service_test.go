package order_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsoto007/nush/internal/api"
	"github.com/jsoto007/nush/internal/auth"
	"github.com/jsoto007/nush/internal/cart"
	"github.com/jsoto007/nush/internal/devserver"
	"github.com/jsoto007/nush/internal/menu"
	"github.com/jsoto007/nush/internal/order"
	"github.com/jsoto007/nush/internal/restaurant"
)

const burgerBarID = "11111111-1111-1111-1111-111111111111"

// checkoutReadyCart signs in, fills a cart, and returns everything needed
// to place an order.
func checkoutReadyCart(t *testing.T) (*api.Client, *cart.Cart) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(devserver.New(devserver.SeededCatalog()).Engine())
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL)
	ctx := context.Background()

	_, err := auth.NewSession(client).Login(ctx, "alice@nush.dev", "password123")
	require.NoError(t, err)

	mn, err := restaurant.NewService(client).ActiveMenu(ctx, burgerBarID)
	require.NoError(t, err)

	var fries menu.Item
	for _, category := range mn.Categories {
		for _, item := range category.Items {
			if item.ID == "item-fries" {
				fries = item
			}
		}
	}
	require.NotEmpty(t, fries.ID)

	store := cart.NewStore(client)
	require.NoError(t, store.AddItem(ctx, burgerBarID, fries, menu.NewSelection(), 2, ""))
	return client, store.Current()
}

func TestConfirmCheckoutAndHistory(t *testing.T) {
	client, current := checkoutReadyCart(t)
	svc := order.NewService(client)
	ctx := context.Background()

	placed, err := svc.ConfirmCheckout(ctx, current.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCreated, placed.Status)
	assert.Equal(t, "usd", placed.Currency)
	assert.Equal(t, current.Totals.TotalCents, placed.Totals.TotalCents)

	history, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, placed.ID, history[0].ID)

	got, err := svc.Get(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, got.ID)
}

func TestConfirmCheckoutUnknownCart(t *testing.T) {
	client, _ := checkoutReadyCart(t)
	svc := order.NewService(client)

	_, err := svc.ConfirmCheckout(context.Background(), "no-such-cart", nil)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}

func TestCancelOrder(t *testing.T) {
	client, current := checkoutReadyCart(t)
	svc := order.NewService(client)
	ctx := context.Background()

	placed, err := svc.ConfirmCheckout(ctx, current.ID, nil)
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, cancelled.Status)

	_, err = svc.Cancel(ctx, placed.ID)
	require.Error(t, err, "cancelling twice is rejected")
}
