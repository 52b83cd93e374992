package devserver

import (
	"context"
	"errors"

	"github.com/jsoto007/nush/internal/menu"
	"github.com/jsoto007/nush/internal/restaurant"
)

var ErrNotFound = errors.New("not found")

// ChargeSettings drive the authoritative tax and fee computation for one
// restaurant.
type ChargeSettings struct {
	TaxRatePercent float64
	FeeFlatCents   int64
	FeeRatePercent float64
}

// CatalogRepository is the fixture store behind the dev server: the
// restaurants and menus the client browses. Handlers depend only on this
// interface; in-memory and Postgres implementations exist.
type CatalogRepository interface {
	Restaurants(ctx context.Context) ([]restaurant.Restaurant, error)
	Restaurant(ctx context.Context, id string) (*restaurant.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id string, fields map[string]any) (*restaurant.Restaurant, error)

	MenuFor(ctx context.Context, restaurantID string) (*menu.Menu, error)
	ReplaceMenu(ctx context.Context, restaurantID string, m *menu.Menu) error

	// FindItem locates a menu item anywhere in the catalog and reports
	// which restaurant it belongs to.
	FindItem(ctx context.Context, itemID string) (*menu.Item, string, error)

	Settings(ctx context.Context, restaurantID string) (ChargeSettings, error)
}

// applyRestaurantFields patches the editable settings-form fields onto a
// restaurant. Unknown keys are ignored.
func applyRestaurantFields(r *restaurant.Restaurant, fields map[string]any) {
	if v, ok := fields["name"].(string); ok && v != "" {
		r.Name = v
	}
	if v, ok := fields["phone"].(string); ok {
		r.Phone = v
	}
	if v, ok := fields["email"].(string); ok {
		r.Email = v
	}
	if v, ok := fields["status"].(string); ok && v != "" {
		r.Status = v
	}
}
