package devserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalogMenuIsolation(t *testing.T) {
	catalog := SeededCatalog()
	ctx := context.Background()

	mn, err := catalog.MenuFor(ctx, burgerBarID)
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the stored fixture.
	mn.Categories[0].Items[0].Name = "Hijacked"

	again, err := catalog.MenuFor(ctx, burgerBarID)
	require.NoError(t, err)
	assert.Equal(t, "Classic Burger", again.Categories[0].Items[0].Name)
}

func TestMemoryCatalogFindItem(t *testing.T) {
	catalog := SeededCatalog()
	ctx := context.Background()

	item, restaurantID, err := catalog.FindItem(ctx, "item-paneer-tikka")
	require.NoError(t, err)
	assert.Equal(t, saffronID, restaurantID)
	assert.Equal(t, "Paneer Tikka Masala", item.Name)

	_, _, err = catalog.FindItem(ctx, "item-ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCatalogUpdateRestaurant(t *testing.T) {
	catalog := SeededCatalog()
	ctx := context.Background()

	updated, err := catalog.UpdateRestaurant(ctx, burgerBarID, map[string]any{
		"name":  "Nush Burger Palace",
		"phone": "555-0199",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nush Burger Palace", updated.Name)
	assert.Equal(t, "555-0199", updated.Phone)

	_, err = catalog.UpdateRestaurant(ctx, "nope", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCatalogSettings(t *testing.T) {
	catalog := SeededCatalog()

	settings, err := catalog.Settings(context.Background(), burgerBarID)
	require.NoError(t, err)
	assert.InDelta(t, 8.75, settings.TaxRatePercent, 0.0001)
	assert.Equal(t, int64(100), settings.FeeFlatCents)
}
