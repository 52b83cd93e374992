package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitPriceCentsIncludesOptionDeltas(t *testing.T) {
	line := Item{
		BasePriceCents: 500,
		Options: []ItemOption{
			{NameSnapshot: "Cheese", PriceDeltaCents: 50},
		},
	}
	assert.Equal(t, int64(550), line.UnitPriceCents())
}

func TestWithPreviewTotalsRecomputesSubtotal(t *testing.T) {
	current := &Cart{
		ID: "cart-1",
		Items: []Item{
			{ID: "line-1", BasePriceCents: 500, Quantity: 1, Options: []ItemOption{{PriceDeltaCents: 50}}},
			{ID: "line-2", BasePriceCents: 800, Quantity: 1},
		},
	}

	items := append([]Item(nil), current.Items...)
	items[0].Quantity = 3
	preview := current.withPreviewTotals(items)

	// 3 * 550 + 800
	assert.Equal(t, int64(2450), preview.Totals.SubtotalCents)
	assert.Equal(t, int64(2450), preview.Totals.TotalCents)

	// The source cart is untouched.
	assert.Equal(t, 1, current.Items[0].Quantity)
}

func TestWithPreviewTotalsCarriesChargesAndFloorsAtZero(t *testing.T) {
	current := &Cart{
		Totals: Totals{TaxCents: 80, FeeCents: 100, DiscountCents: 5000},
		Items:  []Item{{ID: "line-1", BasePriceCents: 1000, Quantity: 1}},
	}

	preview := current.withPreviewTotals(current.Items)

	assert.Equal(t, int64(1000), preview.Totals.SubtotalCents)
	assert.Equal(t, int64(80), preview.Totals.TaxCents)
	assert.Equal(t, int64(100), preview.Totals.FeeCents)
	assert.Equal(t, int64(0), preview.Totals.TotalCents,
		"an oversized carried discount must not drive the total negative")
}
