package devserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsoto007/nush/internal/cart"
)

func TestComputeTotals(t *testing.T) {
	items := []cart.Item{
		{BasePriceCents: 1000, Quantity: 2, Options: []cart.ItemOption{
			{PriceDeltaCents: 150}, {PriceDeltaCents: 200},
		}},
	}
	settings := ChargeSettings{TaxRatePercent: 8.75, FeeFlatCents: 100}

	totals := computeTotals(items, settings, 0)
	assert.Equal(t, int64(2700), totals.SubtotalCents)
	assert.Equal(t, int64(236), totals.TaxCents, "fractional cents truncate")
	assert.Equal(t, int64(100), totals.FeeCents)
	assert.Equal(t, int64(3036), totals.TotalCents)
}

func TestComputeTotalsPercentFee(t *testing.T) {
	items := []cart.Item{{BasePriceCents: 1250, Quantity: 1}}
	settings := ChargeSettings{TaxRatePercent: 5, FeeRatePercent: 2}

	totals := computeTotals(items, settings, 0)
	assert.Equal(t, int64(62), totals.TaxCents)
	assert.Equal(t, int64(25), totals.FeeCents)
	assert.Equal(t, int64(1337), totals.TotalCents)
}

func TestComputeTotalsEmptyCartHasNoCharges(t *testing.T) {
	settings := ChargeSettings{TaxRatePercent: 8.75, FeeFlatCents: 100}
	totals := computeTotals(nil, settings, 0)
	assert.Equal(t, cart.Totals{}, totals, "no fee or tax on an empty cart")
}

func TestComputeTotalsFloorsAtZero(t *testing.T) {
	items := []cart.Item{{BasePriceCents: 500, Quantity: 1}}
	totals := computeTotals(items, ChargeSettings{}, 10000)
	assert.Equal(t, int64(0), totals.TotalCents)
	assert.Equal(t, int64(10000), totals.DiscountCents)
}

func TestDiscountFor(t *testing.T) {
	percent := promo{Code: "TEN", Type: "percent", Percent: 10, MinOrderCents: 1000}
	assert.Equal(t, int64(0), discountFor(percent, 900), "below minimum order")
	assert.Equal(t, int64(270), discountFor(percent, 2700))

	fixed := promo{Code: "FIVE", Type: "fixed", AmountCents: 500}
	assert.Equal(t, int64(500), discountFor(fixed, 2700))
	assert.Equal(t, int64(300), discountFor(fixed, 300),
		"a fixed discount never exceeds the subtotal")
}
