package devserver

import "github.com/jsoto007/nush/internal/cart"

// computeTotals is the authoritative totals computation: subtotal from the
// line snapshots, tax and fee from the restaurant's charge settings, and a
// floor of zero on the grand total.
func computeTotals(items []cart.Item, settings ChargeSettings, discountCents int64) cart.Totals {
	subtotal := int64(0)
	for _, item := range items {
		subtotal += item.UnitPriceCents() * int64(item.Quantity)
	}
	if subtotal == 0 {
		return cart.Totals{}
	}

	tax := int64(float64(subtotal) * settings.TaxRatePercent / 100.0)
	fee := settings.FeeFlatCents + int64(float64(subtotal)*settings.FeeRatePercent/100.0)

	total := subtotal + tax + fee - discountCents
	if total < 0 {
		total = 0
	}

	return cart.Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		FeeCents:      fee,
		DiscountCents: discountCents,
		TotalCents:    total,
	}
}

// discountFor evaluates a promotion against the current subtotal.
func discountFor(p promo, subtotalCents int64) int64 {
	if subtotalCents < p.MinOrderCents {
		return 0
	}
	switch p.Type {
	case "percent":
		return int64(float64(subtotalCents) * p.Percent / 100.0)
	case "fixed":
		if p.AmountCents > subtotalCents {
			return subtotalCents
		}
		return p.AmountCents
	}
	return 0
}
