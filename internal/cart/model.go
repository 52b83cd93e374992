package cart

// ItemOption is a frozen snapshot of one chosen option on a cart item.
// Name and price are decoupled from the live menu definition.
type ItemOption struct {
	ID              string `json:"id,omitempty"`
	OptionID        string `json:"option_id,omitempty"`
	OptionGroupID   string `json:"option_group_id,omitempty"`
	NameSnapshot    string `json:"name_snapshot"`
	PriceDeltaCents int64  `json:"price_delta_cents"`
}

// Item is a persisted cart line. Quantity is always >= 1 once persisted;
// a zero-or-below quantity is routed as removal before it reaches the wire.
type Item struct {
	ID              string       `json:"id"`
	MenuItemID      string       `json:"menu_item_id,omitempty"`
	NameSnapshot    string       `json:"name_snapshot"`
	BasePriceCents  int64        `json:"base_price_cents"`
	Quantity        int          `json:"quantity"`
	TotalPriceCents int64        `json:"total_price_cents"`
	Notes           string       `json:"notes,omitempty"`
	Options         []ItemOption `json:"options"`
}

type Totals struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	FeeCents      int64 `json:"fee_cents"`
	DiscountCents int64 `json:"discount_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// Cart is the server-owned cart state. The store treats it as an immutable
// value: optimistic previews are built on copies, and a rollback snapshot
// is just the previous pointer.
type Cart struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	OrderType    string `json:"order_type"`
	Notes        string `json:"notes,omitempty"`
	Items        []Item `json:"items"`
	Totals       Totals `json:"totals"`
}

// UnitPriceCents is the per-unit price of the line including option deltas.
func (i Item) UnitPriceCents() int64 {
	price := i.BasePriceCents
	for _, opt := range i.Options {
		price += opt.PriceDeltaCents
	}
	return price
}

func (c *Cart) itemIndex(itemID string) int {
	for idx, item := range c.Items {
		if item.ID == itemID {
			return idx
		}
	}
	return -1
}

// withPreviewTotals returns a copy of the cart with the given items and
// locally recomputed totals. Tax, fee, and discount are carried over from
// the last server response, so the preview total is approximate until the
// server reconciles it. The total never goes below zero.
func (c *Cart) withPreviewTotals(items []Item) *Cart {
	subtotal := int64(0)
	for _, item := range items {
		subtotal += item.UnitPriceCents() * int64(item.Quantity)
	}

	total := subtotal + c.Totals.TaxCents + c.Totals.FeeCents - c.Totals.DiscountCents
	if total < 0 {
		total = 0
	}

	next := *c
	next.Items = items
	next.Totals.SubtotalCents = subtotal
	next.Totals.TotalCents = total
	return &next
}
