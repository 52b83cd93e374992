package menu

// Option is a single customization choice inside a group.
// Inactive options are never selectable and never priced.
type Option struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PriceDeltaCents int64  `json:"price_delta_cents"`
	IsActive        bool   `json:"is_active"`
}

// OptionGroup is a named set of choices with cardinality constraints.
// MaxChoices == 0 means unbounded.
type OptionGroup struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	MinChoices int      `json:"min_choices"`
	MaxChoices int      `json:"max_choices"`
	IsRequired bool     `json:"is_required"`
	IsActive   bool     `json:"is_active"`
	Options    []Option `json:"options"`
}

// Item is an immutable menu-item snapshot as fetched from the server.
// The client never mutates it.
type Item struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Description        string        `json:"description,omitempty"`
	BasePriceCents     int64         `json:"base_price_cents"`
	PricePickupCents   int64         `json:"price_pickup_cents,omitempty"`
	PriceDeliveryCents int64         `json:"price_delivery_cents,omitempty"`
	Tags               []string      `json:"tags"`
	IsActive           bool          `json:"is_active"`
	OptionGroups       []OptionGroup `json:"option_groups"`
}

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
	Items     []Item `json:"items"`
}

type Menu struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	IsActive   bool       `json:"is_active"`
	Categories []Category `json:"categories"`
}

// Group returns the option group with the given id, if the item still has it.
func (i Item) Group(groupID string) (OptionGroup, bool) {
	for _, g := range i.OptionGroups {
		if g.ID == groupID {
			return g, true
		}
	}
	return OptionGroup{}, false
}

// Option returns the option with the given id inside the group.
func (g OptionGroup) Option(optionID string) (Option, bool) {
	for _, o := range g.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return Option{}, false
}
