package devserver

import (
	"github.com/jsoto007/nush/internal/menu"
	"github.com/jsoto007/nush/internal/restaurant"
)

// SeededCatalog returns the default fixture catalog: two restaurants so
// cross-restaurant cart replacement can be exercised locally.
func SeededCatalog() *MemoryCatalog {
	catalog := NewMemoryCatalog()

	catalog.AddRestaurant(
		restaurant.Restaurant{
			ID:       "11111111-1111-1111-1111-111111111111",
			Name:     "Nush Burger Bar",
			Status:   restaurant.StatusActive,
			Cuisines: []string{"american", "burgers"},
			Phone:    "555-0101",
		},
		&menu.Menu{
			ID:       "menu-burger-bar",
			Name:     "All Day",
			IsActive: true,
			Categories: []menu.Category{
				{
					ID:       "cat-mains",
					Name:     "Mains",
					IsActive: true,
					Items: []menu.Item{
						{
							ID:             "item-classic-burger",
							Name:           "Classic Burger",
							BasePriceCents: 1000,
							IsActive:       true,
							Tags:           []string{"popular"},
							OptionGroups: []menu.OptionGroup{
								{
									ID:         "group-size",
									Name:       "Size",
									MinChoices: 1,
									MaxChoices: 1,
									IsRequired: true,
									IsActive:   true,
									Options: []menu.Option{
										{ID: "opt-regular", Name: "Regular", PriceDeltaCents: 0, IsActive: true},
										{ID: "opt-large", Name: "Large", PriceDeltaCents: 150, IsActive: true},
									},
								},
								{
									ID:         "group-extras",
									Name:       "Extras",
									MinChoices: 0,
									MaxChoices: 2,
									IsActive:   true,
									Options: []menu.Option{
										{ID: "opt-cheese", Name: "Cheese", PriceDeltaCents: 200, IsActive: true},
										{ID: "opt-bacon", Name: "Bacon", PriceDeltaCents: 300, IsActive: true},
									},
								},
							},
						},
						{
							ID:             "item-fries",
							Name:           "Fries",
							BasePriceCents: 350,
							IsActive:       true,
							OptionGroups:   []menu.OptionGroup{},
						},
					},
				},
			},
		},
		ChargeSettings{TaxRatePercent: 8.75, FeeFlatCents: 100},
	)

	catalog.AddRestaurant(
		restaurant.Restaurant{
			ID:       "22222222-2222-2222-2222-222222222222",
			Name:     "Saffron Corner",
			Status:   restaurant.StatusActive,
			Cuisines: []string{"indian"},
		},
		&menu.Menu{
			ID:       "menu-saffron",
			Name:     "Dinner",
			IsActive: true,
			Categories: []menu.Category{
				{
					ID:       "cat-curries",
					Name:     "Curries",
					IsActive: true,
					Items: []menu.Item{
						{
							ID:             "item-paneer-tikka",
							Name:           "Paneer Tikka Masala",
							BasePriceCents: 1250,
							IsActive:       true,
							OptionGroups: []menu.OptionGroup{
								{
									ID:         "group-spice",
									Name:       "Spice Level",
									MinChoices: 1,
									MaxChoices: 1,
									IsRequired: true,
									IsActive:   true,
									Options: []menu.Option{
										{ID: "opt-mild", Name: "Mild", IsActive: true},
										{ID: "opt-hot", Name: "Hot", IsActive: true},
									},
								},
							},
						},
					},
				},
			},
		},
		ChargeSettings{TaxRatePercent: 5, FeeFlatCents: 0, FeeRatePercent: 2},
	)

	return catalog
}
