package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burgerItem() Item {
	return Item{
		ID:             "item-burger",
		Name:           "Classic Burger",
		BasePriceCents: 1000,
		IsActive:       true,
		OptionGroups: []OptionGroup{
			{
				ID:         "size",
				Name:       "Size",
				MinChoices: 1,
				MaxChoices: 1,
				IsRequired: true,
				IsActive:   true,
				Options: []Option{
					{ID: "A", Name: "Regular", PriceDeltaCents: 0, IsActive: true},
					{ID: "B", Name: "Large", PriceDeltaCents: 150, IsActive: true},
				},
			},
			{
				ID:         "extras",
				Name:       "Extras",
				MinChoices: 0,
				MaxChoices: 2,
				IsActive:   true,
				Options: []Option{
					{ID: "C", Name: "Cheese", PriceDeltaCents: 200, IsActive: true},
					{ID: "D", Name: "Bacon", PriceDeltaCents: 300, IsActive: true},
					{ID: "E", Name: "Pickles", PriceDeltaCents: 50, IsActive: true},
				},
			},
		},
	}
}

func TestToggleSingleChoiceReplaces(t *testing.T) {
	item := burgerItem()
	size := item.OptionGroups[0]

	sel := Toggle(size, "A", NewSelection())
	sel = Toggle(size, "B", sel)

	require.Equal(t, []string{"B"}, sel["size"],
		"selecting a second option in a radio group must replace the first")
}

func TestToggleRemovesSelected(t *testing.T) {
	item := burgerItem()
	extras := item.OptionGroups[1]

	sel := Toggle(extras, "C", NewSelection())
	sel = Toggle(extras, "C", sel)

	assert.Empty(t, sel["extras"])
}

func TestToggleAtCapIsNoOp(t *testing.T) {
	item := burgerItem()
	extras := item.OptionGroups[1]

	sel := Toggle(extras, "C", NewSelection())
	sel = Toggle(extras, "D", sel)
	capped := Toggle(extras, "E", sel)

	assert.Equal(t, []string{"C", "D"}, capped["extras"],
		"selection beyond max_choices must be silently ignored")
}

func TestToggleUnboundedGroup(t *testing.T) {
	group := OptionGroup{
		ID:       "toppings",
		IsActive: true,
		Options: []Option{
			{ID: "x", IsActive: true},
			{ID: "y", IsActive: true},
			{ID: "z", IsActive: true},
		},
	}

	sel := NewSelection()
	for _, id := range []string{"x", "y", "z"} {
		sel = Toggle(group, id, sel)
	}
	assert.Len(t, sel["toppings"], 3)
}

func TestToggleIgnoresInactiveOption(t *testing.T) {
	group := OptionGroup{
		ID:       "g",
		IsActive: true,
		Options:  []Option{{ID: "dead", IsActive: false}},
	}
	sel := Toggle(group, "dead", NewSelection())
	assert.Empty(t, sel["g"])
}

func TestToggleNeverMutatesInput(t *testing.T) {
	item := burgerItem()
	extras := item.OptionGroups[1]

	original := Toggle(extras, "C", NewSelection())
	_ = Toggle(extras, "D", original)

	require.Equal(t, []string{"C"}, original["extras"])
}

func TestAllValidScenario(t *testing.T) {
	item := burgerItem()
	size := item.OptionGroups[0]
	extras := item.OptionGroups[1]

	// {A, C} on a 1000-cent base: valid, priced 1200.
	sel := Toggle(size, "A", NewSelection())
	sel = Toggle(extras, "C", sel)

	assert.True(t, AllValid(item, sel))
	assert.Equal(t, int64(1200), UnitPrice(item, sel))

	// {C} alone leaves the required size group unsatisfied.
	only := Toggle(extras, "C", NewSelection())
	assert.False(t, AllValid(item, only))
}

func TestGroupValidBounds(t *testing.T) {
	group := OptionGroup{
		ID:         "g",
		MinChoices: 1,
		MaxChoices: 2,
		IsRequired: true,
		IsActive:   true,
		Options: []Option{
			{ID: "1", IsActive: true},
			{ID: "2", IsActive: true},
			{ID: "3", IsActive: true},
		},
	}

	assert.False(t, GroupValid(group, Selection{}))
	assert.True(t, GroupValid(group, Selection{"g": {"1"}}))
	assert.True(t, GroupValid(group, Selection{"g": {"1", "2"}}))
	assert.False(t, GroupValid(group, Selection{"g": {"1", "2", "3"}}))
}

func TestGroupValidRequiredWithZeroMin(t *testing.T) {
	// Some servers ship is_required with min_choices 0; required still
	// means at least one choice.
	group := OptionGroup{
		ID:         "g",
		MinChoices: 0,
		IsRequired: true,
		IsActive:   true,
		Options:    []Option{{ID: "1", IsActive: true}},
	}

	assert.False(t, GroupValid(group, Selection{}))
	assert.True(t, GroupValid(group, Selection{"g": {"1"}}))
}

func TestInactiveGroupNeverAffectsValidity(t *testing.T) {
	item := burgerItem()
	item.OptionGroups = append(item.OptionGroups, OptionGroup{
		ID:         "retired",
		MinChoices: 3,
		IsRequired: true,
		IsActive:   false,
	})

	size := item.OptionGroups[0]
	sel := Toggle(size, "A", NewSelection())
	assert.True(t, AllValid(item, sel))
}

func TestUnitPriceEmptySelection(t *testing.T) {
	item := burgerItem()
	assert.Equal(t, int64(1000), UnitPrice(item, NewSelection()))
}

func TestUnitPriceSkipsInactive(t *testing.T) {
	item := burgerItem()
	item.OptionGroups[1].Options[0].IsActive = false // Cheese retired

	sel := Selection{"size": {"B"}, "extras": {"C", "D"}}
	assert.Equal(t, int64(1000+150+300), UnitPrice(item, sel))
}

func TestSubmissionRoundTrip(t *testing.T) {
	item := burgerItem()
	sel := Selection{"size": {"B"}, "extras": {"C", "D"}}

	payload := SubmissionOptions(item, sel)
	require.Len(t, payload, 3)

	rebuilt := NewSelection()
	for _, opt := range payload {
		group, ok := item.Group(opt.OptionGroupID)
		require.True(t, ok)
		rebuilt = Toggle(group, opt.OptionID, rebuilt)
	}
	assert.ElementsMatch(t, sel["size"], rebuilt["size"])
	assert.ElementsMatch(t, sel["extras"], rebuilt["extras"])
}

func TestSubmissionDropsStaleReferences(t *testing.T) {
	item := burgerItem()
	sel := Selection{
		"size":   {"B"},
		"extras": {"C", "ghost"},
		"gone":   {"whatever"},
	}

	payload := SubmissionOptions(item, sel)

	ids := make([]string, 0, len(payload))
	for _, opt := range payload {
		ids = append(ids, opt.OptionID)
	}
	assert.ElementsMatch(t, []string{"B", "C"}, ids,
		"options missing from the current definition must be dropped, not erred")
}

func TestSubmissionSnapshotsNameAndPrice(t *testing.T) {
	item := burgerItem()
	sel := Selection{"size": {"B"}}

	payload := SubmissionOptions(item, sel)
	require.Len(t, payload, 1)
	assert.Equal(t, "Large", payload[0].NameSnapshot)
	assert.Equal(t, int64(150), payload[0].PriceDeltaCents)
	assert.Equal(t, "size", payload[0].OptionGroupID)
}
