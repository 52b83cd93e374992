package menu

import (
	"github.com/rs/zerolog/log"
)

// Selection maps an option-group id to the chosen option ids for that group.
// It lives only for the duration of a customization flow and is never
// persisted. All operations on it are copy-on-write; the input value is
// never mutated.
type Selection map[string][]string

// NewSelection returns an empty selection for a freshly opened
// customization flow.
func NewSelection() Selection {
	return Selection{}
}

func (s Selection) clone() Selection {
	next := make(Selection, len(s))
	for groupID, optionIDs := range s {
		next[groupID] = append([]string(nil), optionIDs...)
	}
	return next
}

// Has reports whether optionID is currently selected in the group.
func (s Selection) Has(groupID, optionID string) bool {
	for _, id := range s[groupID] {
		if id == optionID {
			return true
		}
	}
	return false
}

// SelectedOption is a frozen snapshot of one chosen option, resolved against
// the item definition at confirmation time. It matches the wire shape the
// add-item endpoint expects.
type SelectedOption struct {
	OptionID        string `json:"option_id"`
	OptionGroupID   string `json:"option_group_id"`
	NameSnapshot    string `json:"name_snapshot"`
	PriceDeltaCents int64  `json:"price_delta_cents"`
}

// --------------------------------------------------
// Toggle
// --------------------------------------------------

// Toggle flips optionID in the group and returns the resulting selection.
//
// Removing an already-selected option is always allowed. For single-choice
// groups (max_choices == 1) selecting a new option replaces the previous
// one. Multi-choice groups accept new options while unbounded
// (max_choices == 0) or under the cap; at the cap the toggle is silently
// ignored, matching the checkbox UI it backs.
func Toggle(group OptionGroup, optionID string, sel Selection) Selection {
	if sel.Has(group.ID, optionID) {
		next := sel.clone()
		current := next[group.ID]
		kept := make([]string, 0, len(current)-1)
		for _, id := range current {
			if id != optionID {
				kept = append(kept, id)
			}
		}
		next[group.ID] = kept
		return next
	}

	option, ok := group.Option(optionID)
	if !ok || !option.IsActive {
		return sel
	}

	current := sel[group.ID]
	switch {
	case group.MaxChoices == 1:
		next := sel.clone()
		next[group.ID] = []string{optionID}
		return next
	case group.MaxChoices == 0 || len(current) < group.MaxChoices:
		next := sel.clone()
		next[group.ID] = append(next[group.ID], optionID)
		return next
	default:
		return sel
	}
}

// --------------------------------------------------
// Validation
// --------------------------------------------------

// selectedCount counts selections in the group that still resolve to an
// active option. Stale and inactive references never count toward the
// group's constraints.
func selectedCount(group OptionGroup, sel Selection) int {
	count := 0
	for _, id := range sel[group.ID] {
		if option, ok := group.Option(id); ok && option.IsActive {
			count++
		}
	}
	return count
}

// GroupValid reports whether the selection satisfies the group's
// constraints. Inactive groups impose no constraint. A required group with
// min_choices == 0 is treated as requiring one choice; some servers ship
// that combination.
func GroupValid(group OptionGroup, sel Selection) bool {
	if !group.IsActive {
		return true
	}

	min := group.MinChoices
	if group.IsRequired && min < 1 {
		min = 1
	}

	count := selectedCount(group, sel)
	if count < min {
		return false
	}
	if group.MaxChoices > 0 && count > group.MaxChoices {
		return false
	}
	return true
}

// AllValid reports whether every active group of the item is satisfied.
// Callers must refuse submission while this is false.
func AllValid(item Item, sel Selection) bool {
	for _, group := range item.OptionGroups {
		if !GroupValid(group, sel) {
			return false
		}
	}
	return true
}

// --------------------------------------------------
// Pricing
// --------------------------------------------------

// UnitPrice derives the single-unit price in cents: base price plus the
// deltas of every selected option that still resolves to an active option
// in an active group. Quantity scaling is the caller's responsibility.
func UnitPrice(item Item, sel Selection) int64 {
	total := item.BasePriceCents
	for _, group := range item.OptionGroups {
		if !group.IsActive {
			continue
		}
		for _, id := range sel[group.ID] {
			if option, ok := group.Option(id); ok && option.IsActive {
				total += option.PriceDeltaCents
			}
		}
	}
	return total
}

// --------------------------------------------------
// Submission
// --------------------------------------------------

// SubmissionOptions flattens the selection into frozen option snapshots,
// re-resolving every id against the current item definition. Selections
// whose option or group can no longer be found (the definition changed
// between selection start and confirmation) are dropped and logged rather
// than surfaced; selections in inactive groups are dropped silently.
func SubmissionOptions(item Item, sel Selection) []SelectedOption {
	for groupID := range sel {
		if _, ok := item.Group(groupID); !ok {
			log.Warn().
				Str("menu_item_id", item.ID).
				Str("option_group_id", groupID).
				Msg("dropping selection for option group no longer on item")
		}
	}

	options := make([]SelectedOption, 0)
	for _, group := range item.OptionGroups {
		if !group.IsActive {
			continue
		}
		for _, id := range sel[group.ID] {
			option, ok := group.Option(id)
			if !ok || !option.IsActive {
				log.Warn().
					Str("menu_item_id", item.ID).
					Str("option_group_id", group.ID).
					Str("option_id", id).
					Msg("dropping stale option reference from submission")
				continue
			}
			options = append(options, SelectedOption{
				OptionID:        option.ID,
				OptionGroupID:   group.ID,
				NameSnapshot:    option.Name,
				PriceDeltaCents: option.PriceDeltaCents,
			})
		}
	}
	return options
}
