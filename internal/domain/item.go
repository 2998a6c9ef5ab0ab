// Package domain holds the tag picker's data model and the pure rules that
// drive it: filtering, selection toggling, tag eligibility and the closed-state
// summary label.
package domain

import "strings"

// Item is a selectable entry. Value is unique within an item store; Label is
// what the user sees.
type Item struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

const (
	// LabelSeparator joins the visible labels of the closed-state summary.
	LabelSeparator = " , "
	// SummaryLimit is how many labels the closed-state summary shows before
	// collapsing the rest into a count.
	SummaryLimit = 2
)

// ValidateItems checks the uniqueness invariant of an item store.
func ValidateItems(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.Value == "" {
			return emptyValueError(i)
		}
		if _, dup := seen[item.Value]; dup {
			return duplicateValueError(item.Value)
		}
		seen[item.Value] = struct{}{}
	}
	return nil
}

// Filter returns the items whose label contains term, ignoring case.
// A blank term disables filtering. The result never aliases items.
func Filter(items []Item, term string) []Item {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return Clone(items)
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), needle) {
			out = append(out, item)
		}
	}
	return out
}

// CanCreateTag reports whether term may become a new tag: it must be
// non-blank once trimmed, and no existing label may equal it exactly.
func CanCreateTag(items []Item, term string) bool {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return false
	}
	for _, item := range items {
		if item.Label == trimmed {
			return false
		}
	}
	return true
}

// Clone copies items into a fresh slice. Nil stays nil.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
