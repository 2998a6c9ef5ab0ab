package domain

import (
	"strconv"
	"strings"
)

// IndexOf returns the position of the first occurrence of item, or -1.
func IndexOf(selection []Item, item Item) int {
	for i, candidate := range selection {
		if candidate == item {
			return i
		}
	}
	return -1
}

// Contains reports whether item is part of selection.
func Contains(selection []Item, item Item) bool {
	return IndexOf(selection, item) >= 0
}

// Toggle returns a new selection with item removed when present (first
// occurrence only) or appended when absent. selection is left untouched.
func Toggle(selection []Item, item Item) []Item {
	idx := IndexOf(selection, item)
	if idx < 0 {
		out := make([]Item, 0, len(selection)+1)
		out = append(out, selection...)
		return append(out, item)
	}
	out := make([]Item, 0, len(selection)-1)
	out = append(out, selection[:idx]...)
	return append(out, selection[idx+1:]...)
}

// DisplayLabel summarizes a selection for the closed picker: the first two
// labels joined by LabelSeparator, then "  +N" for whatever did not fit.
// An empty selection yields "" so the placeholder can show instead.
func DisplayLabel(selection []Item) string {
	if len(selection) == 0 {
		return ""
	}
	shown := selection
	if len(shown) > SummaryLimit {
		shown = shown[:SummaryLimit]
	}
	labels := make([]string, len(shown))
	for i, item := range shown {
		labels[i] = item.Label
	}
	label := strings.Join(labels, LabelSeparator)
	if rest := len(selection) - SummaryLimit; rest > 0 {
		label += "  +" + strconv.Itoa(rest)
	}
	return label
}

// Values returns the Value of each item, in order.
func Values(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Value
	}
	return out
}

// Labels returns the Label of each item, in order.
func Labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}
