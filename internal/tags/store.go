// Package tags is the host side of the picker: it owns the item store and the
// selection, and turns tag requests into new, uniquely valued items.
package tags

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"tagpicker/internal/debug"
	"tagpicker/internal/domain"
	appErrors "tagpicker/internal/errors"
)

const (
	// suffixSpace bounds the random numeric suffix appended to new tag values.
	suffixSpace = 10_000_000
	// maxValueAttempts caps retries when a generated value is already taken.
	maxValueAttempts = 32
)

// Store holds the item store and the current selection. It is not safe for
// concurrent use; it lives on the Bubble Tea event loop.
type Store struct {
	items    []domain.Item
	selected []domain.Item
	suffix   func() int
}

// Option configures a Store.
type Option func(*Store)

// WithSuffixSource overrides the random suffix generator. Tests use it to
// force collisions.
func WithSuffixSource(fn func() int) Option {
	return func(s *Store) {
		if fn != nil {
			s.suffix = fn
		}
	}
}

// NewStore builds a store seeded with items and an empty selection.
func NewStore(items []domain.Item, opts ...Option) (*Store, error) {
	if err := domain.ValidateItems(items); err != nil {
		return nil, fmt.Errorf("seed items: %w", err)
	}
	s := &Store{
		items:  domain.Clone(items),
		suffix: func() int { return rand.IntN(suffixSpace) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Items returns a copy of the item store.
func (s *Store) Items() []domain.Item {
	return domain.Clone(s.items)
}

// Selected returns a copy of the selection.
func (s *Store) Selected() []domain.Item {
	return domain.Clone(s.selected)
}

// ApplyChange replaces the selection with the one reported by the picker.
func (s *Store) ApplyChange(selection []domain.Item) {
	s.selected = domain.Clone(selection)
	debug.Logf("tags: selection now %v", domain.Values(s.selected))
}

// CreateTag appends a new item labelled label to both the item store and the
// selection. Its value is the label followed by a random number.
func (s *Store) CreateTag(label string) (domain.Item, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.Item{}, appErrors.New(appErrors.CodeInvalidTag, "tag label is empty", nil)
	}
	value, err := s.uniqueValue(label)
	if err != nil {
		return domain.Item{}, err
	}
	item := domain.Item{Value: value, Label: label}
	s.items = append(s.items, item)
	s.selected = append(s.selected, item)
	debug.Logf("tags: created %q as %q", label, value)
	return item, nil
}

func (s *Store) uniqueValue(label string) (string, error) {
	for range maxValueAttempts {
		candidate := label + strconv.Itoa(s.suffix())
		if !s.hasValue(candidate) {
			return candidate, nil
		}
	}
	return "", appErrors.New(appErrors.CodeTagCollision,
		fmt.Sprintf("no free value for tag %q after %d attempts", label, maxValueAttempts), nil)
}

func (s *Store) hasValue(value string) bool {
	for _, item := range s.items {
		if item.Value == value {
			return true
		}
	}
	return false
}
