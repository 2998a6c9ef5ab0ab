package tags

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"tagpicker/internal/domain"
	appErrors "tagpicker/internal/errors"
)

// DefaultItems is the demo item store.
func DefaultItems() []domain.Item {
	return []domain.Item{
		{Value: "education", Label: "Education 🎓"},
		{Value: "science", Label: "Yeeeah, science! ⚗️"},
		{Value: "art", Label: "Art 🎭"},
		{Value: "sport", Label: "Sport ⚽️"},
		{Value: "games", Label: "Games 🎮"},
		{Value: "health", Label: "Health 🏥"},
	}
}

type itemsFile struct {
	Items []domain.Item `toml:"items"`
}

// LoadItems reads an item store from a TOML file of the form
//
//	[[items]]
//	value = "education"
//	label = "Education 🎓"
//
// An empty path returns DefaultItems.
func LoadItems(path string) ([]domain.Item, error) {
	if path == "" {
		return DefaultItems(), nil
	}
	//nolint:gosec // G304: items file path is supplied by the user on purpose
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, appErrors.New(appErrors.CodeInvalidItems, fmt.Sprintf("items file %s not found", path), err)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseItems(data)
}

// ParseItems decodes and validates TOML item data.
func ParseItems(data []byte) ([]domain.Item, error) {
	var file itemsFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, appErrors.New(appErrors.CodeInvalidItems, fmt.Sprintf("parse items: %v", err), err)
	}
	for i := range file.Items {
		if file.Items[i].Label == "" {
			file.Items[i].Label = file.Items[i].Value
		}
	}
	if err := domain.ValidateItems(file.Items); err != nil {
		return nil, err
	}
	return file.Items, nil
}
