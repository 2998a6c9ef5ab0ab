package domain

import (
	"fmt"

	appErrors "tagpicker/internal/errors"
)

func duplicateValueError(value string) error {
	return appErrors.New(appErrors.CodeInvalidItems, fmt.Sprintf("duplicate item value: %q", value), nil)
}

func emptyValueError(index int) error {
	return appErrors.New(appErrors.CodeInvalidItems, fmt.Sprintf("item %d has an empty value", index), nil)
}
