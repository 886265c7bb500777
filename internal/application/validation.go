package application

import (
	"fmt"
	"strings"

	"orcascope/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateCategory parses a category argument. An empty string yields
// CategoryUnknown (meaning "all" or "search everywhere" depending on the
// caller); anything else must name a known category.
func ValidateCategory(fieldName, value string) (domain.Category, error) {
	if strings.TrimSpace(value) == "" {
		return domain.CategoryUnknown, nil
	}
	c := domain.ParseCategory(value)
	if c == domain.CategoryUnknown {
		return c, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown category %q (expected filament, machine or process)", value),
		}
	}
	return c, nil
}

// ValidateCategories parses a comma-separated category list; empty input
// yields nil, meaning no category restriction.
func ValidateCategories(fieldName, value string) ([]domain.Category, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var categories []domain.Category
	for _, part := range strings.Split(value, ",") {
		c, err := ValidateCategory(fieldName, part)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
