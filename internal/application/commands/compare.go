package commands

import (
	"context"

	"orcascope/internal/application"
	"orcascope/internal/domain"
)

// CompareCommand builds a side-by-side settings table. A single name produces
// the per-ancestor chain table for that profile; multiple names produce an
// effective-settings comparison across profiles of one category.
type CompareCommand struct {
	linked   *domain.LinkedSet
	Names    []string
	Category domain.Category
}

// NewCompareCommand creates a new CompareCommand
func NewCompareCommand(linked *domain.LinkedSet, names []string, category domain.Category) *CompareCommand {
	return &CompareCommand{
		linked:   linked,
		Names:    names,
		Category: category,
	}
}

// Execute runs the compare command
func (c *CompareCommand) Execute(ctx context.Context) (*domain.Table, error) {
	if len(c.Names) == 0 {
		return nil, &application.ValidationError{
			Field:   "profiles",
			Message: "at least one profile name is required",
		}
	}

	if len(c.Names) == 1 {
		chain, err := NewChainCommand(c.linked, c.Names[0], c.Category).Execute(ctx)
		if err != nil {
			return nil, err
		}
		return domain.ChainTable(chain), nil
	}

	profiles := make([]*domain.Profile, 0, len(c.Names))
	views := make([]domain.EffectiveView, 0, len(c.Names))
	category := c.Category
	for _, name := range c.Names {
		chain, view, err := NewEffectiveCommand(c.linked, name, category).Execute(ctx)
		if err != nil {
			return nil, err
		}
		target := chain.Target()
		// All compared profiles must share a category; lock in the first
		// resolved one when none was given.
		if category == domain.CategoryUnknown {
			category = target.Category
		} else if target.Category != category {
			return nil, &application.ValidationError{
				Field:   "profiles",
				Message: "compared profiles must share a category",
			}
		}
		profiles = append(profiles, target)
		views = append(views, view)
	}

	return domain.CompareTable(profiles, views), nil
}
