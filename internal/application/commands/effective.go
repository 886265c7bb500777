package commands

import (
	"context"

	"orcascope/internal/domain"
)

// EffectiveCommand computes the merged settings view of one profile along
// with the chain it was folded from.
type EffectiveCommand struct {
	linked   *domain.LinkedSet
	Name     string
	Category domain.Category
}

// NewEffectiveCommand creates a new EffectiveCommand
func NewEffectiveCommand(linked *domain.LinkedSet, name string, category domain.Category) *EffectiveCommand {
	return &EffectiveCommand{
		linked:   linked,
		Name:     name,
		Category: category,
	}
}

// Execute runs the effective settings command
func (c *EffectiveCommand) Execute(ctx context.Context) (domain.Chain, domain.EffectiveView, error) {
	chain, err := NewChainCommand(c.linked, c.Name, c.Category).Execute(ctx)
	if err != nil {
		return nil, nil, err
	}
	return chain, domain.EffectiveSettings(chain), nil
}
