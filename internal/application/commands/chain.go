package commands

import (
	"context"

	"orcascope/internal/application"
	"orcascope/internal/domain"
)

// ChainCommand resolves the inheritance chain of one profile, root first
type ChainCommand struct {
	linked   *domain.LinkedSet
	Name     string
	Category domain.Category
}

// NewChainCommand creates a new ChainCommand
func NewChainCommand(linked *domain.LinkedSet, name string, category domain.Category) *ChainCommand {
	return &ChainCommand{
		linked:   linked,
		Name:     name,
		Category: category,
	}
}

// Execute runs the chain command
func (c *ChainCommand) Execute(ctx context.Context) (domain.Chain, error) {
	if err := application.ValidateRequired("profile", c.Name); err != nil {
		return nil, err
	}
	target, err := c.linked.Find(c.Name, c.Category)
	if err != nil {
		return nil, err
	}
	return c.linked.ChainOf(target)
}
