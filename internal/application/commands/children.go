package commands

import (
	"context"

	"orcascope/internal/application"
	"orcascope/internal/domain"
)

// ChildrenCommand lists records that declare the given profile as parent.
// With Recursive set it returns the full descendant closure instead.
type ChildrenCommand struct {
	linked    *domain.LinkedSet
	Name      string
	Category  domain.Category
	Recursive bool
}

// NewChildrenCommand creates a new ChildrenCommand
func NewChildrenCommand(linked *domain.LinkedSet, name string, category domain.Category, recursive bool) *ChildrenCommand {
	return &ChildrenCommand{
		linked:    linked,
		Name:      name,
		Category:  category,
		Recursive: recursive,
	}
}

// Execute runs the children command
func (c *ChildrenCommand) Execute(ctx context.Context) ([]*domain.Profile, error) {
	if err := application.ValidateRequired("profile", c.Name); err != nil {
		return nil, err
	}
	target, err := c.linked.Find(c.Name, c.Category)
	if err != nil {
		return nil, err
	}
	if c.Recursive {
		return c.linked.Descendants(target), nil
	}
	return c.linked.Children(target), nil
}
