package commands

import (
	"context"

	"orcascope/internal/domain"
)

// GraphCommand assembles the filtered node/edge view of the linked model
type GraphCommand struct {
	linked *domain.LinkedSet
	Filter domain.GraphFilter
}

// NewGraphCommand creates a new GraphCommand
func NewGraphCommand(linked *domain.LinkedSet, filter domain.GraphFilter) *GraphCommand {
	return &GraphCommand{
		linked: linked,
		Filter: filter,
	}
}

// Execute runs the graph command
func (c *GraphCommand) Execute(ctx context.Context) (*domain.Graph, error) {
	return c.linked.AssembleGraph(c.Filter)
}
