package commands

import (
	"context"

	"orcascope/internal/domain"
	"orcascope/internal/ports"
)

// ResolveCommand loads the profile store and links every record into the
// in-memory inheritance model. Per-record failures (unreadable files,
// duplicate names, dangling or cyclic parents) come back as warnings; only a
// failure to read the store at all is an error.
type ResolveCommand struct {
	repo       ports.ProfileRepository
	Categories []domain.Category
}

// NewResolveCommand creates a new ResolveCommand; nil categories loads all
func NewResolveCommand(repo ports.ProfileRepository, categories []domain.Category) *ResolveCommand {
	return &ResolveCommand{
		repo:       repo,
		Categories: categories,
	}
}

// Execute runs the resolve command
func (c *ResolveCommand) Execute(ctx context.Context) (*domain.LinkedSet, []error, error) {
	profiles, warnings, err := c.repo.LoadCategories(c.Categories)
	if err != nil {
		return nil, warnings, err
	}

	linked := domain.NewLinkedSet(profiles)
	warnings = append(warnings, linked.Warnings()...)
	return linked, warnings, nil
}
