package commands

import (
	"context"

	"orcascope/internal/domain"
)

// ListProfilesCommand lists linked profiles, optionally restricted by category
type ListProfilesCommand struct {
	linked     *domain.LinkedSet
	Categories []domain.Category
}

// NewListProfilesCommand creates a new ListProfilesCommand
func NewListProfilesCommand(linked *domain.LinkedSet, categories []domain.Category) *ListProfilesCommand {
	return &ListProfilesCommand{
		linked:     linked,
		Categories: categories,
	}
}

// Execute runs the list command; results are sorted by category, name, scope
func (c *ListProfilesCommand) Execute(ctx context.Context) ([]*domain.Profile, error) {
	var wanted map[domain.Category]bool
	if len(c.Categories) > 0 {
		wanted = make(map[domain.Category]bool, len(c.Categories))
		for _, cat := range c.Categories {
			wanted[cat] = true
		}
	}

	// Copy before sorting: the linked model's slice order is load order and
	// must not be disturbed.
	var profiles []*domain.Profile
	for _, p := range c.linked.Profiles() {
		if wanted != nil && !wanted[p.Category] {
			continue
		}
		profiles = append(profiles, p)
	}

	domain.SortProfiles(profiles)
	return profiles, nil
}

// BuildTreeCommand builds the complete inheritance forest
type BuildTreeCommand struct {
	linked *domain.LinkedSet
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(linked *domain.LinkedSet) *BuildTreeCommand {
	return &BuildTreeCommand{linked: linked}
}

// Execute runs the build tree command
func (c *BuildTreeCommand) Execute(ctx context.Context) (*domain.TreeNode, error) {
	return c.linked.BuildTree(), nil
}
