package commands

import (
	"context"
	"sort"
	"strings"

	"orcascope/internal/domain"
)

// SearchResult wraps a profile with a relevance score
type SearchResult struct {
	Profile *domain.Profile
	Score   int
}

// SearchCommand searches linked profiles with fuzzy matching
type SearchCommand struct {
	linked *domain.LinkedSet
	Query  string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(linked *domain.LinkedSet, query string) *SearchCommand {
	return &SearchCommand{
		linked: linked,
		Query:  query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	return FuzzySort(c.linked.Profiles(), c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '.' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores profiles against the query on both name and source path,
// dropping non-matches and sorting by score descending.
func FuzzySort(profiles []*domain.Profile, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(profiles))

	for _, p := range profiles {
		best := max(FuzzyScore(p.Name, query), FuzzyScore(p.SourcePath, query))
		if best > 0 {
			scored = append(scored, SearchResult{
				Profile: p,
				Score:   best,
			})
		}
	}

	// Sort by score descending; ties break on name for stable output
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Profile.Name < scored[j].Profile.Name
	})

	return scored
}
