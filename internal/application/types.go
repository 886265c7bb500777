package application

import "orcascope/internal/domain"

// Re-export category constants for use by adapters
const (
	CategoryUnknown  = domain.CategoryUnknown
	CategoryFilament = domain.CategoryFilament
	CategoryMachine  = domain.CategoryMachine
	CategoryProcess  = domain.CategoryProcess
)

// Re-export domain types for use by adapters
type (
	Profile       = domain.Profile
	Category      = domain.Category
	Scope         = domain.Scope
	Chain         = domain.Chain
	EffectiveView = domain.EffectiveView
	Graph         = domain.Graph
	GraphFilter   = domain.GraphFilter
	Table         = domain.Table
	TreeNode      = domain.TreeNode
	LinkedSet     = domain.LinkedSet
	CatalogEntry  = domain.CatalogEntry
	SyncStats     = domain.SyncStats
)

// ParseCategory parses a category string such as "filament"
func ParseCategory(s string) Category {
	return domain.ParseCategory(s)
}
