package ports

import "orcascope/internal/domain"

// ProfileCatalog provides cached access to the profile store for fast
// lookups over large libraries. Query operations should be O(log n) via
// database indexes.
type ProfileCatalog interface {
	// Lifecycle
	Open(rootDir string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncFull() (*domain.SyncStats, error)
	SyncIncremental() (*domain.SyncStats, error)

	// Queries
	Search(query string) ([]domain.CatalogEntry, error)
	ChildrenOf(name string, category domain.Category) ([]domain.CatalogEntry, error)
}
