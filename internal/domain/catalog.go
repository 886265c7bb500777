package domain

import "time"

// CatalogEntry represents one cached profile in the on-disk catalog index.
type CatalogEntry struct {
	Path     string // Relative path from the store root (primary key)
	Name     string
	Category Category
	Scope    Scope
	Inherits string // declared parent name, empty for roots
	Mtime    int64  // Unix timestamp for incremental sync
}

// SyncStats holds statistics from a catalog sync operation
type SyncStats struct {
	NodesAdded   int
	NodesUpdated int
	NodesDeleted int
	EdgesAdded   int
	FilesScanned int
	Duration     time.Duration
}
