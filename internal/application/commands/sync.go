package commands

import (
	"context"

	"orcascope/internal/domain"
	"orcascope/internal/ports"
)

// SyncCatalogCommand refreshes the on-disk catalog from the profile store.
// A full rebuild is forced when requested or when the catalog schema or
// store root changed.
type SyncCatalogCommand struct {
	catalog ports.ProfileCatalog
	RootDir string
	Full    bool
}

// NewSyncCatalogCommand creates a new SyncCatalogCommand
func NewSyncCatalogCommand(catalog ports.ProfileCatalog, rootDir string, full bool) *SyncCatalogCommand {
	return &SyncCatalogCommand{
		catalog: catalog,
		RootDir: rootDir,
		Full:    full,
	}
}

// Execute runs the catalog sync
func (c *SyncCatalogCommand) Execute(ctx context.Context) (*domain.SyncStats, error) {
	if err := c.catalog.Open(c.RootDir); err != nil {
		return nil, err
	}
	defer c.catalog.Close()

	if c.Full || c.catalog.NeedsFullRebuild() {
		return c.catalog.SyncFull()
	}
	return c.catalog.SyncIncremental()
}
