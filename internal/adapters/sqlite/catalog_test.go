package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"orcascope/internal/domain"
)

func testCatalog(t *testing.T, root string) *Catalog {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	c := NewCatalog()
	if err := c.Open(root); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func writeProfile(t *testing.T, root, relPath, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestSyncFull(t *testing.T) {
	root := t.TempDir()
	writeProfile(t, root, "system/Acme/filament/Base PLA.json",
		`{"name": "Base PLA", "type": "filament"}`)
	writeProfile(t, root, "system/Acme/filament/Acme PLA Red.json",
		`{"name": "Acme PLA Red", "type": "filament", "inherits": "Base PLA"}`)
	writeProfile(t, root, "user/default/filament/My Red.json",
		`{"name": "My Red", "type": "filament", "inherits": "Acme PLA Red"}`)
	writeProfile(t, root, "system/Acme/filament/Broken.json", `not json`)

	c := testCatalog(t, root)
	stats, err := c.SyncFull()
	if err != nil {
		t.Fatalf("SyncFull() error = %v", err)
	}
	if stats.NodesAdded != 3 {
		t.Errorf("NodesAdded = %d, want 3", stats.NodesAdded)
	}
	if stats.EdgesAdded != 2 {
		t.Errorf("EdgesAdded = %d, want 2", stats.EdgesAdded)
	}
	if stats.FilesScanned != 4 {
		t.Errorf("FilesScanned = %d, want 4", stats.FilesScanned)
	}
}

func TestSearch(t *testing.T) {
	root := t.TempDir()
	writeProfile(t, root, "system/Acme/filament/Base PLA.json",
		`{"name": "Base PLA", "type": "filament"}`)
	writeProfile(t, root, "system/Acme/filament/Base PETG.json",
		`{"name": "Base PETG", "type": "filament"}`)

	c := testCatalog(t, root)
	if _, err := c.SyncFull(); err != nil {
		t.Fatalf("SyncFull() error = %v", err)
	}

	entries, err := c.Search("pla")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 match, got %d", len(entries))
	}
	if entries[0].Name != "Base PLA" {
		t.Errorf("name = %q, want %q", entries[0].Name, "Base PLA")
	}
	if entries[0].Scope != domain.ScopeSystem {
		t.Errorf("scope = %v, want system", entries[0].Scope)
	}
}

func TestChildrenOf(t *testing.T) {
	root := t.TempDir()
	writeProfile(t, root, "system/Acme/filament/Base.json",
		`{"name": "Base", "type": "filament"}`)
	writeProfile(t, root, "system/Acme/filament/Red.json",
		`{"name": "Red", "type": "filament", "inherits": "Base"}`)
	writeProfile(t, root, "system/Acme/filament/Blue.json",
		`{"name": "Blue", "type": "filament", "inherits": "Base"}`)
	writeProfile(t, root, "system/Acme/process/Fine.json",
		`{"name": "Fine", "type": "process", "inherits": "Base"}`)

	c := testCatalog(t, root)
	if _, err := c.SyncFull(); err != nil {
		t.Fatalf("SyncFull() error = %v", err)
	}

	children, err := c.ChildrenOf("Base", domain.CategoryFilament)
	if err != nil {
		t.Fatalf("ChildrenOf() error = %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	// Ordered by name
	if children[0].Name != "Blue" || children[1].Name != "Red" {
		t.Errorf("children = [%s, %s], want [Blue, Red]", children[0].Name, children[1].Name)
	}
}

func TestSyncIncremental(t *testing.T) {
	root := t.TempDir()
	writeProfile(t, root, "system/Acme/filament/Base.json",
		`{"name": "Base", "type": "filament"}`)

	c := testCatalog(t, root)
	if _, err := c.SyncFull(); err != nil {
		t.Fatalf("SyncFull() error = %v", err)
	}

	// Remove one file, add another
	os.Remove(filepath.Join(root, "system", "Acme", "filament", "Base.json"))
	writeProfile(t, root, "system/Acme/filament/New.json",
		`{"name": "New", "type": "filament"}`)

	stats, err := c.SyncIncremental()
	if err != nil {
		t.Fatalf("SyncIncremental() error = %v", err)
	}
	if stats.NodesAdded != 1 {
		t.Errorf("NodesAdded = %d, want 1", stats.NodesAdded)
	}
	if stats.NodesDeleted != 1 {
		t.Errorf("NodesDeleted = %d, want 1", stats.NodesDeleted)
	}

	entries, err := c.Search("")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "New" {
		t.Fatalf("catalog should contain only New after incremental sync")
	}
}

func TestNeedsFullRebuild(t *testing.T) {
	root := t.TempDir()
	c := testCatalog(t, root)

	if c.NeedsFullRebuild() {
		t.Error("fresh catalog with current schema should not need rebuild")
	}
}
