package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"orcascope/internal/adapters/filesystem"
	"orcascope/internal/domain"
)

// SyncFull performs a complete rebuild of the catalog
func (c *Catalog) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	// Clear existing data
	if _, err := c.db.Exec(`DELETE FROM profiles`); err != nil {
		return nil, err
	}
	if _, err := c.db.Exec(`DELETE FROM edges`); err != nil {
		return nil, err
	}

	err := c.walkStore(func(relPath string, mtime int64) {
		stats.FilesScanned++
		entry, ok := c.parseEntry(relPath, mtime)
		if !ok {
			return
		}
		if err := c.insertEntry(entry); err != nil {
			return // Continue on error
		}
		stats.NodesAdded++
		if entry.Inherits != "" {
			if err := c.insertEdge(entry); err == nil {
				stats.EdgesAdded++
			}
		}
	})
	if err != nil {
		return stats, err
	}

	// Update last sync time
	c.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental updates only files that changed since last sync
func (c *Catalog) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	// Get last sync time
	var lastSyncUnix int64
	c.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync_time'`).Scan(&lastSyncUnix)

	// Track existing paths to detect deletions
	existingPaths := make(map[string]bool)
	rows, err := c.db.Query(`SELECT path FROM profiles`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var path string
		rows.Scan(&path)
		existingPaths[path] = true
	}
	rows.Close()

	// Track paths we've seen during this walk
	seenPaths := make(map[string]bool)

	err = c.walkStore(func(relPath string, mtime int64) {
		seenPaths[relPath] = true
		stats.FilesScanned++

		if mtime <= lastSyncUnix && existingPaths[relPath] {
			return
		}

		entry, ok := c.parseEntry(relPath, mtime)
		if !ok {
			return
		}

		if existingPaths[relPath] {
			c.updateEntry(entry)
			stats.NodesUpdated++
			c.db.Exec(`DELETE FROM edges WHERE child_path = ?`, relPath)
		} else {
			c.insertEntry(entry)
			stats.NodesAdded++
		}

		if entry.Inherits != "" {
			if err := c.insertEdge(entry); err == nil {
				stats.EdgesAdded++
			}
		}
	})
	if err != nil {
		return stats, err
	}

	// Delete entries for files that no longer exist
	for path := range existingPaths {
		if !seenPaths[path] {
			c.db.Exec(`DELETE FROM profiles WHERE path = ?`, path)
			c.db.Exec(`DELETE FROM edges WHERE child_path = ?`, path)
			stats.NodesDeleted++
		}
	}

	// Update last sync time
	c.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// walkStore visits every profile JSON file under the system and user scopes
func (c *Catalog) walkStore(visit func(relPath string, mtime int64)) error {
	for _, scopeDir := range []string{"system", "user"} {
		scopePath := filepath.Join(c.rootDir, scopeDir)
		if _, err := os.Stat(scopePath); err != nil {
			continue
		}

		err := filepath.Walk(scopePath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // Skip errors
			}
			if info.IsDir() {
				if strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(strings.ToLower(info.Name()), ".json") {
				return nil
			}
			relPath, _ := filepath.Rel(c.rootDir, path)
			visit(filepath.ToSlash(relPath), info.ModTime().Unix())
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// parseEntry reads and parses one profile file; malformed files are skipped
func (c *Catalog) parseEntry(relPath string, mtime int64) (*domain.CatalogEntry, bool) {
	data, err := os.ReadFile(filepath.Join(c.rootDir, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, false
	}
	profile, err := filesystem.Parse(relPath, data)
	if err != nil {
		return nil, false
	}
	return &domain.CatalogEntry{
		Path:     relPath,
		Name:     profile.Name,
		Category: profile.Category,
		Scope:    profile.Scope,
		Inherits: profile.Inherits,
		Mtime:    mtime,
	}, true
}

func (c *Catalog) insertEntry(e *domain.CatalogEntry) error {
	_, err := c.db.Exec(`
		INSERT INTO profiles (path, name, category, scope, inherits, mtime)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.Path, e.Name, e.Category.String(), e.Scope.String(), nullString(e.Inherits), e.Mtime)
	return err
}

func (c *Catalog) updateEntry(e *domain.CatalogEntry) error {
	_, err := c.db.Exec(`
		UPDATE profiles SET name = ?, category = ?, scope = ?, inherits = ?, mtime = ?
		WHERE path = ?
	`, e.Name, e.Category.String(), e.Scope.String(), nullString(e.Inherits), e.Mtime, e.Path)
	return err
}

func (c *Catalog) insertEdge(e *domain.CatalogEntry) error {
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO edges (child_path, parent_name, category)
		VALUES (?, ?, ?)
	`, e.Path, e.Inherits, e.Category.String())
	return err
}

// nullString returns nil for empty strings (for nullable columns)
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
