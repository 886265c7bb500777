package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"orcascope/internal/domain"
	"orcascope/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Catalog implements ports.ProfileCatalog using SQLite
type Catalog struct {
	db      *sql.DB
	rootDir string
	dbPath  string
}

// Ensure Catalog implements ProfileCatalog
var _ ports.ProfileCatalog = (*Catalog)(nil)

// NewCatalog creates a new SQLite catalog
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Open initializes the catalog for the given profile store root
func (c *Catalog) Open(rootDir string) error {
	// Expand ~ in path
	if len(rootDir) > 0 && rootDir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		rootDir = filepath.Join(home, rootDir[1:])
	}

	c.rootDir = rootDir
	c.dbPath = databasePath(rootDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(c.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", c.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS profiles (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			scope TEXT NOT NULL,
			inherits TEXT,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS edges (
			child_path TEXT PRIMARY KEY,
			parent_name TEXT NOT NULL,
			category TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name);
		CREATE INDEX IF NOT EXISTS idx_edges_parent ON edges(parent_name, category);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	// Update metadata
	if err := c.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (c *Catalog) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the catalog should be fully rebuilt
func (c *Catalog) NeedsFullRebuild() bool {
	var version, rootHash string

	c.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	c.db.QueryRow("SELECT value FROM meta WHERE key = 'root_path_hash'").Scan(&rootHash)

	expectedHash := hashRootPath(c.rootDir)

	return version != schemaVersion || rootHash != expectedHash
}

// databasePath returns the path for the SQLite database
func databasePath(rootDir string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash store root for unique DB name
	hash := hashRootPath(rootDir)

	return filepath.Join(dataHome, "orcascope", hash+".db")
}

// hashRootPath returns a short hash of the store root path
func hashRootPath(rootDir string) string {
	h := sha256.Sum256([]byte(rootDir))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and root path hash
func (c *Catalog) updateMeta() error {
	// Single statement: the driver binds args per Exec call, so splitting
	// this into two parameterized statements would misbind the second value.
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value)
		VALUES ('schema_version', ?), ('root_path_hash', ?)
	`, schemaVersion, hashRootPath(c.rootDir))
	return err
}

// Search returns cached profiles whose name contains the query,
// case-insensitively, ordered by category then name.
func (c *Catalog) Search(query string) ([]domain.CatalogEntry, error) {
	rows, err := c.db.Query(`
		SELECT path, name, category, scope, inherits, mtime
		FROM profiles
		WHERE name LIKE '%' || ? || '%' COLLATE NOCASE
		ORDER BY category, name, scope
	`, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ChildrenOf returns cached profiles that declare the given profile as parent.
func (c *Catalog) ChildrenOf(name string, category domain.Category) ([]domain.CatalogEntry, error) {
	rows, err := c.db.Query(`
		SELECT p.path, p.name, p.category, p.scope, p.inherits, p.mtime
		FROM profiles p
		JOIN edges e ON e.child_path = p.path
		WHERE e.parent_name = ? AND e.category = ?
		ORDER BY p.name, p.scope
	`, name, category.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry
	for rows.Next() {
		var e domain.CatalogEntry
		var category, scope string
		var inherits sql.NullString
		if err := rows.Scan(&e.Path, &e.Name, &category, &scope, &inherits, &e.Mtime); err != nil {
			return nil, err
		}
		e.Category = domain.ParseCategory(category)
		if scope == "user" {
			e.Scope = domain.ScopeUser
		} else {
			e.Scope = domain.ScopeSystem
		}
		if inherits.Valid {
			e.Inherits = inherits.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
