package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"orcascope/internal/domain"
)

// Keys that carry record identity rather than settings. Everything else in a
// profile file is an opaque setting.
var reservedKeys = map[string]bool{
	"name":     true,
	"inherits": true,
	"from":     true,
	"type":     true,
}

// Loader implements ports.ProfileRepository against a profile store on disk:
// system profiles under <root>/system/<vendor>/..., user overrides under
// <root>/user/<set>/...
type Loader struct {
	rootDir string
}

// NewLoader creates a loader for the given store root
func NewLoader(rootDir string) *Loader {
	// Expand ~ to home directory
	if strings.HasPrefix(rootDir, "~") {
		home, _ := os.UserHomeDir()
		rootDir = filepath.Join(home, rootDir[1:])
	}
	return &Loader{rootDir: rootDir}
}

// RootDir returns the expanded store root
func (l *Loader) RootDir() string {
	return l.rootDir
}

// LoadAll loads every profile from the system and user scopes. Unreadable or
// structurally invalid files are skipped and reported as LoadError warnings.
func (l *Loader) LoadAll() ([]*domain.Profile, []error, error) {
	return l.LoadCategories(nil)
}

// LoadCategories loads only profiles of the given categories; nil loads all.
func (l *Loader) LoadCategories(categories []domain.Category) ([]*domain.Profile, []error, error) {
	var wanted map[domain.Category]bool
	if len(categories) > 0 {
		wanted = make(map[domain.Category]bool, len(categories))
		for _, c := range categories {
			wanted[c] = true
		}
	}

	var profiles []*domain.Profile
	var warnings []error

	for _, scopeDir := range []string{"system", "user"} {
		scopePath := filepath.Join(l.rootDir, scopeDir)
		if _, err := os.Stat(scopePath); err != nil {
			continue // scope directory absent is not an error
		}

		err := filepath.Walk(scopePath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				warnings = append(warnings, &domain.LoadError{Path: path, Err: err})
				return nil
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

			relPath, _ := filepath.Rel(l.rootDir, path)
			profile, err := l.parseFile(path, relPath)
			if err != nil {
				warnings = append(warnings, &domain.LoadError{Path: relPath, Err: err})
				return nil
			}
			if wanted != nil && !wanted[profile.Category] {
				return nil
			}
			profiles = append(profiles, profile)
			return nil
		})
		if err != nil {
			return nil, warnings, fmt.Errorf("failed to walk %s scope: %w", scopeDir, err)
		}
	}

	return profiles, warnings, nil
}

func (l *Loader) parseFile(fullPath, relPath string) (*domain.Profile, error) {
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}
	return Parse(relPath, data)
}

// Parse builds a profile record from raw file content. relPath must be
// relative to the store root; its first segment decides the record's scope.
// Comments and trailing commas in the JSON are tolerated.
func Parse(relPath string, data []byte) (*domain.Profile, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	name, err := stringField(raw, "name")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("missing required field %q", "name")
	}

	inherits, err := stringField(raw, "inherits")
	if err != nil {
		return nil, err
	}
	typeField, err := stringField(raw, "type")
	if err != nil {
		return nil, err
	}

	settings := make(map[string]domain.Value)
	for key, msg := range raw {
		if reservedKeys[key] {
			continue
		}
		var v domain.Value
		if err := json.Unmarshal(msg, &v); err != nil {
			return nil, fmt.Errorf("setting %q: %w", key, err)
		}
		settings[key] = v
	}

	// Category priority: explicit type field, then path segment, then
	// key-shape heuristic. Decided here once, never re-inferred downstream.
	category := domain.ParseCategory(typeField)
	if category == domain.CategoryUnknown {
		category = domain.CategoryFromPath(relPath)
	}
	if category == domain.CategoryUnknown {
		category = domain.CategoryFromSettings(settings)
	}
	if category == domain.CategoryUnknown {
		return nil, fmt.Errorf("cannot determine profile category")
	}

	return &domain.Profile{
		Name:       name,
		Category:   category,
		Scope:      scopeOf(relPath),
		Inherits:   inherits,
		Settings:   settings,
		SourcePath: filepath.ToSlash(relPath),
	}, nil
}

func stringField(raw map[string]json.RawMessage, key string) (string, error) {
	msg, ok := raw[key]
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return "", fmt.Errorf("field %q must be a string: %w", key, err)
	}
	return strings.TrimSpace(s), nil
}

func scopeOf(relPath string) domain.Scope {
	first := strings.SplitN(filepath.ToSlash(relPath), "/", 2)[0]
	if first == "user" {
		return domain.ScopeUser
	}
	return domain.ScopeSystem
}
