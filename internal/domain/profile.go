package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// Category is the profile kind. It is decided once at load time and never
// re-inferred downstream.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryFilament
	CategoryMachine
	CategoryProcess
)

// Categories lists the known profile categories in display order.
var Categories = []Category{CategoryFilament, CategoryMachine, CategoryProcess}

func (c Category) String() string {
	switch c {
	case CategoryFilament:
		return "filament"
	case CategoryMachine:
		return "machine"
	case CategoryProcess:
		return "process"
	default:
		return "unknown"
	}
}

// ParseCategory parses a category name as it appears in profile files and
// directory names. Unrecognized names map to CategoryUnknown.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "filament":
		return CategoryFilament
	case "machine":
		return CategoryMachine
	case "process":
		return CategoryProcess
	default:
		return CategoryUnknown
	}
}

// Scope identifies which top-level store a profile was read from.
type Scope int

const (
	ScopeSystem Scope = iota
	ScopeUser
)

func (s Scope) String() string {
	if s == ScopeUser {
		return "user"
	}
	return "system"
}

// Profile is one configuration record. Profiles are immutable after load;
// Settings holds only the keys explicitly present in the source file, never
// inherited values.
type Profile struct {
	Name       string
	Category   Category
	Scope      Scope
	Inherits   string // parent profile name, empty for roots
	Settings   map[string]Value
	SourcePath string // relative to the store root, display only
}

// IsRoot reports whether the profile declares no parent.
func (p *Profile) IsRoot() bool {
	return p.Inherits == ""
}

// GroupPath returns the ownership grouping segments of the profile's source
// path (e.g. ["system", "Voron"] or ["user", "default"]).
func (p *Profile) GroupPath() []string {
	dir := filepath.ToSlash(filepath.Dir(p.SourcePath))
	if dir == "." || dir == "" {
		return nil
	}
	parts := strings.Split(dir, "/")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return parts
}

// CategoryFromPath infers a category from the directory segments of a
// profile's path. Returns CategoryUnknown when no known segment is present.
func CategoryFromPath(path string) Category {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if c := ParseCategory(part); c != CategoryUnknown {
			return c
		}
	}
	return CategoryUnknown
}

// Keys that only ever appear in one category of profile. Used as a
// last-resort heuristic when neither the type field nor the path decides.
var categoryKeyHints = map[string]Category{
	"filament_vendor":       CategoryFilament,
	"filament_type":         CategoryFilament,
	"filament_settings_id":  CategoryFilament,
	"nozzle_temperature":    CategoryFilament,
	"printer_model":         CategoryMachine,
	"printer_variant":       CategoryMachine,
	"machine_max_jerk_x":    CategoryMachine,
	"printable_area":        CategoryMachine,
	"layer_height":          CategoryProcess,
	"sparse_infill_density": CategoryProcess,
	"wall_loops":            CategoryProcess,
	"print_settings_id":     CategoryProcess,
}

// CategoryFromSettings infers a category from which setting keys are present.
func CategoryFromSettings(settings map[string]Value) Category {
	for key, c := range categoryKeyHints {
		if _, ok := settings[key]; ok {
			return c
		}
	}
	return CategoryUnknown
}

// SortProfiles orders profiles by category, then name, then scope (system
// before user). Deterministic output for lists and graphs.
func SortProfiles(profiles []*Profile) {
	slices.SortFunc(profiles, func(a, b *Profile) int {
		if a.Category != b.Category {
			return int(a.Category) - int(b.Category)
		}
		if a.Name != b.Name {
			return strings.Compare(a.Name, b.Name)
		}
		return int(a.Scope) - int(b.Scope)
	})
}
