package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"orcascope/internal/domain"
)

func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "system/Acme/filament/Base PLA.json", `{
		"type": "filament",
		"name": "Base PLA",
		"filament_type": ["PLA"],
		"nozzle_temperature": [210]
	}`)
	writeFile(t, root, "system/Acme/filament/Acme PLA Red.json", `{
		"type": "filament",
		"name": "Acme PLA Red",
		"inherits": "Base PLA",
		"filament_colour": ["#FF0000"]
	}`)
	writeFile(t, root, "user/default/machine/My Printer.json", `{
		"name": "My Printer",
		"printer_model": "Acme X1"
	}`)

	loader := NewLoader(root)
	profiles, warnings, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}

	byName := make(map[string]*domain.Profile)
	for _, p := range profiles {
		byName[p.Name] = p
	}

	base := byName["Base PLA"]
	if base == nil {
		t.Fatal("Base PLA not loaded")
	}
	if base.Category != domain.CategoryFilament {
		t.Errorf("category = %v, want filament", base.Category)
	}
	if base.Scope != domain.ScopeSystem {
		t.Errorf("scope = %v, want system", base.Scope)
	}
	if got := base.Settings["nozzle_temperature"].String(); got != "210" {
		t.Errorf("nozzle_temperature = %q, want %q", got, "210")
	}

	red := byName["Acme PLA Red"]
	if red == nil {
		t.Fatal("Acme PLA Red not loaded")
	}
	if red.Inherits != "Base PLA" {
		t.Errorf("inherits = %q, want %q", red.Inherits, "Base PLA")
	}

	printer := byName["My Printer"]
	if printer == nil {
		t.Fatal("My Printer not loaded")
	}
	if printer.Scope != domain.ScopeUser {
		t.Errorf("scope = %v, want user", printer.Scope)
	}
	// No explicit type and no category path segment: inferred from keys
	if printer.Category != domain.CategoryMachine {
		t.Errorf("category = %v, want machine", printer.Category)
	}
}

func TestLoadAllSkipsMalformedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "system/Acme/filament/Good.json", `{"name": "Good", "type": "filament"}`)
	writeFile(t, root, "system/Acme/filament/Broken.json", `{"name": "Broken",`)
	writeFile(t, root, "system/Acme/filament/Nameless.json", `{"type": "filament"}`)

	profiles, warnings, err := NewLoader(root).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Good" {
		t.Fatalf("expected only Good to load, got %d profiles", len(profiles))
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	for _, w := range warnings {
		var le *domain.LoadError
		if !errors.As(w, &le) {
			t.Errorf("warning %v is not a LoadError", w)
		}
	}
}

func TestLoadAllToleratesComments(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "system/Acme/process/Fine.json", `{
		// vendor tuning notes
		"name": "Fine",
		"type": "process",
		"layer_height": "0.12",
	}`)

	profiles, warnings, err := NewLoader(root).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	if got := profiles[0].Settings["layer_height"].String(); got != "0.12" {
		t.Errorf("layer_height = %q, want %q", got, "0.12")
	}
}

func TestLoadCategories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "system/Acme/filament/F.json", `{"name": "F", "type": "filament"}`)
	writeFile(t, root, "system/Acme/process/P.json", `{"name": "P", "type": "process"}`)
	writeFile(t, root, "system/Acme/machine/M.json", `{"name": "M", "type": "machine"}`)

	profiles, _, err := NewLoader(root).LoadCategories([]domain.Category{domain.CategoryProcess})
	if err != nil {
		t.Fatalf("LoadCategories() error = %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "P" {
		t.Fatalf("expected only the process profile, got %d profiles", len(profiles))
	}
}

func TestLoadAllMissingScopeDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "system/Acme/filament/F.json", `{"name": "F", "type": "filament"}`)

	// No user/ directory at all: must not be treated as an error.
	profiles, warnings, err := NewLoader(root).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(warnings) != 0 || len(profiles) != 1 {
		t.Fatalf("got %d profiles, %d warnings", len(profiles), len(warnings))
	}
}

func TestParseCategoryFromPath(t *testing.T) {
	p, err := Parse("user/default/filament/Custom.json", []byte(`{"name": "Custom"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Category != domain.CategoryFilament {
		t.Errorf("category = %v, want filament", p.Category)
	}
	if p.Scope != domain.ScopeUser {
		t.Errorf("scope = %v, want user", p.Scope)
	}
}

func TestParseReservedKeysExcluded(t *testing.T) {
	p, err := Parse("system/Acme/filament/F.json", []byte(`{
		"name": "F",
		"inherits": "Base",
		"from": "system",
		"type": "filament",
		"filament_type": ["PLA"]
	}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, key := range []string{"name", "inherits", "from", "type"} {
		if _, ok := p.Settings[key]; ok {
			t.Errorf("reserved key %q leaked into settings", key)
		}
	}
	if _, ok := p.Settings["filament_type"]; !ok {
		t.Error("filament_type missing from settings")
	}
}
