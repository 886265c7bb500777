package domain

import (
	"sort"
	"strings"
)

// Table is the tabular structure handed to the rendering collaborator:
// rows are setting keys, columns are profiles.
type Table struct {
	Header []string
	Rows   [][]string
}

// compactKey reports keys whose values are long free-form blocks (custom
// gcode, notes). Tables show only whether such a key is set.
func compactKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "gcode") || lower == "filament_notes"
}

// cellValue renders one setting cell. Compacted keys show SET/- regardless
// of whether the value is declared or inherited.
func cellValue(key string, v Value, defined bool) string {
	if compactKey(key) {
		if defined && !v.IsEmpty() {
			return "SET"
		}
		return "-"
	}
	if !defined || v.String() == "" {
		return "-"
	}
	return v.String()
}

// ChainTable builds the per-chain comparison: one column per profile in
// root-to-target order, cells holding each profile's raw (declared) values.
func ChainTable(chain Chain) *Table {
	keySet := make(map[string]bool)
	for _, p := range chain {
		for key := range p.Settings {
			keySet[key] = true
		}
	}
	keys := sortedKeys(keySet)

	t := &Table{Header: []string{"Setting Name"}}
	for _, p := range chain {
		t.Header = append(t.Header, p.Name)
	}

	for _, key := range keys {
		row := []string{key}
		for _, p := range chain {
			v, defined := p.Settings[key]
			row = append(row, cellValue(key, v, defined))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// EffectiveTable builds the single-profile effective view: resolved value
// plus the profile that defined it, per key.
func EffectiveTable(target *Profile, view EffectiveView) *Table {
	t := &Table{Header: []string{"Setting Name", target.Name, "Defined By"}}
	for _, key := range view.Keys() {
		setting := view[key]
		cell := cellValue(key, setting.Value, true)
		t.Rows = append(t.Rows, []string{key, cell, setting.DefinedBy})
	}
	return t
}

// CompareTable builds the multi-profile comparison: one column per queried
// profile, cells holding effective values. profiles and views correspond by
// position.
func CompareTable(profiles []*Profile, views []EffectiveView) *Table {
	keySet := make(map[string]bool)
	for _, view := range views {
		for key := range view {
			keySet[key] = true
		}
	}
	keys := sortedKeys(keySet)

	t := &Table{Header: []string{"Setting Name"}}
	for _, p := range profiles {
		t.Header = append(t.Header, p.Name)
	}

	for _, key := range keys {
		row := []string{key}
		for _, view := range views {
			setting, ok := view[key]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, cellValue(key, setting.Value, true))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Markdown renders the table in markdown form.
func (t *Table) Markdown() string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(t.Header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(t.Header)) + "\n")
	for _, row := range t.Rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return b.String()
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
