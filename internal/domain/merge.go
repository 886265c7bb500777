package domain

import "sort"

// EffectiveSetting is one resolved key: the most specific explicit value in
// the chain and the name of the profile that defined it.
type EffectiveSetting struct {
	Value     Value
	DefinedBy string
}

// EffectiveView maps setting keys to their resolved values with provenance.
// It is constructed per query and never mutates the source records.
type EffectiveView map[string]EffectiveSetting

// EffectiveSettings folds a chain root-to-target: each level's explicit keys
// overwrite the accumulated mapping, so every key ends up with the definition
// closest to the target and the provenance of that definition.
func EffectiveSettings(chain Chain) EffectiveView {
	view := make(EffectiveView)
	for _, p := range chain {
		for key, value := range p.Settings {
			view[key] = EffectiveSetting{Value: value, DefinedBy: p.Name}
		}
	}
	return view
}

// Keys returns the setting keys of the view in sorted order.
func (v EffectiveView) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
