package domain

import "testing"

func TestEffectiveSettingsOverrideOrder(t *testing.T) {
	a := filament("A", "", ScopeSystem)
	a.Settings["x"] = Value{"1"}
	b := filament("B", "A", ScopeSystem)
	b.Settings["x"] = Value{"2"}
	b.Settings["y"] = Value{"5"}
	c := filament("C", "B", ScopeUser)
	c.Settings["y"] = Value{"9"}

	ls := NewLinkedSet([]*Profile{a, b, c})
	chain, err := ls.Chain("C", CategoryFilament)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := EffectiveSettings(chain)

	if got := view["x"]; got.Value.String() != "2" || got.DefinedBy != "B" {
		t.Errorf("expected x=2 from B, got %s from %s", got.Value, got.DefinedBy)
	}
	if got := view["y"]; got.Value.String() != "9" || got.DefinedBy != "C" {
		t.Errorf("expected y=9 from C, got %s from %s", got.Value, got.DefinedBy)
	}
	if len(view) != 2 {
		t.Errorf("expected 2 keys, got %d", len(view))
	}
}

func TestEffectiveSettingsIdempotent(t *testing.T) {
	a := filament("A", "", ScopeSystem)
	a.Settings["x"] = Value{"1"}
	a.Settings["z"] = Value{"a", "b"}
	b := filament("B", "A", ScopeUser)
	b.Settings["x"] = Value{"2"}

	ls := NewLinkedSet([]*Profile{a, b})
	chain, err := ls.Chain("B", CategoryFilament)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := EffectiveSettings(chain)
	second := EffectiveSettings(chain)

	if len(first) != len(second) {
		t.Fatalf("view sizes differ: %d vs %d", len(first), len(second))
	}
	for key, want := range first {
		got := second[key]
		if !got.Value.Equal(want.Value) || got.DefinedBy != want.DefinedBy {
			t.Errorf("key %s differs between runs: %+v vs %+v", key, want, got)
		}
	}
}

func TestEffectiveSettingsDoNotMutateRecords(t *testing.T) {
	a := filament("A", "", ScopeSystem)
	a.Settings["x"] = Value{"1"}
	b := filament("B", "A", ScopeUser)

	ls := NewLinkedSet([]*Profile{a, b})
	chain, err := ls.Chain("B", CategoryFilament)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_ = EffectiveSettings(chain)

	if len(b.Settings) != 0 {
		t.Error("expected target record's raw settings to stay empty")
	}
}

func TestEffectiveViewKeysSorted(t *testing.T) {
	view := EffectiveView{
		"zz": {Value: Value{"1"}, DefinedBy: "A"},
		"aa": {Value: Value{"2"}, DefinedBy: "A"},
		"mm": {Value: Value{"3"}, DefinedBy: "A"},
	}

	keys := view.Keys()
	want := []string{"aa", "mm", "zz"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("expected key %d to be %s, got %s", i, k, keys[i])
		}
	}
}
