package domain

import (
	"errors"
	"testing"
)

func filament(name, inherits string, scope Scope) *Profile {
	return &Profile{
		Name:       name,
		Category:   CategoryFilament,
		Scope:      scope,
		Inherits:   inherits,
		Settings:   map[string]Value{},
		SourcePath: scope.String() + "/" + name + ".json",
	}
}

func TestScopePrecedence(t *testing.T) {
	system := filament("Foo", "", ScopeSystem)
	system.Settings["a"] = Value{"1"}
	user := filament("Foo", "", ScopeUser)
	user.Settings["a"] = Value{"2"}
	child := filament("Bar", "Foo", ScopeUser)

	ls := NewLinkedSet([]*Profile{system, user, child})

	if got, ok := ls.Lookup("Foo", CategoryFilament); !ok || got != user {
		t.Error("expected lookup to resolve to the user-scope record")
	}

	parent, ok := ls.Parent(child)
	if !ok || parent != user {
		t.Error("expected child's parent_ref to resolve to the user-scope shadow")
	}

	// Both records remain distinct nodes.
	if len(ls.Profiles()) != 3 {
		t.Errorf("expected 3 profiles in the model, got %d", len(ls.Profiles()))
	}
}

func TestUserShadowInheritsSystemOriginal(t *testing.T) {
	system := filament("Foo", "", ScopeSystem)
	user := filament("Foo", "Foo", ScopeUser)

	ls := NewLinkedSet([]*Profile{system, user})

	parent, ok := ls.Parent(user)
	if !ok || parent != system {
		t.Fatal("expected user shadow to link to the shadowed system record")
	}
	if ls.IsBroken(user) {
		t.Error("expected user shadow link to be accepted")
	}
	if len(ls.Warnings()) != 0 {
		t.Errorf("expected no warnings, got %v", ls.Warnings())
	}
}

func TestSelfReferenceIsCycle(t *testing.T) {
	p := filament("Loop", "Loop", ScopeSystem)

	ls := NewLinkedSet([]*Profile{p})

	if _, ok := ls.Parent(p); ok {
		t.Error("expected self-referencing link to be rejected")
	}
	if !ls.IsBroken(p) {
		t.Error("expected self-referencing record to be flagged broken")
	}
	assertWarning(t, ls.Warnings(), ErrCycle)
}

func TestSameScopeDuplicateDropped(t *testing.T) {
	first := filament("Dup", "", ScopeSystem)
	first.SourcePath = "system/A/Dup.json"
	second := filament("Dup", "", ScopeSystem)
	second.SourcePath = "system/B/Dup.json"

	ls := NewLinkedSet([]*Profile{first, second})

	if len(ls.Profiles()) != 1 {
		t.Fatalf("expected duplicate to be dropped, got %d profiles", len(ls.Profiles()))
	}
	if ls.Profiles()[0] != first {
		t.Error("expected the first-loaded record to be kept")
	}

	var ambiguous *AmbiguousNameError
	if !errors.As(warningOf(t, ls.Warnings(), ErrAmbiguousName), &ambiguous) {
		t.Fatal("expected an AmbiguousNameError warning")
	}
	if ambiguous.DroppedPath != "system/B/Dup.json" {
		t.Errorf("expected dropped path system/B/Dup.json, got %s", ambiguous.DroppedPath)
	}
}

func TestSameScopeDuplicateBehindShadow(t *testing.T) {
	// A second system record arriving after the user shadow must still
	// collide with the first system record, not slip in as its replacement.
	first := filament("Foo", "", ScopeSystem)
	first.SourcePath = "system/A/Foo.json"
	shadow := filament("Foo", "Foo", ScopeUser)
	second := filament("Foo", "", ScopeSystem)
	second.SourcePath = "system/B/Foo.json"

	ls := NewLinkedSet([]*Profile{first, shadow, second})

	if len(ls.Profiles()) != 2 {
		t.Fatalf("expected duplicate to be dropped, got %d profiles", len(ls.Profiles()))
	}

	var ambiguous *AmbiguousNameError
	if !errors.As(warningOf(t, ls.Warnings(), ErrAmbiguousName), &ambiguous) {
		t.Fatal("expected an AmbiguousNameError warning")
	}
	if ambiguous.KeptPath != "system/A/Foo.json" || ambiguous.DroppedPath != "system/B/Foo.json" {
		t.Errorf("expected first record kept and second dropped, got kept %s dropped %s",
			ambiguous.KeptPath, ambiguous.DroppedPath)
	}

	// The user shadow still links to the original system record.
	if parent, ok := ls.Parent(shadow); !ok || parent != first {
		t.Error("expected shadow to keep the first system record as parent")
	}
}

func TestDanglingParent(t *testing.T) {
	orphan := filament("Orphan", "Missing", ScopeUser)

	ls := NewLinkedSet([]*Profile{orphan})

	if _, ok := ls.Parent(orphan); ok {
		t.Error("expected no parent link for dangling reference")
	}
	if !ls.IsBroken(orphan) {
		t.Error("expected dangling record to be flagged broken")
	}
	if len(ls.Roots(CategoryFilament)) != 1 {
		t.Error("expected dangling record to be kept as a root")
	}
	assertWarning(t, ls.Warnings(), ErrDanglingParent)
}

func TestCrossCategoryReferenceDangles(t *testing.T) {
	machine := &Profile{Name: "Shared", Category: CategoryMachine, Settings: map[string]Value{}}
	child := filament("Child", "Shared", ScopeUser)

	ls := NewLinkedSet([]*Profile{machine, child})

	if _, ok := ls.Parent(child); ok {
		t.Error("expected filament profile not to inherit a machine profile")
	}
	assertWarning(t, ls.Warnings(), ErrDanglingParent)
}

func TestTwoCycleBothFlaggedRoots(t *testing.T) {
	x := filament("X", "Y", ScopeSystem)
	y := filament("Y", "X", ScopeSystem)

	ls := NewLinkedSet([]*Profile{x, y})

	for _, p := range []*Profile{x, y} {
		if _, ok := ls.Parent(p); ok {
			t.Errorf("expected %s to have no parent", p.Name)
		}
		if !ls.IsBroken(p) {
			t.Errorf("expected %s to be flagged broken", p.Name)
		}
	}
	if len(ls.Roots(CategoryFilament)) != 2 {
		t.Error("expected both cycle members as roots")
	}
	assertWarning(t, ls.Warnings(), ErrCycle)
}

func TestDescendantOfCycleKeepsLink(t *testing.T) {
	x := filament("X", "Y", ScopeSystem)
	y := filament("Y", "X", ScopeSystem)
	c := filament("C", "X", ScopeUser)

	ls := NewLinkedSet([]*Profile{x, y, c})

	parent, ok := ls.Parent(c)
	if !ok || parent != x {
		t.Error("expected record hanging off the cycle to keep its link")
	}
	if ls.IsBroken(c) {
		t.Error("expected record outside the cycle not to be flagged")
	}
}

func TestChildrenAndDescendants(t *testing.T) {
	root := filament("Root", "", ScopeSystem)
	mid := filament("Mid", "Root", ScopeSystem)
	leafA := filament("Leaf A", "Mid", ScopeUser)
	leafB := filament("Leaf B", "Mid", ScopeUser)

	ls := NewLinkedSet([]*Profile{root, mid, leafA, leafB})

	children := ls.Children(mid)
	if len(children) != 2 || children[0] != leafA || children[1] != leafB {
		t.Errorf("expected sorted children [Leaf A, Leaf B], got %v", names(children))
	}

	descendants := ls.Descendants(root)
	if len(descendants) != 3 {
		t.Errorf("expected 3 descendants of root, got %v", names(descendants))
	}
}

func names(profiles []*Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Name
	}
	return out
}

func warningOf(t *testing.T, warnings []error, target error) error {
	t.Helper()
	for _, w := range warnings {
		if errors.Is(w, target) {
			return w
		}
	}
	t.Fatalf("expected a warning matching %v, got %v", target, warnings)
	return nil
}

func assertWarning(t *testing.T, warnings []error, target error) {
	t.Helper()
	warningOf(t, warnings, target)
}
