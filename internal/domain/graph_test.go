package domain

import (
	"errors"
	"testing"
)

func TestAssembleGraphAll(t *testing.T) {
	root := filament("Root", "", ScopeSystem)
	leaf := filament("Leaf", "Root", ScopeUser)
	machine := &Profile{Name: "Printer", Category: CategoryMachine, Settings: map[string]Value{}}

	ls := NewLinkedSet([]*Profile{root, leaf, machine})

	g, err := ls.AssembleGraph(GraphFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(g.Nodes) != 3 {
		t.Errorf("expected 3 nodes, got %d", len(g.Nodes))
	}
	if len(g.Edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(g.Edges))
	}
	edge := g.Edges[0]
	if g.Nodes[edge.Child].Name != "Leaf" || g.Nodes[edge.Parent].Name != "Root" {
		t.Error("expected edge Leaf→Root")
	}
}

func TestAssembleGraphCategoryFilter(t *testing.T) {
	root := filament("Root", "", ScopeSystem)
	machine := &Profile{Name: "Printer", Category: CategoryMachine, Settings: map[string]Value{}}

	ls := NewLinkedSet([]*Profile{root, machine})

	g, err := ls.AssembleGraph(GraphFilter{Categories: []Category{CategoryFilament}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Nodes) != 1 || g.Nodes[0].Name != "Root" {
		t.Errorf("expected only the filament node, got %d nodes", len(g.Nodes))
	}
}

func TestAssembleGraphUserBranches(t *testing.T) {
	// Chain touching a user record: all three retained.
	root := filament("Root", "", ScopeSystem)
	mid := filament("Mid", "Root", ScopeSystem)
	leaf := filament("Leaf", "Mid", ScopeUser)
	// Disjoint all-system chain: entirely excluded.
	otherRoot := filament("Other Root", "", ScopeSystem)
	otherLeaf := filament("Other Leaf", "Other Root", ScopeSystem)

	ls := NewLinkedSet([]*Profile{root, mid, leaf, otherRoot, otherLeaf})

	g, err := ls.AssembleGraph(GraphFilter{UserBranches: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(g.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(g.Nodes))
	}
	for _, node := range g.Nodes {
		if node.Name == "Other Root" || node.Name == "Other Leaf" {
			t.Errorf("expected %s to be excluded", node.Name)
		}
	}
	if len(g.Edges) != 2 {
		t.Errorf("expected 2 edges, got %d", len(g.Edges))
	}
}

func TestAssembleGraphUserBranchDescendants(t *testing.T) {
	userRoot := filament("User Root", "", ScopeUser)
	systemChild := filament("System Child", "User Root", ScopeSystem)

	ls := NewLinkedSet([]*Profile{userRoot, systemChild})

	g, err := ls.AssembleGraph(GraphFilter{UserBranches: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Errorf("expected descendant of a user record retained, got %d nodes", len(g.Nodes))
	}
}

func TestAssembleGraphIncludesBrokenRecords(t *testing.T) {
	orphan := filament("Orphan", "Missing", ScopeUser)

	ls := NewLinkedSet([]*Profile{orphan})

	g, err := ls.AssembleGraph(GraphFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Nodes) != 1 {
		t.Fatal("expected broken record to appear as a node")
	}
	if !g.Nodes[0].Broken {
		t.Error("expected node to carry the broken flag")
	}
	if len(g.Edges) != 0 {
		t.Error("expected no edges for a broken link")
	}
}

func TestAssembleGraphTarget(t *testing.T) {
	root := filament("Root", "", ScopeSystem)
	target := filament("Target", "Root", ScopeSystem)
	child := filament("Child", "Target", ScopeUser)
	sibling := filament("Sibling", "Root", ScopeSystem)

	ls := NewLinkedSet([]*Profile{root, target, child, sibling})

	g, err := ls.AssembleGraph(GraphFilter{Target: "Target", TargetCategory: CategoryFilament})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(g.Nodes) != 3 {
		t.Fatalf("expected chain + descendants (3 nodes), got %d", len(g.Nodes))
	}
	for _, node := range g.Nodes {
		if node.Name == "Sibling" {
			t.Error("expected sibling outside the closure to be excluded")
		}
	}
}

func TestAssembleGraphTargetNotFound(t *testing.T) {
	ls := NewLinkedSet(nil)

	_, err := ls.AssembleGraph(GraphFilter{Target: "Ghost"})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestAssembleGraphGrouping(t *testing.T) {
	p := filament("Grouped", "", ScopeSystem)
	p.SourcePath = "system/Voron/filament/Grouped.json"

	ls := NewLinkedSet([]*Profile{p})

	g, err := ls.AssembleGraph(GraphFilter{GroupByDir: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Nodes[0].Group != "system/Voron" {
		t.Errorf("expected group system/Voron, got %q", g.Nodes[0].Group)
	}
}
