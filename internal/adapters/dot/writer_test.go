package dot

import (
	"strings"
	"testing"

	"orcascope/internal/domain"
)

func sampleGraph() *domain.Graph {
	return &domain.Graph{
		Nodes: []domain.GraphNode{
			{Name: "Base PLA", Category: domain.CategoryFilament, Scope: domain.ScopeSystem,
				Label: "Base PLA\nFile: Base PLA.json"},
			{Name: "My PLA", Category: domain.CategoryFilament, Scope: domain.ScopeUser,
				Label: "My PLA\nFile: My PLA.json"},
			{Name: "Orphan", Category: domain.CategoryFilament, Scope: domain.ScopeSystem,
				Broken: true, Label: "Orphan"},
		},
		Edges: []domain.GraphEdge{{Child: 1, Parent: 0}},
	}
}

func TestWrite(t *testing.T) {
	out := Write(sampleGraph(), "filament profiles")

	for _, want := range []string{
		"digraph profiles {",
		"rankdir=LR;",
		`label="filament profiles";`,
		`n0 [label="Base PLA\nFile: Base PLA.json", fillcolor="lightblue"];`,
		`n1 [label="My PLA\nFile: My PLA.json", fillcolor="lightyellow"];`,
		`color="red", penwidth=2`,
		"n0 -> n1 [arrowhead=vee];",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestWriteGrouped(t *testing.T) {
	g := sampleGraph()
	g.Nodes[0].Group = "system/Acme"
	g.Nodes[1].Group = "user/default"

	out := Write(g, "")

	if !strings.Contains(out, "subgraph cluster_0 {") {
		t.Error("expected a cluster subgraph for grouped nodes")
	}
	if !strings.Contains(out, `label="system/Acme";`) {
		t.Error("expected group label for system/Acme")
	}
	if !strings.Contains(out, `label="user/default";`) {
		t.Error("expected group label for user/default")
	}
	if strings.Contains(out, "label=;") {
		t.Error("ungrouped nodes must not produce a labelled cluster")
	}
}

func TestQuoteEscapes(t *testing.T) {
	g := &domain.Graph{
		Nodes: []domain.GraphNode{
			{Name: `He said "hi"`, Label: `He said "hi"`, Scope: domain.ScopeSystem},
		},
	}
	out := Write(g, "")
	if !strings.Contains(out, `label="He said \"hi\""`) {
		t.Errorf("quotes not escaped:\n%s", out)
	}
}
