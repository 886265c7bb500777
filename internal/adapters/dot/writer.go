// Package dot renders assembled profile graphs as Graphviz DOT text.
package dot

import (
	"fmt"
	"sort"
	"strings"

	"orcascope/internal/domain"
)

// Colors per profile origin; broken links get a red outline instead of the
// scope border.
const (
	systemFill = "lightblue"
	userFill   = "lightyellow"
	brokenLine = "red"
)

// Write renders the graph as a DOT digraph. Edges point parent→child so that
// inheritance flows left to right under rankdir=LR.
func Write(g *domain.Graph, title string) string {
	var b strings.Builder

	b.WriteString("digraph profiles {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnode [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\"];\n")
	if title != "" {
		fmt.Fprintf(&b, "\tlabel=%s;\n\tlabelloc=t;\n", quote(title))
	}
	b.WriteString("\n")

	grouped := groupNodes(g)
	cluster := 0
	for _, group := range sortedGroups(grouped) {
		indent := "\t"
		if group != "" {
			fmt.Fprintf(&b, "\tsubgraph cluster_%d {\n", cluster)
			fmt.Fprintf(&b, "\t\tlabel=%s;\n", quote(group))
			b.WriteString("\t\tstyle=dashed;\n")
			indent = "\t\t"
			cluster++
		}
		for _, i := range grouped[group] {
			writeNode(&b, indent, i, g.Nodes[i])
		}
		if group != "" {
			b.WriteString("\t}\n")
		}
	}

	b.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "\tn%d -> n%d [arrowhead=vee];\n", e.Parent, e.Child)
	}
	b.WriteString("}\n")

	return b.String()
}

func writeNode(b *strings.Builder, indent string, id int, n domain.GraphNode) {
	fill := systemFill
	if n.Scope == domain.ScopeUser {
		fill = userFill
	}
	attrs := fmt.Sprintf("label=%s, fillcolor=%s", quote(n.Label), quote(fill))
	if n.Broken {
		attrs += fmt.Sprintf(", color=%s, penwidth=2", quote(brokenLine))
	}
	fmt.Fprintf(b, "%sn%d [%s];\n", indent, id, attrs)
}

// groupNodes buckets node indices by group; the empty group holds ungrouped
// nodes and renders at the digraph top level.
func groupNodes(g *domain.Graph) map[string][]int {
	grouped := make(map[string][]int)
	for i, n := range g.Nodes {
		grouped[n.Group] = append(grouped[n.Group], i)
	}
	return grouped
}

func sortedGroups(grouped map[string][]int) []string {
	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// quote escapes a label for DOT: backslashes and quotes are escaped and
// newlines become line separators within the node.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
