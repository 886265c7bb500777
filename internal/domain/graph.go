package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GraphFilter selects which records survive into an assembled graph.
type GraphFilter struct {
	Categories     []Category // empty keeps all categories
	UserBranches   bool       // keep only branches touching a user record
	Target         string     // restrict to one record's chain + descendants
	TargetCategory Category   // category of Target; unknown means search all
	GroupByDir     bool       // nest nodes by source directory ownership
}

// GraphNode is one surviving record, ready for a rendering collaborator.
type GraphNode struct {
	Name     string
	Category Category
	Scope    Scope
	Broken   bool
	Label    string // detailed multi-line label
	Group    string // ownership grouping path, empty when grouping is off
}

// GraphEdge is a surviving child→parent link, as indices into Nodes.
type GraphEdge struct {
	Child  int
	Parent int
}

// Graph is the abstract node/edge structure handed to renderers. It carries
// no settings logic.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

// AssembleGraph produces the node/edge view of the linked model. An edge
// survives only when both endpoints survive the filter.
func (ls *LinkedSet) AssembleGraph(f GraphFilter) (*Graph, error) {
	n := len(ls.profiles)
	surviving := make([]bool, n)
	for i := range surviving {
		surviving[i] = true
	}

	if len(f.Categories) > 0 {
		wanted := make(map[Category]bool, len(f.Categories))
		for _, c := range f.Categories {
			wanted[c] = true
		}
		for i, p := range ls.profiles {
			if !wanted[p.Category] {
				surviving[i] = false
			}
		}
	}

	if f.Target != "" {
		keep, err := ls.targetClosure(f.Target, f.TargetCategory)
		if err != nil {
			return nil, err
		}
		for i := range surviving {
			surviving[i] = surviving[i] && keep[i]
		}
	}

	if f.UserBranches {
		keep := ls.userBranchClosure()
		for i := range surviving {
			surviving[i] = surviving[i] && keep[i]
		}
	}

	g := &Graph{}
	nodeIdx := make([]int, n)
	for i, p := range ls.profiles {
		nodeIdx[i] = -1
		if !surviving[i] {
			continue
		}
		node := GraphNode{
			Name:     p.Name,
			Category: p.Category,
			Scope:    p.Scope,
			Broken:   ls.broken[i],
			Label:    nodeLabel(p),
		}
		if f.GroupByDir {
			node.Group = strings.Join(p.GroupPath(), "/")
		}
		nodeIdx[i] = len(g.Nodes)
		g.Nodes = append(g.Nodes, node)
	}

	for i, parent := range ls.parents {
		if parent < 0 || !surviving[i] || !surviving[parent] {
			continue
		}
		g.Edges = append(g.Edges, GraphEdge{Child: nodeIdx[i], Parent: nodeIdx[parent]})
	}

	return g, nil
}

// targetClosure marks the target's full chain plus all of its descendants.
func (ls *LinkedSet) targetClosure(name string, category Category) ([]bool, error) {
	target, err := ls.Find(name, category)
	if err != nil {
		return nil, err
	}

	keep := make([]bool, len(ls.profiles))
	chain, err := ls.ChainOf(target)
	if err != nil {
		return nil, err
	}
	for _, p := range chain {
		keep[ls.pos[p]] = true
	}
	for _, p := range ls.Descendants(target) {
		keep[ls.pos[p]] = true
	}
	return keep, nil
}

// userBranchClosure marks every record whose chain or descendant set touches
// a user-scope record.
func (ls *LinkedSet) userBranchClosure() []bool {
	keep := make([]bool, len(ls.profiles))
	for i, p := range ls.profiles {
		if p.Scope != ScopeUser {
			continue
		}
		keep[i] = true
		for cur := ls.parents[i]; cur >= 0; cur = ls.parents[cur] {
			keep[cur] = true
		}
		for _, d := range ls.Descendants(p) {
			keep[ls.pos[d]] = true
		}
	}
	return keep
}

// Find resolves a name to a single record, searching all categories when none
// is given and failing on ambiguity rather than guessing.
func (ls *LinkedSet) Find(name string, category Category) (*Profile, error) {
	if category != CategoryUnknown {
		p, ok := ls.Lookup(name, category)
		if !ok {
			return nil, fmt.Errorf("%w: %s profile %q", ErrProfileNotFound, category, name)
		}
		return p, nil
	}
	matches := ls.LookupAny(name)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %q matches multiple categories, specify one", ErrAmbiguousName, name)
	}
}

func nodeLabel(p *Profile) string {
	parts := []string{p.Name}
	if vendor, ok := p.Settings["filament_vendor"]; ok && !vendor.IsEmpty() {
		parts = append(parts, "Vendor: "+vendor.String())
	}
	parts = append(parts, "File: "+filepath.Base(p.SourcePath))
	return strings.Join(parts, "\n")
}
