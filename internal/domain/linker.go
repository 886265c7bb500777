package domain

// LinkedSet is the fully resolved profile model: an arena of immutable
// records plus parent links stored as index pairs. It is built once after
// all records are loaded and queried read-only afterwards.
type LinkedSet struct {
	profiles []*Profile
	parents  []int // parent arena index, -1 for roots
	broken   []bool
	pos      map[*Profile]int
	index    *nameIndex
	warnings []error
}

// NewLinkedSet links loaded records into an inheritance forest. Structural
// errors (duplicates, dangling parents, cycles) are recovered locally and
// reported through Warnings; they never abort the build.
func NewLinkedSet(profiles []*Profile) *LinkedSet {
	kept, idx, warnings := buildIndex(profiles)

	ls := &LinkedSet{
		profiles: kept,
		parents:  make([]int, len(kept)),
		broken:   make([]bool, len(kept)),
		pos:      make(map[*Profile]int, len(kept)),
		index:    idx,
		warnings: warnings,
	}
	for i, p := range kept {
		ls.parents[i] = -1
		ls.pos[p] = i
	}

	for i, p := range kept {
		if p.Inherits == "" {
			continue
		}

		j, ok := ls.resolveRef(i)
		if !ok {
			ls.warnings = append(ls.warnings, &DanglingParentError{
				Profile:  p.Name,
				Category: p.Category,
				Parent:   p.Inherits,
			})
			ls.broken[i] = true
			continue
		}

		if ls.walkClosesCycle(i, j) {
			ls.warnings = append(ls.warnings, &CycleError{
				Profile:  p.Name,
				Category: p.Category,
				Parent:   p.Inherits,
			})
			ls.broken[i] = true
			continue
		}

		ls.parents[i] = j
	}

	return ls
}

// resolveRef resolves the declared parent reference of the record at arena
// index from. Resolution always goes through the scope-precedence index; the
// one exception is a record whose reference resolves to itself while a
// shadowed record of the other scope exists — then the reference targets the
// shadowed record (a user override naming its system original as parent).
func (ls *LinkedSet) resolveRef(from int) (int, bool) {
	p := ls.profiles[from]
	if p.Inherits == "" {
		return -1, false
	}
	k := nameKey{p.Inherits, p.Category}
	j, ok := ls.index.byKey[k]
	if !ok {
		return -1, false
	}
	if j == from {
		if s, ok := ls.index.shadowed[k]; ok {
			return s, true
		}
		// Genuine self-reference: caught by the cycle walk.
	}
	return j, true
}

// walkClosesCycle walks declared references upward from candidate parent j,
// tracking visited arena indices. The link from record i is rejected only if
// the walk returns to i itself: records hanging off a foreign cycle keep
// their links while every record inside a cycle becomes a flagged root.
func (ls *LinkedSet) walkClosesCycle(i, j int) bool {
	visited := map[int]bool{i: true}
	cur := j
	for {
		if visited[cur] {
			return cur == i
		}
		visited[cur] = true
		next, ok := ls.resolveRef(cur)
		if !ok {
			return false
		}
		cur = next
	}
}

// Profiles returns the records of the linked model in load order.
func (ls *LinkedSet) Profiles() []*Profile {
	return ls.profiles
}

// Warnings returns the structural errors recovered during linking.
func (ls *LinkedSet) Warnings() []error {
	return ls.warnings
}

// Lookup resolves a name within a category with scope precedence.
func (ls *LinkedSet) Lookup(name string, category Category) (*Profile, bool) {
	i, ok := ls.index.byKey[nameKey{name, category}]
	if !ok {
		return nil, false
	}
	return ls.profiles[i], true
}

// LookupAny resolves a name across all categories, returning every match.
func (ls *LinkedSet) LookupAny(name string) []*Profile {
	var out []*Profile
	for _, c := range Categories {
		if p, ok := ls.Lookup(name, c); ok {
			out = append(out, p)
		}
	}
	return out
}

// Parent returns the linked parent of p, if any.
func (ls *LinkedSet) Parent(p *Profile) (*Profile, bool) {
	i, ok := ls.pos[p]
	if !ok || ls.parents[i] < 0 {
		return nil, false
	}
	return ls.profiles[ls.parents[i]], true
}

// IsBroken reports whether p had a parent reference rejected (dangling or
// cyclic). Broken records are kept as roots for traversal purposes.
func (ls *LinkedSet) IsBroken(p *Profile) bool {
	i, ok := ls.pos[p]
	return ok && ls.broken[i]
}

// Children returns the records directly inheriting from p, sorted.
func (ls *LinkedSet) Children(p *Profile) []*Profile {
	i, ok := ls.pos[p]
	if !ok {
		return nil
	}
	var out []*Profile
	for c, parent := range ls.parents {
		if parent == i {
			out = append(out, ls.profiles[c])
		}
	}
	SortProfiles(out)
	return out
}

// Descendants returns every record inheriting from p, directly or
// transitively, in breadth-first order.
func (ls *LinkedSet) Descendants(p *Profile) []*Profile {
	var out []*Profile
	queue := []*Profile{p}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		children := ls.Children(cur)
		out = append(out, children...)
		queue = append(queue, children...)
	}
	return out
}

// Roots returns the records with no linked parent, optionally restricted to
// a category, sorted.
func (ls *LinkedSet) Roots(category Category) []*Profile {
	var out []*Profile
	for i, p := range ls.profiles {
		if ls.parents[i] != -1 {
			continue
		}
		if category != CategoryUnknown && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	SortProfiles(out)
	return out
}
