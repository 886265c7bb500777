package domain

// nameKey identifies a profile within its resolvable namespace. Names are
// only required to be unique per (category, resolved scope).
type nameKey struct {
	name     string
	category Category
}

// nameIndex resolves profile names with scope precedence: when a user-scope
// and a system-scope record share a key, the user record is authoritative
// and the system record is remembered as shadowed.
type nameIndex struct {
	byKey    map[nameKey]int
	shadowed map[nameKey]int
}

// buildIndex indexes profiles in load order, dropping same-scope duplicates
// with an AmbiguousNameError warning. Returns the surviving arena, the index
// over it, and the warnings.
func buildIndex(profiles []*Profile) ([]*Profile, *nameIndex, []error) {
	idx := &nameIndex{
		byKey:    make(map[nameKey]int, len(profiles)),
		shadowed: make(map[nameKey]int),
	}
	kept := make([]*Profile, 0, len(profiles))
	var warnings []error

	for _, p := range profiles {
		k := nameKey{p.Name, p.Category}
		j, exists := idx.byKey[k]
		if !exists {
			idx.byKey[k] = len(kept)
			kept = append(kept, p)
			continue
		}

		// The same-scope occupant may sit in either slot: the indexed
		// record or the shadowed one.
		occupant := kept[j]
		if occupant.Scope != p.Scope {
			if si, ok := idx.shadowed[k]; ok && kept[si].Scope == p.Scope {
				occupant = kept[si]
			} else {
				occupant = nil
			}
		}
		if occupant != nil {
			// Same-scope collision is a data error: report, drop the later
			// record, never merge.
			warnings = append(warnings, &AmbiguousNameError{
				Name:        p.Name,
				Category:    p.Category,
				Scope:       p.Scope,
				KeptPath:    occupant.SourcePath,
				DroppedPath: p.SourcePath,
			})
			continue
		}

		// Cross-scope collision: both records stay in the model as distinct
		// nodes, the user one wins name resolution.
		kept = append(kept, p)
		if p.Scope == ScopeUser {
			idx.shadowed[k] = j
			idx.byKey[k] = len(kept) - 1
		} else {
			idx.shadowed[k] = len(kept) - 1
		}
	}

	return kept, idx, warnings
}
