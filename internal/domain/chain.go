package domain

import "fmt"

// MaxChainDepth caps chain traversal. Cycles are rejected at link time, but
// the cap guards any partially-linked state from looping a query forever.
const MaxChainDepth = 64

// Chain is the ordered ancestor sequence of a record, from the ultimate root
// to the record itself. Chains are derived per query and never persisted.
type Chain []*Profile

// Target returns the record the chain was built for.
func (c Chain) Target() *Profile {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Chain resolves a name within a category and builds its inheritance chain.
// A missing target is the only user-facing failure in the model.
func (ls *LinkedSet) Chain(name string, category Category) (Chain, error) {
	i, ok := ls.index.byKey[nameKey{name, category}]
	if !ok {
		return nil, fmt.Errorf("%w: %s profile %q", ErrProfileNotFound, category, name)
	}
	return ls.chainFrom(i)
}

// ChainOf builds the inheritance chain of an already-resolved record.
func (ls *LinkedSet) ChainOf(p *Profile) (Chain, error) {
	i, ok := ls.pos[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s profile %q", ErrProfileNotFound, p.Category, p.Name)
	}
	return ls.chainFrom(i)
}

func (ls *LinkedSet) chainFrom(target int) (Chain, error) {
	var idxs []int
	for cur := target; cur >= 0; cur = ls.parents[cur] {
		if len(idxs) > MaxChainDepth {
			return nil, &ChainTooDeepError{
				Profile: ls.profiles[target].Name,
				Depth:   MaxChainDepth,
			}
		}
		idxs = append(idxs, cur)
	}

	chain := make(Chain, len(idxs))
	for i, idx := range idxs {
		chain[len(idxs)-1-i] = ls.profiles[idx]
	}
	return chain, nil
}
