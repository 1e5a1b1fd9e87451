package voronoi

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsteiner/core"
)

// AddSources inserts newTerms into the terminal set without recomputing the
// decomposition from scratch.
//
// Only the new terminals are seeded. A new terminal steals a node when its
// label (distance, terminal ID) is strictly smaller than the current owner's;
// the stolen node's boundary bookkeeping is dropped before reassignment.
// Contact edges met while the final owner of an endpoint may still change
// are deferred and recorded after the sweep if they cross regions.
//
// Returns the terminals whose region changed (the new terminals and every
// terminal that lost nodes), ascending. On a validation error the Engine is
// unchanged.
//
// Complexity: O((R + ∂R) log R) where R is the set of stolen nodes.
func (e *Engine) AddSources(newTerms []int) ([]int, error) {
	if len(newTerms) == 0 {
		return nil, nil
	}
	if err := e.validateNew(newTerms); err != nil {
		return nil, err
	}

	s := newSweep(e, modeAdd)
	for _, x := range newTerms {
		e.terms[x] = struct{}{}
		e.limits[x] = make(boundary)
		s.touched[x] = struct{}{}
		s.offer(x, x, 0, core.NoEdge)
	}
	s.run()
	e.refreshRadii(s.touched)

	affected := make(map[int]struct{}, len(newTerms)+len(s.lost))
	for _, x := range newTerms {
		affected[x] = struct{}{}
	}
	for y := range s.lost {
		affected[y] = struct{}{}
	}

	return sortedKeys(affected), nil
}

// RemSources removes remTerms from the terminal set and lets the surviving
// regions reclaim the emptied territory.
//
// Every boundary edge between a removed region and a live one turns its live
// endpoint into a re-seed at its current distance. The sweep only settles
// nodes that no live terminal owns; frontier seeds keep their state and just
// expand.
//
// Returns the live terminals whose region grew, ascending.
// Errors: ErrUnknownTerminal, ErrDuplicateTerminal, ErrLastTerminal; on error
// the Engine is unchanged.
//
// Complexity: O(V) scan + O((R + ∂R) log R) where R is the reclaimed territory.
func (e *Engine) RemSources(remTerms []int) ([]int, error) {
	if len(remTerms) == 0 {
		return nil, nil
	}
	removed := make(map[int]struct{}, len(remTerms))
	for _, x := range remTerms {
		if _, ok := e.terms[x]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownTerminal, x)
		}
		if _, dup := removed[x]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTerminal, x)
		}
		removed[x] = struct{}{}
	}
	if len(removed) >= len(e.terms) {
		return nil, ErrLastTerminal
	}

	s := newSweep(e, modeRemove)

	// 1) Detach removed regions from their live neighbours; collect seeds.
	type seed struct{ x, v int }
	var seeds []seed
	for r := range removed {
		for u, es := range e.limits[r] {
			for id := range es {
				v := e.g.Other(id, u)
				y := e.owner[v]
				if _, gone := removed[y]; gone {
					continue
				}
				e.limitRemove(y, v, id)
				s.touched[y] = struct{}{}
				seeds = append(seeds, seed{x: y, v: v})
			}
		}
		delete(e.limits, r)
		delete(e.radius, r)
		delete(e.terms, r)
	}

	// 2) Empty the removed territory.
	for u, x := range e.owner {
		if _, gone := removed[x]; gone {
			e.clear(u)
		}
	}

	// 3) Re-expand from the frontier.
	for _, sd := range seeds {
		s.offer(sd.x, sd.v, e.dist[sd.v], e.pred[sd.v])
	}
	s.run()
	e.refreshRadii(s.touched)

	return sortedKeys(s.grew), nil
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
