package voronoi

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// ErrInvariant is wrapped by every failure reported from Validate.
var ErrInvariant = errors.New("voronoi: invariant violated")

// Validate checks the structural invariants of the decomposition:
//
//   - every terminal owns itself at distance 0;
//   - every reached node's predecessor edge leads to a node of the same
//     region with dist(u) = dist(p) + w;
//   - an edge is recorded as crossing iff its endpoints lie in different
//     regions, and then it is recorded on both sides.
//
// It does not check optimality of distances (see the brute-force tests).
// Complexity: O(V + E).
func (e *Engine) Validate() error {
	for x := range e.terms {
		if e.owner[x] != x || e.dist[x] != 0 || e.pred[x] != core.NoEdge {
			return fmt.Errorf("%w: terminal %d owner=%d dist=%d", ErrInvariant, x, e.owner[x], e.dist[x])
		}
	}
	for u, x := range e.owner {
		if x == NoOwner {
			continue
		}
		if _, ok := e.terms[x]; !ok {
			return fmt.Errorf("%w: node %d owned by untracked %d", ErrInvariant, u, x)
		}
		id := e.pred[u]
		if id == core.NoEdge {
			if u != x {
				return fmt.Errorf("%w: node %d has no predecessor", ErrInvariant, u)
			}
			continue
		}
		p := e.g.Other(id, u)
		if e.owner[p] != x {
			return fmt.Errorf("%w: path of %d leaves region %d at %d", ErrInvariant, u, x, p)
		}
		if e.dist[p]+e.g.Weight(id) != e.dist[u] {
			return fmt.Errorf("%w: dist(%d)=%d inconsistent with pred %d", ErrInvariant, u, e.dist[u], p)
		}
	}
	for id := 0; id < e.g.EdgeCount(); id++ {
		u, v := e.g.Endpoints(id)
		x, y := e.owner[u], e.owner[v]
		crossing := x != NoOwner && y != NoOwner && x != y
		inX := e.hasLimit(x, u, id)
		inY := e.hasLimit(y, v, id)
		if crossing != inX || crossing != inY {
			return fmt.Errorf("%w: edge %d (%d-%d) crossing=%v recorded=%v/%v", ErrInvariant, id, u, v, crossing, inX, inY)
		}
	}

	return nil
}

func (e *Engine) hasLimit(x, u, id int) bool {
	if x == NoOwner {
		return false
	}
	_, ok := e.limits[x][u][id]

	return ok
}
