package voronoi

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsteiner/core"
)

// Engine holds the region state of one terminal set over one graph.
//
// owner/dist/pred are indexed by node. limits and radius are keyed by terminal.
type Engine struct {
	g *core.Graph

	owner []int   // node → owning terminal, NoOwner if unreached
	dist  []int64 // node → distance to its owner, Infinity if unreached
	pred  []int   // node → edge towards the owner, core.NoEdge at terminals

	terms  map[int]struct{}
	limits map[int]boundary // terminal → region node → crossing edges
	radius map[int]float64
}

// Build computes the Voronoi decomposition of g around terminals from scratch.
//
// Preconditions (in order): g non-nil (ErrNilGraph), at least one terminal
// (ErrNoTerminals), every terminal in range (ErrNodeOutOfRange), no repeats
// (ErrDuplicateTerminal).
//
// Complexity: O((V + E) log V).
func Build(g *core.Graph, terminals []int) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(terminals) == 0 {
		return nil, ErrNoTerminals
	}

	n := g.NodeCount()
	e := &Engine{
		g:      g,
		owner:  make([]int, n),
		dist:   make([]int64, n),
		pred:   make([]int, n),
		terms:  make(map[int]struct{}, len(terminals)),
		limits: make(map[int]boundary, len(terminals)),
		radius: make(map[int]float64, len(terminals)),
	}
	for u := 0; u < n; u++ {
		e.owner[u] = NoOwner
		e.dist[u] = Infinity
		e.pred[u] = core.NoEdge
	}
	if err := e.validateNew(terminals); err != nil {
		return nil, err
	}

	s := newSweep(e, modeBuild)
	for _, x := range terminals {
		e.terms[x] = struct{}{}
		e.limits[x] = make(boundary)
		s.touched[x] = struct{}{}
		s.offer(x, x, 0, core.NoEdge)
	}
	s.run()
	e.refreshRadii(s.touched)

	return e, nil
}

// validateNew checks that terms are in range, distinct, and not yet tracked.
func (e *Engine) validateNew(terms []int) error {
	seen := make(map[int]struct{}, len(terms))
	for _, x := range terms {
		if !e.g.HasNode(x) {
			return fmt.Errorf("%w: %d", ErrNodeOutOfRange, x)
		}
		if _, dup := seen[x]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateTerminal, x)
		}
		if _, tracked := e.terms[x]; tracked {
			return fmt.Errorf("%w: %d", ErrDuplicateTerminal, x)
		}
		seen[x] = struct{}{}
	}

	return nil
}

// Graph returns the underlying graph.
func (e *Engine) Graph() *core.Graph { return e.g }

// Owner returns the terminal owning u, or NoOwner.
func (e *Engine) Owner(u int) int { return e.owner[u] }

// Dist returns the distance from u to its owner, or Infinity.
func (e *Engine) Dist(u int) int64 { return e.dist[u] }

// Pred returns the edge leading from u towards its owner, or core.NoEdge.
func (e *Engine) Pred(u int) int { return e.pred[u] }

// Owners returns a copy of the owner table.
func (e *Engine) Owners() []int {
	out := make([]int, len(e.owner))
	copy(out, e.owner)

	return out
}

// Dists returns a copy of the distance table.
func (e *Engine) Dists() []int64 {
	out := make([]int64, len(e.dist))
	copy(out, e.dist)

	return out
}

// IsTerminal reports whether x is a tracked terminal.
func (e *Engine) IsTerminal(x int) bool {
	_, ok := e.terms[x]

	return ok
}

// Terminals returns the tracked terminals in ascending order.
func (e *Engine) Terminals() []int {
	out := make([]int, 0, len(e.terms))
	for x := range e.terms {
		out = append(out, x)
	}
	sort.Ints(out)

	return out
}

// TerminalCount returns the number of tracked terminals.
func (e *Engine) TerminalCount() int { return len(e.terms) }

// Path returns the edges of the region path from Owner(u) down to u, owner side first.
// It is empty for a terminal and nil for an unreached node.
func (e *Engine) Path(u int) []int {
	if e.owner[u] == NoOwner {
		return nil
	}
	path := make([]int, 0)
	for v := u; e.pred[v] != core.NoEdge; v = e.g.Other(e.pred[v], v) {
		path = append(path, e.pred[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Limits returns a copy of the boundary set of terminal x:
// region node → crossing edge IDs (ascending). Nil if x is not tracked.
func (e *Engine) Limits(x int) map[int][]int {
	b, ok := e.limits[x]
	if !ok {
		return nil
	}
	out := make(map[int][]int, len(b))
	for u, es := range b {
		ids := make([]int, 0, len(es))
		for id := range es {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		out[u] = ids
	}

	return out
}

// EachBoundaryEdge calls fn for every crossing edge of x's region,
// with u the endpoint inside the region. Iteration order is unspecified.
func (e *Engine) EachBoundaryEdge(x int, fn func(u, edge int)) {
	for u, es := range e.limits[x] {
		for id := range es {
			fn(u, id)
		}
	}
}

// Unreached returns the nodes no terminal reaches, ascending.
func (e *Engine) Unreached() []int {
	var out []int
	for u, x := range e.owner {
		if x == NoOwner {
			out = append(out, u)
		}
	}

	return out
}

// assign settles u in x's region.
func (e *Engine) assign(u, x int, d int64, via int) {
	e.owner[u] = x
	e.dist[u] = d
	e.pred[u] = via
}

// clear resets u to the unreached state. Its boundary entries must already be gone.
func (e *Engine) clear(u int) {
	e.owner[u] = NoOwner
	e.dist[u] = Infinity
	e.pred[u] = core.NoEdge
}

// addBoundary records edge id in the boundary sets of both endpoint regions
// if it genuinely crosses regions. It returns the two owners and whether
// anything new was recorded.
func (e *Engine) addBoundary(id int) (int, int, bool) {
	u, v := e.g.Endpoints(id)
	x, y := e.owner[u], e.owner[v]
	if x == NoOwner || y == NoOwner || x == y {
		return x, y, false
	}
	added := e.limitAdd(x, u, id)
	if e.limitAdd(y, v, id) {
		added = true
	}

	return x, y, added
}

func (e *Engine) limitAdd(x, u, id int) bool {
	b := e.limits[x]
	es, ok := b[u]
	if !ok {
		es = make(edgeSet)
		b[u] = es
	}
	if _, ok = es[id]; ok {
		return false
	}
	es[id] = struct{}{}

	return true
}

func (e *Engine) limitRemove(x, u, id int) {
	b, ok := e.limits[x]
	if !ok {
		return
	}
	es, ok := b[u]
	if !ok {
		return
	}
	delete(es, id)
	if len(es) == 0 {
		delete(b, u)
	}
}

// dropNodeBoundary removes every crossing edge of u from both sides and
// reports the terminals whose boundary sets changed through touched.
func (e *Engine) dropNodeBoundary(u int, touched map[int]struct{}) {
	x := e.owner[u]
	es, ok := e.limits[x][u]
	if !ok {
		return
	}
	for id := range es {
		v := e.g.Other(id, u)
		y := e.owner[v]
		e.limitRemove(y, v, id)
		touched[y] = struct{}{}
	}
	delete(e.limits[x], u)
	touched[x] = struct{}{}
}
