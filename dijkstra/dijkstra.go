// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes. It processes nodes in order of increasing distance
// using an indexed min-heap with decrease-key, relaxing edges as it goes.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Notes on implementation choices:
//
//   - Edge weights are positive by construction (core.Graph rejects others).
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Ties are deterministic: equal distances pop the lower node first, and an
//     equal-distance predecessor only replaces the current one through a lower edge ID.
package dijkstra

import (
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/pqueue"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance (Unreachable if v was not reached).
//   - prev: if ReturnPath, prev[v] is the last edge of a shortest path to v
//     (core.NoEdge at the source and at unreachable nodes); nil otherwise.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == noSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Run
	r := newRunner(g, cfg)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the edge sequence from the source to v out of a predecessor
// slice returned with WithReturnPath. It returns nil if v was not reached and
// an empty slice for the source itself.
func PathTo(g *core.Graph, dist []int64, prev []int, v int) []int {
	if dist[v] == Unreachable {
		return nil
	}
	path := make([]int, 0)
	for u := v; prev[u] != core.NoEdge; u = g.Other(prev[u], u) {
		path = append(path, prev[u])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      *pqueue.Queue
}

// newRunner sets up initial distances and pushes Source=0 into the heap.
func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      pqueue.New(n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Unreachable
		r.prev[v] = core.NoEdge
	}
	r.dist[cfg.Source] = 0
	r.pq.Push(cfg.Source, 0)

	return r
}

// process repeatedly extracts the closest node and relaxes its edges until
// the heap is empty. Nodes beyond MaxDistance are never queued.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		u, _, _ := r.pq.Pop()
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each edge incident to u and improves distances to unvisited neighbors.
func (r *runner) relax(u int) {
	for _, id := range r.g.Incident(u) {
		w := r.g.Weight(id)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := r.g.Other(id, u)
		if r.visited[v] {
			continue
		}
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance {
			continue
		}
		if nd > r.dist[v] || (nd == r.dist[v] && id >= r.prev[v]) {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = id
		r.pq.Push(v, nd)
	}
}
