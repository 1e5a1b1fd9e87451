// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It works on an explicit edge list over arbitrary int nodes, so it serves the
// original graph and the contracted terminal graph alike.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvsteiner/core"
)

// Kruskal computes the minimum spanning forest of the undirected graph given
// by edges. Nodes are the endpoints that appear in edges; a forest is
// returned when they are not all connected.
//
// Steps:
//  1. Copy and sort edges by opts.Less (default (Weight, ID)).
//  2. Initialize a disjoint-set (union-find) with path compression and union by rank.
//  3. Scan the sorted edges; keep every edge whose endpoints are in different sets.
//
// Self-loops are skipped. The result is ordered as it was selected (ascending by Less).
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(edges []core.Edge, opts ...Option) ([]core.Edge, int64) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Sort a copy so the caller's slice is left untouched.
	sorted := make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		if e.From != e.To {
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return o.Less(sorted[i], sorted[j]) })

	// 2. Disjoint sets keyed by node.
	ds := newDisjointSet()

	// 3. Greedy scan.
	var (
		mst         []core.Edge
		totalWeight int64
	)
	for _, e := range sorted {
		if ds.union(e.From, e.To) {
			mst = append(mst, e)
			totalWeight += e.Weight
		}
	}

	return mst, totalWeight
}

// KruskalGraph computes the MST of g with Kruskal.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and graph is not connected.
func KruskalGraph(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	mst, total := Kruskal(graph.Edges(), opts...)
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	if mst == nil {
		mst = []core.Edge{}
	}

	return mst, total, nil
}

// disjointSet is a union-find over arbitrary int keys.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
}

func newDisjointSet() *disjointSet {
	return &disjointSet{parent: make(map[int]int), rank: make(map[int]int)}
}

// find returns the representative of u, registering u on first sight.
func (d *disjointSet) find(u int) int {
	if _, ok := d.parent[u]; !ok {
		d.parent[u] = u
		return u
	}
	for d.parent[u] != u {
		// Path compression: make u point to its grandparent.
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *disjointSet) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}
