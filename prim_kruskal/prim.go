// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST of a *core.Graph from a root node using a min‐heap of incident edges.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/lvsteiner/core"
)

// Prim computes the MST of g by growing outwards from opts.Root.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrDisconnected : |V| == 0, or |V| > 1 but the graph is not fully connected.
//   - ErrRootNotFound : root is not a node of g.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push its incident edges into the heap.
//  3. Pop the smallest edge; skip it if both ends are visited, otherwise take it,
//     visit the new node and push its edges to unvisited neighbours.
//  4. If fewer than |V|-1 edges were taken → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	root := o.Root
	if !graph.HasNode(root) {
		return nil, 0, ErrRootNotFound
	}

	// 2. Seed from the root.
	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight int64
	pq := &edgePQ{less: o.Less}
	heap.Init(pq)
	visited[root] = true
	for _, id := range graph.Incident(root) {
		heap.Push(pq, graph.Edge(id))
	}

	// 3. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		v := e.To
		if visited[v] {
			v = e.From
		}
		if visited[v] {
			continue
		}
		visited[v] = true
		mst = append(mst, e)
		totalWeight += e.Weight
		for _, id := range graph.Incident(v) {
			if !visited[graph.Other(id, v)] {
				heap.Push(pq, graph.Edge(id))
			}
		}
	}

	// 4. Connectivity check.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min‐heap of core.Edge.
type edgePQ struct {
	items []core.Edge
	less  Less
}

func (pq *edgePQ) Len() int           { return len(pq.items) }
func (pq *edgePQ) Less(i, j int) bool { return pq.less(pq.items[i], pq.items[j]) }
func (pq *edgePQ) Swap(i, j int)      { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a core.Edge; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(core.Edge)) }

// Pop removes the last element; called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	edge := old[n-1]
	pq.items = old[:n-1]

	return edge
}
