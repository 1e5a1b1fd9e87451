// Package core provides the immutable, index-based undirected Graph used by
// every Steiner algorithm in lvsteiner.
//
// The Graph G = (V,E) is an arena:
//
//   - Nodes are the integers 0..NodeCount()-1.
//   - Edges are the integers 0..EdgeCount()-1, in insertion order.
//   - Each Edge carries its two endpoints and a strictly positive int64 weight.
//   - Incidence lists are kept per node in ascending edge-ID order, so every
//     traversal built on top of core is deterministic.
//
// Side tables (distances, owners, boundary sets, tree links) live in the
// algorithms and are keyed by these integers; no node or edge object holds a
// back-reference to another.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) *Graph       // O(n)
//	AddNode() int                                     // O(1)
//	AddEdge(u, v int, weight int64) (int, error)      // O(1)† (O(deg) without multi-edges)
//
//	// Queries
//	Edge(id int) Edge                                 // O(1)
//	Incident(u int) []int                             // O(1), shared slice, do not mutate
//	Other(id, u int) int                              // O(1)
//	Weight(id int) int64                              // O(1)
//	Degree(u int) int                                 // O(1)
//	FindEdge(u, v int) (int, bool)                    // O(deg(u))
//
// Errors:
//
//	ErrNodeOutOfRange    - endpoint outside 0..NodeCount()-1.
//	ErrBadWeight         - weight ≤ 0.
//	ErrLoopNotAllowed    - u == v.
//	ErrMultiEdgeNotAllowed - parallel edge while multi-edges are disabled.
//
// Concurrency:
//
//	A Graph is built by a single goroutine. Once handed to an algorithm it is
//	never mutated, so any number of goroutines may read it concurrently.
package core
