// Package core defines the central Graph and Edge types of lvsteiner.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates an endpoint outside the node arena.
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NoEdge marks the absence of an edge ID (for example the predecessor of a root).
const NoEdge = -1

// Edge represents an undirected connection between two nodes.
//
// From and To are stored in insertion order; algorithms treat them symmetrically.
type Edge struct {
	// ID is the index of this edge in the Graph arena.
	ID int

	// From is the first endpoint.
	From int

	// To is the second endpoint.
	To int

	// Weight is the strictly positive cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the immutable arena graph consumed by the Steiner algorithms.
//
// incidence[u] holds the IDs of the edges touching u in ascending order.
type Graph struct {
	allowMulti bool

	edges     []Edge
	incidence [][]int
}

// NewGraph creates a Graph with n isolated nodes (0..n-1).
// Negative n is treated as zero.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		incidence: make([][]int, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
