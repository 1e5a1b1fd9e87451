// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/lvsteiner/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound indicates that the Prim root is not a node of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root not in graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Less orders edges for both algorithms. It must be a strict weak order
// consistent with Weight.
type Less func(a, b core.Edge) bool

// ByWeightThenID orders edges by (Weight, ID). It is the default order.
func ByWeightThenID(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.ID < b.ID
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   int   : start vertex for Prim; ignored when Method == MethodKruskal.
//	Less   Less  : edge order; ties decide which of several MSTs is returned.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Less is the edge order.
	Less Less
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm and ignore by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithLess returns an Option that replaces the edge order.
func WithLess(less Less) Option {
	return func(opts *MSTOptions) {
		if less != nil {
			opts.Less = less
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal)
//	– Less   = ByWeightThenID.
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
		Less:   ByWeightThenID,
	}
}

// Compute selects and runs the MST algorithm on graph based on opts.
//
//	– MethodKruskal: KruskalGraph(graph, opts...).
//	– MethodPrim:    Prim(graph, opts...).
//	– Otherwise:     ErrInvalidGraph.
//
// Returns:
//
//	[]core.Edge: slice of edges in MST (empty if graph has single vertex).
//	int64      : total weight of MST (zero if no edges).
//	error      : non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return KruskalGraph(graph, opts...)
	case MethodPrim:
		return Prim(graph, opts...)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
