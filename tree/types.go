// Package tree defines the forest type shared by every Steiner heuristic,
// together with its sentinel errors and options.
package tree

import "errors"

// ErrNodeNotFound indicates an operation on a node that is not in the Tree.
var ErrNodeNotFound = errors.New("tree: node not found")

// ErrEdgeNotFound indicates RemoveEdge was called on a pair that is not linked.
var ErrEdgeNotFound = errors.New("tree: edge not found")

// Edge is a weighted link between two nodes.
// ID is chosen by the caller (an original edge ID, or a contracted edge ID)
// and only takes part in ordering and reporting.
type Edge struct {
	ID     int
	U, V   int
	Weight int64
}

// Other returns the endpoint of e opposite to x.
func (e Edge) Other(x int) int {
	if e.U == x {
		return e.V
	}

	return e.U
}

// Less defines the strict total order used to pick the edge evicted from a
// cycle. It must order distinct edges consistently with their weights.
type Less func(a, b Edge) bool

// ByWeightThenID orders edges by (Weight, ID).
func ByWeightThenID(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.ID < b.ID
}

// Options configures a Tree.
//
// Fields:
//
//	Less – edge order used by AddEdge when resolving a cycle (default ByWeightThenID).
type Options struct {
	Less Less
}

// Option configures Options.
type Option func(*Options)

// WithOrder sets the edge order used for cycle exchanges.
func WithOrder(less Less) Option {
	return func(o *Options) {
		if less != nil {
			o.Less = less
		}
	}
}

// DefaultOptions returns Options ordering edges by (Weight, ID).
func DefaultOptions() Options {
	return Options{Less: ByWeightThenID}
}
