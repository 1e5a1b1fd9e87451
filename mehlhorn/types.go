// Package mehlhorn declares the solver options and sentinel errors.
package mehlhorn

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "mehlhorn")

// ErrInfeasible indicates that the terminals do not lie in one connected
// component of the graph, so no Steiner tree exists.
var ErrInfeasible = errors.New("mehlhorn: terminals are not connected")

// ErrInconsistent is returned by Verify when derived state disagrees with a
// from-scratch recomputation.
var ErrInconsistent = errors.New("mehlhorn: inconsistent state")

// Options configures a Solver.
//
// Fields:
//
//	FullPrune – after every update, scan the whole contracted graph for edges
//	            whose link is no longer a crossing edge (default false; only the
//	            edges of affected terminals are checked otherwise).
type Options struct {
	FullPrune bool
}

// Option configures Options.
type Option func(*Options)

// WithFullPrune enables the whole-graph stale edge scan.
func WithFullPrune() Option {
	return func(o *Options) { o.FullPrune = true }
}

// DefaultOptions returns the default Options.
func DefaultOptions() Options {
	return Options{}
}
