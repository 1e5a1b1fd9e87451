// Package localsearch declares options, results and sentinel errors for the
// key-vertex local search.
package localsearch

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsteiner/tree"
)

var log = logrus.WithField("component", "localsearch")

// ErrBadOption is wrapped by the panic of an invalid Option value.
var ErrBadOption = errors.New("localsearch: invalid option")

// Default tuning values.
const (
	DefaultAddProb       = 0.5
	DefaultMaxIterations = 1000
	DefaultSeed          = int64(4321)
)

// Options configures Run.
//
// Fields:
//
//	Seed          – RNG seed; equal seeds give equal runs (default 4321).
//	AddProb       – probability of trying to add a Steiner vertex rather than
//	                remove a key vertex (default 0.5).
//	MaxIterations – number of moves attempted (default 1000, 0 = unlimited;
//	                then a TimeLimit or a context deadline must stop the run).
//	TimeLimit     – wall-clock budget measured on Clock (0 = none).
//	Clock         – time source (default clock.New()).
//	OnImprove     – called after every accepted move with the new best.
type Options struct {
	Seed          int64
	AddProb       float64
	MaxIterations int
	TimeLimit     time.Duration
	Clock         clock.Clock
	OnImprove     func(Result)
}

// Option configures Options.
type Option func(*Options)

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithAddProb sets the add-move probability. Panics outside [0,1].
func WithAddProb(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("%v: AddProb=%g not in [0,1]", ErrBadOption, p))
	}
	return func(o *Options) { o.AddProb = p }
}

// WithMaxIterations caps the number of moves. Panics if negative.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("%v: MaxIterations=%d", ErrBadOption, n))
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithTimeLimit bounds the run by d measured on the configured Clock.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithClock injects a time source, typically clock.NewMock() in tests.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithOnImprove registers a callback for accepted moves.
func WithOnImprove(fn func(Result)) Option {
	return func(o *Options) { o.OnImprove = fn }
}

// DefaultOptions returns the default Options.
func DefaultOptions() Options {
	return Options{
		Seed:          DefaultSeed,
		AddProb:       DefaultAddProb,
		MaxIterations: DefaultMaxIterations,
		Clock:         clock.New(),
	}
}

// Result is the best tree found so far.
//
// Tree is pruned against the original terminals and owned by the caller.
// KeyVertices are the Steiner vertices currently forced into the solver.
type Result struct {
	Tree         *tree.Tree
	Cost         int64
	KeyVertices  []int
	Iterations   int
	Improvements int
}
