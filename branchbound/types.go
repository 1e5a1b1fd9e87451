// Package branchbound declares options and results of the Steiner vertex
// enumeration.
package branchbound

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsteiner/tree"
)

var log = logrus.WithField("component", "branchbound")

// Options configures Run.
//
// Fields:
//
//	MaxSteiner – largest number of Steiner vertices forced at once
//	             (default 0 = terminals−1, the most an optimal tree needs).
//	MaxNodes   – search nodes (vertex additions) before giving up (0 = unlimited).
//	TimeLimit  – budget measured on Clock (0 = none).
//	Clock      – time source (default clock.New()).
//	OnImprove  – called with every new best Result.
type Options struct {
	MaxSteiner int
	MaxNodes   int
	TimeLimit  time.Duration
	Clock      clock.Clock
	OnImprove  func(Result)
}

// Option configures Options.
type Option func(*Options)

// WithMaxSteiner bounds the depth of the enumeration.
func WithMaxSteiner(n int) Option {
	return func(o *Options) { o.MaxSteiner = n }
}

// WithMaxNodes bounds the number of search nodes.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithTimeLimit bounds the run by d measured on the configured Clock.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithClock injects a time source.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithOnImprove registers a callback for new best trees.
func WithOnImprove(fn func(Result)) Option {
	return func(o *Options) { o.OnImprove = fn }
}

// DefaultOptions returns the default Options.
func DefaultOptions() Options {
	return Options{Clock: clock.New()}
}

// Result reports the best tree and search statistics.
//
// Complete is true when the enumeration ran to the end rather than being
// stopped by MaxNodes or TimeLimit.
type Result struct {
	Tree         *tree.Tree
	Cost         int64
	Steiner      []int
	Nodes        int
	Pruned       int
	Improvements int
	Complete     bool
}
