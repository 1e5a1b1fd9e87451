// Package: lvsteiner/builder
//
// errors.go - sentinel errors returned by builder constructors.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid terminal count.
var ErrBadSize = errors.New("builder: invalid size/length")
