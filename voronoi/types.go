package voronoi

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Build.
	ErrNilGraph = errors.New("voronoi: graph is nil")

	// ErrNoTerminals indicates that Build was called with an empty terminal set.
	ErrNoTerminals = errors.New("voronoi: terminal set is empty")

	// ErrNodeOutOfRange indicates a terminal outside the graph's node range.
	ErrNodeOutOfRange = errors.New("voronoi: terminal out of range")

	// ErrDuplicateTerminal indicates a terminal that is already tracked
	// (or repeated in the same call).
	ErrDuplicateTerminal = errors.New("voronoi: terminal already tracked")

	// ErrUnknownTerminal indicates RemSources named a terminal that is not tracked.
	ErrUnknownTerminal = errors.New("voronoi: terminal not tracked")

	// ErrLastTerminal indicates RemSources would leave the terminal set empty.
	ErrLastTerminal = errors.New("voronoi: cannot remove every terminal")
)

// NoOwner marks a node that no terminal reaches.
const NoOwner = -1

// Infinity is the distance reported for unreached nodes.
const Infinity int64 = math.MaxInt64

// edgeSet is a set of edge IDs.
type edgeSet map[int]struct{}

// boundary maps a region node to the crossing edges incident to it.
type boundary map[int]edgeSet
