// Package contraction defines the contracted terminal graph and the
// incrementally maintained minimum spanning forest over it.
package contraction

import "errors"

// ErrLoop indicates an edge whose two endpoints are the same terminal.
var ErrLoop = errors.New("contraction: endpoints must differ")

// ErrBadWeight indicates a non-positive contracted weight.
var ErrBadWeight = errors.New("contraction: weight must be positive")

// Link is the boundary triple realizing a contracted edge: U in the region of
// one terminal, V in the region of the other, E the original edge joining them.
type Link struct {
	U, V, E int
}

// Edge is one contracted edge. There is at most one Edge per unordered pair
// of terminals; X < Y always holds.
type Edge struct {
	ID     int
	X, Y   int
	Weight int64
	Link   Link
}

// pair is the canonical map key of an unordered terminal pair.
type pair struct{ lo, hi int }

func makePair(x, y int) pair {
	if x > y {
		x, y = y, x
	}

	return pair{lo: x, hi: y}
}

// orderKey places an edge in the strict order (Weight, X, Y).
type orderKey struct {
	w      int64
	lo, hi int
}

func (e *Edge) key() orderKey { return orderKey{w: e.Weight, lo: e.X, hi: e.Y} }

// compareKeys is the gods comparator for orderKey.
func compareKeys(a, b interface{}) int {
	ka, kb := a.(orderKey), b.(orderKey)
	switch {
	case ka.w != kb.w:
		if ka.w < kb.w {
			return -1
		}
		return 1
	case ka.lo != kb.lo:
		if ka.lo < kb.lo {
			return -1
		}
		return 1
	case ka.hi != kb.hi:
		if ka.hi < kb.hi {
			return -1
		}
		return 1
	}

	return 0
}
