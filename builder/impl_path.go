// Package: lvsteiner/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 1; edges (i, i+1) for i in [0..n-2].
//   - Cycle: n ≥ 3; Path edges plus the closing edge (n-1, 0).
//   - Node indices are relative to the first node the constructor adds.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns a Constructor that appends a simple path on n nodes.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor that appends a simple cycle on n nodes.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(methodCycle, g, cfg, n, true)
	}
}

// chain adds n nodes joined consecutively, optionally closing the ring.
func chain(method string, g *core.Graph, cfg builderConfig, n int, closed bool) error {
	base := addNodes(g, n)
	for i := 0; i+1 < n; i++ {
		if err := addEdge(method, g, cfg, base+i, base+i+1); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(method, g, cfg, base+n-1, base)
	}

	return nil
}
