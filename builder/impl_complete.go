// Package: lvsteiner/builder
//
// impl_complete.go - Complete(n) and Star(n) constructors.
//
// Contract:
//   - Complete: n ≥ 1; every unordered pair {i,j}, i<j, emitted i asc then j asc.
//   - Star: n ≥ 2; node 0 is the hub, spokes (0, i) for i in [1..n-1].
//
// Complexity: Complete O(n²), Star O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodComplete   = "Complete"
	methodStar       = "Star"
	minCompleteNodes = 1
	minStarNodes     = 2
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := addNodes(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that appends a star with n-1 spokes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, base, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
