// Package: lvsteiner/builder
//
// impl_random.go - RandomConnected(n, extra) constructor.
//
// Canonical model:
//   - A random recursive tree (node i attaches to a uniform earlier node)
//     guarantees connectivity; then extra uniform pairs are sampled and
//     added unless they are loops or duplicates.
//
// Contract:
//   - n ≥ 1, extra ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Duplicate pairs are skipped unless the graph allows multi-edges.
//
// Complexity:
//   - Time: O(n + extra·deg) for duplicate checks.
//   - Space: O(1) extra.
//
// Determinism:
//   - Fixed draw order: tree parents i asc, then extra pairs, then weights
//     interleaved per edge. Identical for a fixed seed.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const methodRandomConnected = "RandomConnected"

// RandomConnected returns a Constructor that appends a connected random graph
// on n nodes with up to extra additional edges.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 || extra < 0 {
			return fmt.Errorf("%s: n=%d, extra=%d: %w", methodRandomConnected, n, extra, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		base := addNodes(g, n)
		for i := 1; i < n; i++ {
			p := cfg.rng.Intn(i)
			if err := addEdge(methodRandomConnected, g, cfg, base+p, base+i); err != nil {
				return err
			}
		}
		if n < 2 {
			return nil
		}
		for k := 0; k < extra; k++ {
			u, v := base+cfg.rng.Intn(n), base+cfg.rng.Intn(n)
			if u == v {
				continue
			}
			err := addEdge(methodRandomConnected, g, cfg, u, v)
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				continue
			}
			if err != nil {
				return err
			}
		}

		return nil
	}
}
