// Package: lvsteiner/builder
//
// terminals.go - terminal set sampling for generated instances.

package builder

import (
	"fmt"
	"math/rand"
	"sort"
)

// PickTerminals draws k distinct nodes out of [0..n-1] and returns them
// ascending. A nil rng picks the first k nodes.
//
// Errors: ErrBadSize if k < 1 or k > n.
// Complexity: O(n log n).
func PickTerminals(n, k int, rng *rand.Rand) ([]int, error) {
	if k < 1 || k > n {
		return nil, fmt.Errorf("PickTerminals: k=%d, n=%d: %w", k, n, ErrBadSize)
	}
	var out []int
	if rng == nil {
		out = make([]int, k)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}
	out = append(out, rng.Perm(n)[:k]...)
	sort.Ints(out)

	return out, nil
}
