// Package localsearch - RNG utilities for move selection.
//
// Determinism: same seed ⇒ identical move sequence. math/rand.Rand is NOT
// goroutine-safe; every Run owns its own source.
package localsearch

import "math/rand"

// fallbackSeed is used when callers pass seed==0.
const fallbackSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ fallbackSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}

	return rand.New(rand.NewSource(seed))
}

// pick returns a uniformly chosen element of xs and its index.
// xs must be non-empty.
func pick(rng *rand.Rand, xs []int) (int, int) {
	i := rng.Intn(len(xs))

	return xs[i], i
}

// removeAt deletes xs[i] preserving order.
func removeAt(xs []int, i int) []int {
	return append(xs[:i], xs[i+1:]...)
}
