// Package: lvsteiner/builder
//
// config.go - resolved builder configuration and its defaults.

package builder

import "math/rand"

// builderConfig aggregates all tunables resolved from BuilderOption.
// It is immutable once passed to constructors.
type builderConfig struct {
	// rng drives stochastic constructors and weight sampling; nil means none.
	rng *rand.Rand

	// weightFn produces each edge weight; it must return a value ≥ 1.
	weightFn WeightFn
}

// defaultConstWeight is the weight of every edge when no WeightFn is set.
const defaultConstWeight = int64(1)

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
