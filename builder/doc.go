// Package builder provides deterministic instance generators for Steiner
// tree experiments and tests, in a functional-options style.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the weight function.
//   - Topology constructors (Constructor implementations):
//     – Path, Cycle, Grid, Complete, Star, RandomConnected.
//   - Edge‐weight distributions (WeightFn implementations):
//     – ConstantWeightFn:  fixed user-provided value (default 1).
//     – UniformWeightFn:   uniform integer in [min,max].
//   - Terminal sampling:
//     – PickTerminals:     k distinct nodes, ascending.
//
// Guarantees:
//
//   - Every constructor appends its own nodes, so BuildGraph(nil, opts,
//     Path(3), Path(2)) yields two disjoint components (useful for
//     infeasible instances).
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Runtime errors for invalid build parameters wrap the sentinels in
//     errors.go with the constructor name as context.
//   - Same seed, options and constructor order ⇒ identical graph.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.RandomConnected(100, 200))
package builder
