// Package localsearch improves Steiner trees by perturbing the set of
// Steiner vertices that a Mehlhorn solver is forced to span.
//
// A "key vertex" is a non-terminal node of degree ≥ 3 in a Steiner tree.
// Run starts from the key vertices of an initial tree, then repeatedly
// adds a random non-terminal node or removes a random key vertex through
// mehlhorn.Solver.AddSources / RemSources, and keeps a move only when the
// pruned tree gets strictly cheaper. Every move is one incremental update of
// the Voronoi decomposition and the contracted spanning tree, never a
// rebuild.
//
// Determinism: the move sequence depends only on Options.Seed, so equal
// seeds on equal inputs give equal results. Time budgets use an injected
// clock.Clock and are checked between moves.
//
// Example:
//
//	res, err := localsearch.Run(ctx, g, terms, nil,
//	    localsearch.WithSeed(7), localsearch.WithTimeLimit(2*time.Second))
package localsearch
