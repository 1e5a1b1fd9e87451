// Package branchbound searches for cheaper Steiner trees by enumerating
// sets of forced Steiner vertices on top of one incremental
// mehlhorn.Solver.
//
// Every search node costs one AddSources and one RemSources, so the
// Voronoi decomposition and the contracted spanning tree are updated
// incrementally along the whole enumeration. Subtrees are cut with the
// solver's LowerBound (sum of region radii) against the best cost found.
//
// Search limits (MaxNodes, TimeLimit on an injected clock.Clock, context
// cancellation) are checked before each search node. The enumeration is
// exponential in the number of non-terminal nodes; on anything but small
// instances run it with a limit, as the CLI does.
package branchbound
