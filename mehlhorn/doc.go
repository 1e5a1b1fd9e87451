// Package mehlhorn implements Mehlhorn's 2-approximation for the Steiner tree
// problem as a stateful solver over a mutable terminal set.
//
// A Solver owns a voronoi.Engine and a contraction.Graph. Every contracted
// edge (x, y) carries the cheapest crossing path
//
//	dist(u) + w(u, v) + dist(v)   over crossing edges (u, v), u ∈ R(x), v ∈ R(y)
//
// and the contraction layer keeps its minimum spanning forest. AddSources and
// RemSources forward to the engine and recompute only the contracted edges of
// the terminals whose regions changed. Links that no longer describe a
// crossing edge are detected, replaced and logged at debug level.
//
// CurrentTree materializes the forest: the region paths of both endpoints of
// every contracted tree edge plus the crossing edge are unioned into a
// tree.Tree with cycle exchange, then non-terminal leaves are pruned. The
// result never aliases solver state.
//
// Infeasibility (terminals in different components of the graph) is reported
// by Feasible and by ErrInfeasible from CurrentTree. Voronoi precondition
// errors (unknown terminal, removing every terminal, ...) pass through
// unchanged.
//
// Example:
//
//	s, err := mehlhorn.New(g, []int{0, 3})
//	if err != nil { ... }
//	t, err := s.CurrentTree()
//	fmt.Println(t.Cost(), s.LowerBound())
package mehlhorn
