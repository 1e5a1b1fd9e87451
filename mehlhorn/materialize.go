package mehlhorn

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/contraction"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/tree"
	"github.com/katalvlaran/lvsteiner/voronoi"
)

// CurrentTree expands the contracted spanning tree into a Steiner tree of the
// original graph.
//
// Steps:
//  1. For every contracted tree edge add both region paths (owner → boundary
//     node) and the crossing edge, with cycle exchange on (weight, edge ID) so
//     shared sub-paths and redundant cycles collapse to the lighter edges.
//  2. Simplify against the current terminals.
//
// The returned tree shares no state with the Solver.
// Errors: ErrInfeasible when the terminals are not all connected.
//
// Complexity: O(K·P·depth) with P the longest region path.
func (s *Solver) CurrentTree() (*tree.Tree, error) {
	if !s.Feasible() {
		return nil, fmt.Errorf("%w: %d components", ErrInfeasible, s.cg.Components())
	}

	terms := s.vor.Terminals()
	t := Materialize(s.g, s.vor, s.cg.TreeEdges())
	for _, x := range terms {
		t.AddNode(x)
	}
	t.Simplify(s.vor.IsTerminal)
	if !Check(t, terms) {
		return nil, fmt.Errorf("%w: materialized tree misses a terminal", ErrInfeasible)
	}

	return t, nil
}

// Compute returns the current Steiner tree and its cost.
func (s *Solver) Compute() (*tree.Tree, int64, error) {
	t, err := s.CurrentTree()
	if err != nil {
		return nil, 0, err
	}

	return t, t.Cost(), nil
}

// Materialize unions the region paths and crossing edges of the given
// contracted edges into a tree over original node and edge IDs. It does not
// simplify.
func Materialize(g *core.Graph, vor *voronoi.Engine, edges []contraction.Edge) *tree.Tree {
	t := tree.New()
	add := func(id int) {
		u, v := g.Endpoints(id)
		t.AddEdge(tree.Edge{ID: id, U: u, V: v, Weight: g.Weight(id)}, true)
	}
	for _, ce := range edges {
		for _, id := range vor.Path(ce.Link.U) {
			add(id)
		}
		for _, id := range vor.Path(ce.Link.V) {
			add(id)
		}
		add(ce.Link.E)
	}

	return t
}

// Check reports whether t contains every terminal and is connected.
func Check(t *tree.Tree, terminals []int) bool {
	return t != nil && t.Check(terminals)
}
