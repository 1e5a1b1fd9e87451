package mehlhorn

import "fmt"

// Verify rebuilds the solver from scratch for the current terminal set and
// compares the decomposition and the contracted forest with the incremental
// state. It is meant for tests and debugging.
//
// Complexity: same as New.
func (s *Solver) Verify() error {
	if err := s.vor.Validate(); err != nil {
		return err
	}
	for _, e := range s.cg.Edges() {
		if !s.linkValid(e) {
			return fmt.Errorf("%w: contracted edge %d-%d has a stale link", ErrInconsistent, e.X, e.Y)
		}
	}

	fresh, err := New(s.g, s.vor.Terminals())
	if err != nil {
		return err
	}
	for u := 0; u < s.g.NodeCount(); u++ {
		if fresh.vor.Owner(u) != s.vor.Owner(u) || fresh.vor.Dist(u) != s.vor.Dist(u) {
			return fmt.Errorf("%w: node %d region differs", ErrInconsistent, u)
		}
	}
	if fresh.cg.EdgeCount() != s.cg.EdgeCount() {
		return fmt.Errorf("%w: %d contracted edges, want %d", ErrInconsistent, s.cg.EdgeCount(), fresh.cg.EdgeCount())
	}
	for _, fe := range fresh.cg.Edges() {
		e, ok := s.cg.Edge(fe.X, fe.Y)
		if !ok || e.Weight != fe.Weight {
			return fmt.Errorf("%w: contracted edge %d-%d differs", ErrInconsistent, fe.X, fe.Y)
		}
		if s.cg.InTree(fe.X, fe.Y) != fresh.cg.InTree(fe.X, fe.Y) {
			return fmt.Errorf("%w: contracted edge %d-%d tree membership differs", ErrInconsistent, fe.X, fe.Y)
		}
	}
	if fresh.CurrentCost() != s.CurrentCost() {
		return fmt.Errorf("%w: cost %d, want %d", ErrInconsistent, s.CurrentCost(), fresh.CurrentCost())
	}

	return nil
}
