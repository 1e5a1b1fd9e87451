package localsearch

import (
	"context"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/mehlhorn"
	"github.com/katalvlaran/lvsteiner/tree"
)

// move is one tentative change of the forced Steiner vertex set.
type move struct {
	add bool
	v   int
	idx int // position of v in key before a removal
}

// searcher owns the state of one Run.
type searcher struct {
	g      *core.Graph
	terms  []int
	isTerm func(int) bool
	solver *mehlhorn.Solver
	key    []int
	best   Result
	opts   Options
}

// Run improves a Steiner tree by forcing Steiner vertices into, and out of,
// the terminal set of a single incremental mehlhorn.Solver.
//
// Steps:
//  1. Seed the key vertices with the non-terminal nodes of degree ≥ 3 of
//     initial (or of the Mehlhorn tree when initial is nil).
//  2. Each iteration, with probability AddProb add a random node that is
//     neither terminal nor key, otherwise remove a random key vertex.
//  3. Materialize, prune against the original terminals, keep the move when
//     the cost strictly drops, else undo it.
//
// The run stops after MaxIterations moves, when TimeLimit elapses on Clock,
// or when ctx is done; limits are checked between moves only. On
// cancellation the best Result so far is returned together with ctx.Err().
//
// Errors: those of mehlhorn.New, and mehlhorn.ErrInfeasible when the
// terminals are not connected.
func Run(ctx context.Context, g *core.Graph, terminals []int, initial *tree.Tree, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &searcher{g: g, terms: terminals, isTerm: tree.TerminalSet(terminals), opts: o}
	if err := s.init(initial); err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(o.Seed)
	deadline := o.Clock.Now().Add(o.TimeLimit)
	for o.MaxIterations == 0 || s.best.Iterations < o.MaxIterations {
		if err := ctx.Err(); err != nil {
			return s.result(), err
		}
		if o.TimeLimit > 0 && !o.Clock.Now().Before(deadline) {
			break
		}
		s.best.Iterations++

		m, ok := s.propose(rng)
		if !ok {
			continue
		}
		if err := s.apply(m); err != nil {
			return s.result(), err
		}
		t, cost, ok := s.evaluate()
		if ok && cost < s.best.Cost {
			s.best.Tree, s.best.Cost = t, cost
			s.best.Improvements++
			log.WithFields(logrus.Fields{"cost": cost, "iteration": s.best.Iterations, "key": len(s.key)}).
				Debug("improved")
			if o.OnImprove != nil {
				o.OnImprove(s.result())
			}
			continue
		}
		if err := s.undo(m); err != nil {
			return s.result(), err
		}
	}

	return s.result(), nil
}

// init builds the solver over terminals ∪ key vertices of the starting tree.
func (s *searcher) init(initial *tree.Tree) error {
	if initial == nil {
		base, err := mehlhorn.New(s.g, s.terms)
		if err != nil {
			return err
		}
		if initial, err = base.CurrentTree(); err != nil {
			return err
		}
	}
	for _, v := range initial.KeyNodes() {
		if !s.isTerm(v) && s.g.HasNode(v) {
			s.key = append(s.key, v)
		}
	}

	all := append(append([]int(nil), s.terms...), s.key...)
	solver, err := mehlhorn.New(s.g, all)
	if err != nil {
		return err
	}
	s.solver = solver

	t, err := solver.CurrentTree()
	if err != nil {
		return err
	}
	t.Simplify(s.isTerm)
	s.best = Result{Tree: t, Cost: t.Cost()}
	if initial.Check(s.terms) && initial.Cost() < s.best.Cost {
		s.best.Tree, s.best.Cost = initial.Clone(), initial.Cost()
	}

	return nil
}

// propose draws the next move. It reports false when no move is possible.
func (s *searcher) propose(rng *rand.Rand) (move, bool) {
	if rng.Float64() < s.opts.AddProb {
		if cand := s.candidates(); len(cand) > 0 {
			v, _ := pick(rng, cand)
			return move{add: true, v: v}, true
		}
	}
	if len(s.key) == 0 {
		return move{}, false
	}
	v, i := pick(rng, s.key)

	return move{v: v, idx: i}, true
}

// candidates lists nodes that are neither terminals nor key vertices.
func (s *searcher) candidates() []int {
	inKey := make(map[int]struct{}, len(s.key))
	for _, v := range s.key {
		inKey[v] = struct{}{}
	}
	var out []int
	for u := 0; u < s.g.NodeCount(); u++ {
		if _, ok := inKey[u]; !ok && !s.isTerm(u) {
			out = append(out, u)
		}
	}

	return out
}

func (s *searcher) apply(m move) error {
	if m.add {
		if _, err := s.solver.AddSources([]int{m.v}); err != nil {
			return err
		}
		s.key = append(s.key, m.v)
		return nil
	}
	if _, err := s.solver.RemSources([]int{m.v}); err != nil {
		return err
	}
	s.key = removeAt(s.key, m.idx)

	return nil
}

func (s *searcher) undo(m move) error {
	if m.add {
		if _, err := s.solver.RemSources([]int{m.v}); err != nil {
			return err
		}
		s.key = s.key[:len(s.key)-1]
		return nil
	}
	if _, err := s.solver.AddSources([]int{m.v}); err != nil {
		return err
	}
	s.key = append(s.key, 0)
	copy(s.key[m.idx+1:], s.key[m.idx:])
	s.key[m.idx] = m.v

	return nil
}

// evaluate materializes the solver's tree and prunes it against the
// original terminals.
func (s *searcher) evaluate() (*tree.Tree, int64, bool) {
	t, err := s.solver.CurrentTree()
	if err != nil {
		return nil, 0, false
	}
	t.Simplify(s.isTerm)

	return t, t.Cost(), true
}

// result snapshots the best tree with a sorted copy of the key vertices.
func (s *searcher) result() Result {
	r := s.best
	r.KeyVertices = append([]int(nil), s.key...)
	sort.Ints(r.KeyVertices)

	return r
}
