package branchbound

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/mehlhorn"
	"github.com/katalvlaran/lvsteiner/tree"
)

// errStop unwinds the recursion when a node or time limit is hit.
var errStop = errors.New("branchbound: limit reached")

type search struct {
	ctx      context.Context
	opts     Options
	solver   *mehlhorn.Solver
	isTerm   func(int) bool
	free     []int
	forced   []int
	maxDepth int
	deadline time.Time
	res      Result
}

// Run enumerates sets of Steiner vertices to force into a Mehlhorn solver,
// depth-first and include-before-exclude over the non-terminal nodes of the
// terminals' component in index order.
//
// At each search node one vertex is added with AddSources. The subtree is
// cut when the solver's LowerBound exceeds the best cost so far; otherwise
// a contracted cost below the best triggers materialization, and the tree,
// pruned against the original terminals, is kept when cheaper. The vertex is
// then removed with RemSources and the next one tried. The radius bound
// only bounds the current terminal set, so the cut is a heuristic.
//
// upper, when non-nil and valid, seeds the best tree; the Mehlhorn tree of
// the terminals does otherwise (or when it is cheaper).
//
// Errors: those of mehlhorn.New, mehlhorn.ErrInfeasible, and ctx.Err() on
// cancellation (with the best Result so far).
func Run(ctx context.Context, g *core.Graph, terminals []int, upper *tree.Tree, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	solver, err := mehlhorn.New(g, terminals)
	if err != nil {
		return Result{}, err
	}
	start, err := solver.CurrentTree()
	if err != nil {
		return Result{}, err
	}

	s := &search{
		ctx:      ctx,
		opts:     o,
		solver:   solver,
		isTerm:   tree.TerminalSet(terminals),
		maxDepth: o.MaxSteiner,
		deadline: o.Clock.Now().Add(o.TimeLimit),
		res:      Result{Tree: start, Cost: start.Cost()},
	}
	if s.maxDepth <= 0 {
		s.maxDepth = len(solver.Terminals()) - 1
	}
	if upper != nil && upper.Check(terminals) && upper.Cost() < s.res.Cost {
		s.res.Tree, s.res.Cost = upper.Clone(), upper.Cost()
	}

	label, _ := bfs.Components(g)
	comp := label[terminals[0]]
	for u := 0; u < g.NodeCount(); u++ {
		if label[u] == comp && !s.isTerm(u) {
			s.free = append(s.free, u)
		}
	}

	err = s.explore(0)
	switch {
	case err == nil:
		s.res.Complete = true
	case errors.Is(err, errStop):
		err = nil
	}
	log.WithFields(logrus.Fields{
		"nodes":    s.res.Nodes,
		"pruned":   s.res.Pruned,
		"cost":     s.res.Cost,
		"complete": s.res.Complete,
	}).Debug("branch and bound finished")

	return s.res, err
}

// explore tries each free vertex from index i onwards as the next forced
// Steiner vertex.
func (s *search) explore(i int) error {
	for j := i; j < len(s.free); j++ {
		if err := s.limit(); err != nil {
			return err
		}
		v := s.free[j]
		s.res.Nodes++
		if _, err := s.solver.AddSources([]int{v}); err != nil {
			return err
		}
		s.forced = append(s.forced, v)

		if s.solver.LowerBound() > float64(s.res.Cost) {
			s.res.Pruned++
		} else {
			s.consider()
			if len(s.forced) < s.maxDepth {
				if err := s.explore(j + 1); err != nil {
					return err
				}
			}
		}

		if _, err := s.solver.RemSources([]int{v}); err != nil {
			return err
		}
		s.forced = s.forced[:len(s.forced)-1]
	}

	return nil
}

// consider materializes the current solution when its contracted cost is
// below the best and records it if the pruned tree is cheaper.
func (s *search) consider() {
	if s.solver.CurrentCost() >= s.res.Cost {
		return
	}
	t, err := s.solver.CurrentTree()
	if err != nil {
		return
	}
	t.Simplify(s.isTerm)
	if t.Cost() >= s.res.Cost {
		return
	}
	s.res.Tree, s.res.Cost = t, t.Cost()
	s.res.Steiner = append([]int(nil), s.forced...)
	s.res.Improvements++
	log.WithFields(logrus.Fields{"cost": t.Cost(), "steiner": len(s.forced)}).Debug("improved")
	if s.opts.OnImprove != nil {
		s.opts.OnImprove(s.res)
	}
}

// limit reports errStop or the context error once a budget is exhausted.
func (s *search) limit() error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	if s.opts.MaxNodes > 0 && s.res.Nodes >= s.opts.MaxNodes {
		return errStop
	}
	if s.opts.TimeLimit > 0 && !s.opts.Clock.Now().Before(s.deadline) {
		return errStop
	}

	return nil
}
