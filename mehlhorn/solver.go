package mehlhorn

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsteiner/contraction"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/voronoi"
)

// Solver couples a Voronoi decomposition with the minimum spanning forest of
// its contracted graph. Terminal-set changes are applied incrementally.
type Solver struct {
	g    *core.Graph
	vor  *voronoi.Engine
	cg   *contraction.Graph
	opts Options
}

// New builds the decomposition of g around terminals and the contracted
// forest over it.
//
// Errors are those of voronoi.Build. A disconnected instance is not an error
// here; see Feasible.
//
// Complexity: O((V + E) log V + B log K) with B boundary edges and K terminals.
func New(g *core.Graph, terminals []int, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vor, err := voronoi.Build(g, terminals)
	if err != nil {
		return nil, err
	}
	s := &Solver{g: g, vor: vor, cg: contraction.New(), opts: o}
	live := vor.Terminals()
	for _, x := range live {
		s.cg.AddNode(x)
	}
	s.refresh(live)

	return s, nil
}

// AddSources adds terminals and updates the contracted forest for every
// region that changed. It returns those terminals, ascending.
func (s *Solver) AddSources(terms []int) ([]int, error) {
	affected, err := s.vor.AddSources(terms)
	if err != nil {
		return nil, err
	}
	for _, x := range terms {
		s.cg.AddNode(x)
	}
	s.refresh(affected)

	return affected, nil
}

// RemSources removes terminals, drops their contracted edges and updates the
// forest for every region that grew. It returns those terminals, ascending.
func (s *Solver) RemSources(terms []int) ([]int, error) {
	grew, err := s.vor.RemSources(terms)
	if err != nil {
		return nil, err
	}
	for _, x := range terms {
		s.cg.RemoveNode(x)
	}
	s.refresh(grew)

	return grew, nil
}

// LowerBound returns the sum of region radii.
func (s *Solver) LowerBound() float64 { return s.vor.LowerBound() }

// CurrentCost returns the weight of the contracted spanning forest.
func (s *Solver) CurrentCost() int64 { return s.cg.Cost() }

// Terminals returns the current terminals, ascending.
func (s *Solver) Terminals() []int { return s.vor.Terminals() }

// IsTerminal reports whether x is a current terminal.
func (s *Solver) IsTerminal(x int) bool { return s.vor.IsTerminal(x) }

// Feasible reports whether all terminals lie in one component.
func (s *Solver) Feasible() bool { return s.cg.Components() == 1 }

// Graph returns the underlying graph.
func (s *Solver) Graph() *core.Graph { return s.g }

// Contracted returns the contracted tree edges ordered by ID.
func (s *Solver) Contracted() []contraction.Edge { return s.cg.TreeEdges() }

// candidate is the cheapest crossing path found towards one neighbour region.
type candidate struct {
	w    int64
	link contraction.Link
}

// refresh recomputes the contracted edges incident to each affected terminal
// from its boundary set. Edges to regions no longer adjacent are deleted,
// the others are upserted; the forest is maintained by the contraction layer.
func (s *Solver) refresh(affected []int) {
	var (
		drop  []int
		stale int
	)
	type update struct {
		x, y int
		c    candidate
	}
	var ups []update

	for _, x := range affected {
		if !s.vor.IsTerminal(x) {
			continue
		}
		best := s.candidates(x)
		for _, y := range s.cg.Neighbors(x) {
			e, _ := s.cg.Edge(x, y)
			if !s.linkValid(e) {
				stale++
			}
			if _, ok := best[y]; !ok {
				drop = append(drop, e.ID)
			}
		}
		ys := make([]int, 0, len(best))
		for y := range best {
			ys = append(ys, y)
		}
		sort.Ints(ys)
		for _, y := range ys {
			ups = append(ups, update{x: x, y: y, c: best[y]})
		}
	}

	s.cg.DeleteEdges(drop)
	for _, u := range ups {
		if _, err := s.cg.Upsert(u.x, u.y, u.c.w, u.c.link); err != nil {
			log.WithError(err).WithFields(logrus.Fields{"x": u.x, "y": u.y, "weight": u.c.w}).
				Debug("contracted edge rejected")
		}
	}

	if s.opts.FullPrune {
		dropped := s.cg.Prune(s.linkValid)
		stale += len(dropped)
	}
	if stale > 0 {
		log.WithFields(logrus.Fields{"stale": stale, "affected": len(affected)}).
			Debug("replaced contracted edges with stale links")
	}
}

// candidates returns, per neighbour region of x, the cheapest crossing path.
// Equal weights are broken by the lower original edge ID.
func (s *Solver) candidates(x int) map[int]candidate {
	best := make(map[int]candidate)
	s.vor.EachBoundaryEdge(x, func(u, id int) {
		v := s.g.Other(id, u)
		y := s.vor.Owner(v)
		w := s.vor.Dist(u) + s.g.Weight(id) + s.vor.Dist(v)
		cur, ok := best[y]
		if ok && (w > cur.w || (w == cur.w && id >= cur.link.E)) {
			return
		}
		best[y] = candidate{w: w, link: contraction.Link{U: u, V: v, E: id}}
	})

	return best
}

// linkValid reports whether e's link is still a crossing edge between the
// regions of e.X and e.Y with the recorded weight.
func (s *Solver) linkValid(e contraction.Edge) bool {
	l := e.Link
	if !s.g.HasEdge(l.E) {
		return false
	}
	a, b := s.g.Endpoints(l.E)
	if !((a == l.U && b == l.V) || (a == l.V && b == l.U)) {
		return false
	}
	if s.vor.Owner(l.U) != e.X || s.vor.Owner(l.V) != e.Y {
		return false
	}

	return s.vor.Dist(l.U)+s.g.Weight(l.E)+s.vor.Dist(l.V) == e.Weight
}
