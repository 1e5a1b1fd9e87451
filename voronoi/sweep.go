package voronoi

import (
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/pqueue"
)

// sweepMode selects how a popped candidate interacts with existing ownership.
type sweepMode int

const (
	// modeBuild: every node starts unreached.
	modeBuild sweepMode = iota
	// modeAdd: new terminals may steal nodes from existing regions.
	modeAdd
	// modeRemove: live frontier nodes re-expand into emptied territory.
	modeRemove
)

// sweep is the multiplexed Dijkstra shared by Build, AddSources and RemSources.
//
// local[x] holds x's tentative distances; top holds, per terminal, the minimum
// of its local queue. via[x][v] is the predecessor edge of x's candidate v.
type sweep struct {
	e    *Engine
	mode sweepMode

	top   *pqueue.Queue
	local map[int]*pqueue.Queue
	via   map[int]map[int]int

	settled  map[int]struct{} // modeAdd: nodes whose owner is final for this sweep
	deferred map[int]struct{} // modeAdd: contact edges resolved after the sweep

	touched map[int]struct{} // terminals whose boundary set changed
	lost    map[int]struct{} // terminals that lost nodes
	grew    map[int]struct{} // terminals that gained nodes
}

func newSweep(e *Engine, mode sweepMode) *sweep {
	return &sweep{
		e:        e,
		mode:     mode,
		top:      pqueue.New(len(e.terms)),
		local:    make(map[int]*pqueue.Queue),
		via:      make(map[int]map[int]int),
		settled:  make(map[int]struct{}),
		deferred: make(map[int]struct{}),
		touched:  make(map[int]struct{}),
		lost:     make(map[int]struct{}),
		grew:     make(map[int]struct{}),
	}
}

// offer proposes v to x's local queue at distance d through edge id.
// An equal distance only replaces the candidate when id is lower.
func (s *sweep) offer(x, v int, d int64, id int) {
	lq, ok := s.local[x]
	if !ok {
		lq = pqueue.New(0)
		s.local[x] = lq
		s.via[x] = make(map[int]int)
	}
	if cur, queued := lq.Priority(v); queued {
		if d > cur || (d == cur && id >= s.via[x][v]) {
			return
		}
	}
	lq.Push(v, d)
	s.via[x][v] = id
}

// refresh re-synchronises x's entry in the top-level queue with its local queue.
func (s *sweep) refresh(x int) {
	lq := s.local[x]
	if _, d, ok := lq.Peek(); ok {
		s.top.Push(x, d)
		return
	}
	s.top.Remove(x)
}

// run drains the queues.
func (s *sweep) run() {
	for x := range s.local {
		s.refresh(x)
	}
	for s.top.Len() > 0 {
		x, _, _ := s.top.Peek()
		u, d, _ := s.local[x].Pop()
		id := s.via[x][u]
		delete(s.via[x], u)

		switch s.mode {
		case modeBuild:
			s.visitBuild(x, u, d, id)
		case modeAdd:
			s.visitAdd(x, u, d, id)
		case modeRemove:
			s.visitRemove(x, u, d, id)
		}
		s.refresh(x)
	}
	if s.mode == modeAdd {
		s.resolveDeferred()
	}
}

// better reports whether label (d, x) beats (d2, y).
func better(d int64, x int, d2 int64, y int) bool {
	if d != d2 {
		return d < d2
	}

	return x < y
}

// ---- build ----

func (s *sweep) visitBuild(x, u int, d int64, id int) {
	if s.e.owner[u] != NoOwner {
		// Already settled by a better label; the crossing edge, if any, is
		// recorded by whichever endpoint relaxes second.
		return
	}
	s.e.assign(u, x, d, id)
	s.relaxExpand(u)
}

// relaxExpand relaxes u's edges into unreached nodes and records every edge
// into a different region. Used by build and remove sweeps.
func (s *sweep) relaxExpand(u int) {
	e := s.e
	x, d := e.owner[u], e.dist[u]
	for _, id := range e.g.Incident(u) {
		v := e.g.Other(id, u)
		switch y := e.owner[v]; {
		case y == NoOwner:
			s.offer(x, v, d+e.g.Weight(id), id)
		case y != x:
			if _, _, added := e.addBoundary(id); added {
				s.touched[x] = struct{}{}
				s.touched[y] = struct{}{}
			}
		}
	}
}

// ---- add ----

func (s *sweep) visitAdd(x, u int, d int64, id int) {
	e := s.e
	if _, done := s.settled[u]; done {
		if e.owner[u] != x && id != core.NoEdge {
			s.deferred[id] = struct{}{}
		}
		return
	}

	if y := e.owner[u]; y != NoOwner {
		if !better(d, x, e.dist[u], y) {
			// u keeps its owner, but the owner of its neighbour may still
			// change later in this sweep.
			if id != core.NoEdge {
				s.deferred[id] = struct{}{}
			}
			return
		}
		e.dropNodeBoundary(u, s.touched)
		s.lost[y] = struct{}{}
	}

	e.assign(u, x, d, id)
	s.settled[u] = struct{}{}
	s.grew[x] = struct{}{}
	s.touched[x] = struct{}{}
	s.relaxSteal(u)
}

// relaxSteal offers u's neighbours to u's (new) owner whenever that could
// steal them, and defers every other contact edge.
func (s *sweep) relaxSteal(u int) {
	e := s.e
	x, d := e.owner[u], e.dist[u]
	for _, id := range e.g.Incident(u) {
		v := e.g.Other(id, u)
		y := e.owner[v]
		if y == x {
			continue
		}
		if _, done := s.settled[v]; done {
			s.deferred[id] = struct{}{}
			continue
		}
		nd := d + e.g.Weight(id)
		if y == NoOwner || better(nd, x, e.dist[v], y) {
			s.offer(x, v, nd, id)
			continue
		}
		s.deferred[id] = struct{}{}
	}
}

// resolveDeferred records every deferred edge that crosses regions once all
// owners are final.
func (s *sweep) resolveDeferred() {
	for id := range s.deferred {
		if x, y, added := s.e.addBoundary(id); added {
			s.touched[x] = struct{}{}
			s.touched[y] = struct{}{}
		}
	}
}

// ---- remove ----

func (s *sweep) visitRemove(x, u int, d int64, id int) {
	e := s.e
	switch y := e.owner[u]; {
	case y == x:
		// Frontier seed of a live region: expand from it, keep its state.
		s.relaxExpand(u)
	case y == NoOwner:
		e.assign(u, x, d, id)
		s.grew[x] = struct{}{}
		s.touched[x] = struct{}{}
		s.relaxExpand(u)
	}
}
