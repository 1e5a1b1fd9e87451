// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	u     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options. Edge weights are ignored.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unvisited
		w.res.Parent[i] = Unvisited
	}

	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

// enqueue marks u visited at depth d with the given parent.
func (w *walker) enqueue(u, d, parent int) {
	w.res.Depth[u] = d
	w.res.Parent[u] = parent
	w.queue = append(w.queue, queueItem{u: u, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.u)
		if err := w.opts.OnVisit(item.u, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.u, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbour in incident-edge order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, id := range w.graph.Incident(item.u) {
		if !w.opts.FilterEdge(item.u, id) {
			continue
		}
		v := w.graph.Other(id, item.u)
		if w.res.Depth[v] == Unvisited {
			w.enqueue(v, next, item.u)
		}
	}
}
