package contraction

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/lvsteiner/tree"
)

// Graph is the contracted graph over terminals plus its minimum spanning
// forest. Tree edges live in a tree.Tree; every other edge sits in a
// red-black tree ordered by (Weight, X, Y).
type Graph struct {
	nodes  map[int]map[int]struct{} // terminal → adjacent terminals
	edges  map[pair]*Edge
	byID   map[int]pair
	nextID int

	span *tree.Tree
	rest *redblacktree.Tree
}

// treeOrder orders tree.Edge values the way compareKeys orders contracted
// edges; tree.Edge.U/V carry X/Y.
func treeOrder(a, b tree.Edge) bool {
	ka := orderKey{w: a.Weight, lo: min(a.U, a.V), hi: max(a.U, a.V)}
	kb := orderKey{w: b.Weight, lo: min(b.U, b.V), hi: max(b.U, b.V)}

	return compareKeys(ka, kb) < 0
}

// New returns an empty contracted graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[int]map[int]struct{}),
		edges: make(map[pair]*Edge),
		byID:  make(map[int]pair),
		span:  tree.New(tree.WithOrder(treeOrder)),
		rest:  &redblacktree.Tree{Comparator: compareKeys},
	}
}

// AddNode inserts terminal x. No-op if present.
func (g *Graph) AddNode(x int) {
	if _, ok := g.nodes[x]; ok {
		return
	}
	g.nodes[x] = make(map[int]struct{})
	g.span.AddNode(x)
}

// HasNode reports whether x is a node of the contracted graph.
func (g *Graph) HasNode(x int) bool {
	_, ok := g.nodes[x]

	return ok
}

// Nodes returns the terminals, ascending.
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.nodes))
	for x := range g.nodes {
		out = append(out, x)
	}
	sort.Ints(out)

	return out
}

// Neighbors returns the terminals sharing an edge with x, ascending.
func (g *Graph) Neighbors(x int) []int {
	adj := g.nodes[x]
	out := make([]int, 0, len(adj))
	for y := range adj {
		out = append(out, y)
	}
	sort.Ints(out)

	return out
}

// RemoveNode deletes x with all incident edges and repairs the forest.
// It returns the removed edges ordered by ID.
func (g *Graph) RemoveNode(x int) []Edge {
	adj, ok := g.nodes[x]
	if !ok {
		return nil
	}
	ps := make([]pair, 0, len(adj))
	for y := range adj {
		ps = append(ps, makePair(x, y))
	}
	removed := g.detach(ps)
	_, _ = g.span.RemoveNode(x)
	delete(g.nodes, x)
	g.repair()

	return removed
}

// Upsert sets the edge between x and y to weight w realized by link,
// inserting it if the pair has no edge yet. Missing endpoints are added.
//
// Forest maintenance:
//   - new edge or decreased non-tree edge: cycle-exchange insertion;
//   - decreased tree edge: weight updated in place;
//   - increased non-tree edge: re-keyed in the non-tree list;
//   - increased tree edge: cut, re-keyed, then repaired.
//
// Returns the resulting edge.
func (g *Graph) Upsert(x, y int, w int64, link Link) (Edge, error) {
	if x == y {
		return Edge{}, fmt.Errorf("%w: %d", ErrLoop, x)
	}
	if w <= 0 {
		return Edge{}, fmt.Errorf("%w: %d-%d weight %d", ErrBadWeight, x, y, w)
	}
	g.AddNode(x)
	g.AddNode(y)
	p := makePair(x, y)
	link = orient(p, x, link)

	e, ok := g.edges[p]
	if !ok {
		e = &Edge{ID: g.nextID, X: p.lo, Y: p.hi, Weight: w, Link: link}
		g.nextID++
		g.edges[p] = e
		g.byID[e.ID] = p
		g.nodes[x][y] = struct{}{}
		g.nodes[y][x] = struct{}{}
		g.insert(e)

		return *e, nil
	}

	e.Link = link
	old := e.Weight
	if w == old {
		return *e, nil
	}
	inTree := g.span.HasEdge(e.X, e.Y)
	switch {
	case w < old && inTree:
		_, _ = g.span.RemoveEdge(e.X, e.Y)
		e.Weight = w
		g.span.AddEdge(spanEdge(e), false)
	case w < old:
		g.rest.Remove(e.key())
		e.Weight = w
		g.insert(e)
	case !inTree:
		g.rest.Remove(e.key())
		e.Weight = w
		g.rest.Put(e.key(), p)
	default:
		_, _ = g.span.RemoveEdge(e.X, e.Y)
		e.Weight = w
		g.rest.Put(e.key(), p)
		g.repair()
	}

	return *e, nil
}

// orient flips link so that link.U lies on the side of p.lo.
func orient(p pair, x int, link Link) Link {
	if x == p.lo {
		return link
	}

	return Link{U: link.V, V: link.U, E: link.E}
}

// Delete removes the edge between x and y and repairs the forest.
// It reports whether an edge was removed.
func (g *Graph) Delete(x, y int) bool {
	p := makePair(x, y)
	if _, ok := g.edges[p]; !ok {
		return false
	}
	g.detach([]pair{p})
	g.repair()

	return true
}

// DeleteEdges removes the given edges (by ID) in one batch with a single
// repair pass. Unknown IDs are ignored. Returns the number removed.
func (g *Graph) DeleteEdges(ids []int) int {
	ps := make([]pair, 0, len(ids))
	for _, id := range ids {
		if p, ok := g.byID[id]; ok {
			ps = append(ps, p)
		}
	}
	removed := g.detach(ps)
	g.repair()

	return len(removed)
}

// Prune deletes every edge for which valid returns false and returns the
// deleted edges ordered by ID.
func (g *Graph) Prune(valid func(Edge) bool) []Edge {
	var ps []pair
	for p, e := range g.edges {
		if !valid(*e) {
			ps = append(ps, p)
		}
	}
	if len(ps) == 0 {
		return nil
	}
	removed := g.detach(ps)
	g.repair()

	return removed
}

// Edge returns the edge between x and y.
func (g *Graph) Edge(x, y int) (Edge, bool) {
	e, ok := g.edges[makePair(x, y)]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// InTree reports whether the edge between x and y is a forest edge.
func (g *Graph) InTree(x, y int) bool { return g.span.HasEdge(x, y) }

// Edges returns every contracted edge ordered by ID.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of contracted edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// TreeEdges returns the forest edges ordered by ID.
func (g *Graph) TreeEdges() []Edge {
	spans := g.span.Edges()
	out := make([]Edge, 0, len(spans))
	for _, s := range spans {
		out = append(out, *g.edges[g.byID[s.ID]])
	}

	return out
}

// NonTreeEdges returns the non-forest edges in ascending (Weight, X, Y) order.
func (g *Graph) NonTreeEdges() []Edge {
	out := make([]Edge, 0, g.rest.Size())
	it := g.rest.Iterator()
	for it.Next() {
		out = append(out, *g.edges[it.Value().(pair)])
	}

	return out
}

// Cost returns the total weight of the forest.
func (g *Graph) Cost() int64 { return g.span.Cost() }

// Components returns the number of components of the contracted graph.
func (g *Graph) Components() int { return g.span.Components() }

// Spanning returns a copy of the forest. Edge IDs are contracted edge IDs.
func (g *Graph) Spanning() *tree.Tree { return g.span.Clone() }

func spanEdge(e *Edge) tree.Edge {
	return tree.Edge{ID: e.ID, U: e.X, V: e.Y, Weight: e.Weight}
}

// insert places e by cycle exchange; the loser goes to the non-tree list.
func (g *Graph) insert(e *Edge) {
	added, evicted, has := g.span.AddEdge(spanEdge(e), true)
	if !added {
		g.rest.Put(e.key(), makePair(e.X, e.Y))
		return
	}
	if has {
		ev := g.edges[g.byID[evicted.ID]]
		g.rest.Put(ev.key(), makePair(ev.X, ev.Y))
	}
}

// detach removes the given pairs from every index without repairing.
func (g *Graph) detach(ps []pair) []Edge {
	removed := make([]Edge, 0, len(ps))
	for _, p := range ps {
		e, ok := g.edges[p]
		if !ok {
			continue
		}
		if g.span.HasEdge(e.X, e.Y) {
			_, _ = g.span.RemoveEdge(e.X, e.Y)
		} else {
			g.rest.Remove(e.key())
		}
		delete(g.edges, p)
		delete(g.byID, e.ID)
		delete(g.nodes[p.lo], p.hi)
		delete(g.nodes[p.hi], p.lo)
		removed = append(removed, *e)
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i].ID < removed[j].ID })

	return removed
}

// repair reconnects the forest with the lightest non-tree edges, scanning
// them in ascending order and stopping once the forest spans every node.
func (g *Graph) repair() {
	full := len(g.nodes) - 1
	if g.span.EdgeCount() >= full {
		return
	}
	var promoted []orderKey
	it := g.rest.Iterator()
	for it.Next() && g.span.EdgeCount() < full {
		e := g.edges[it.Value().(pair)]
		if added, _, _ := g.span.AddEdge(spanEdge(e), false); added {
			promoted = append(promoted, it.Key().(orderKey))
		}
	}
	for _, k := range promoted {
		g.rest.Remove(k)
	}
}
