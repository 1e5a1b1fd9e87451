package tree

import (
	"fmt"
	"sort"
)

// node is one vertex of the forest.
type node struct {
	parent    int
	up        Edge // edge to parent; valid only when hasParent
	hasParent bool
	children  map[int]struct{}
}

func (n *node) degree() int {
	d := len(n.children)
	if n.hasParent {
		d++
	}

	return d
}

// Tree is a forest over int nodes. The zero value is not usable; call New.
type Tree struct {
	opts  Options
	nodes map[int]*node
	cost  int64
	edges int
}

// New returns an empty Tree.
func New(opts ...Option) *Tree {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree{opts: o, nodes: make(map[int]*node)}
}

// AddNode inserts x as an isolated root. It is a no-op if x is present.
func (t *Tree) AddNode(x int) {
	if _, ok := t.nodes[x]; ok {
		return
	}
	t.nodes[x] = &node{children: make(map[int]struct{})}
}

// HasNode reports whether x is in the Tree.
func (t *Tree) HasNode(x int) bool {
	_, ok := t.nodes[x]

	return ok
}

// RemoveNode detaches every edge of x and drops it. The removed edges are
// returned ordered by ID.
func (t *Tree) RemoveNode(x int) ([]Edge, error) {
	n, ok := t.nodes[x]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, x)
	}
	var removed []Edge
	if n.hasParent {
		removed = append(removed, t.cut(x))
	}
	for c := range n.children {
		removed = append(removed, t.cut(c))
	}
	delete(t.nodes, x)
	sort.Slice(removed, func(i, j int) bool { return removed[i].ID < removed[j].ID })

	return removed, nil
}

// AddEdge inserts e, creating missing endpoints.
//
// Returns added=false when e closes a cycle and either handleConflict is false
// or no edge of that cycle is heavier than e. When an edge is evicted to make
// room for e, it is returned with hasEvicted=true. Self-loops are rejected.
//
// Complexity: O(depth(U) + depth(V)).
func (t *Tree) AddEdge(e Edge, handleConflict bool) (added bool, evicted Edge, hasEvicted bool) {
	if e.U == e.V {
		return false, Edge{}, false
	}
	t.AddNode(e.U)
	t.AddNode(e.V)

	if t.root(e.U) != t.root(e.V) {
		t.link(e)
		return true, Edge{}, false
	}
	if !handleConflict {
		return false, Edge{}, false
	}

	heaviest, child := t.maxOnPath(e.U, e.V)
	if !t.opts.Less(e, heaviest) {
		return false, Edge{}, false
	}
	t.cut(child)
	t.link(e)

	return true, heaviest, true
}

// RemoveEdge unlinks u and v and returns the edge between them.
func (t *Tree) RemoveEdge(u, v int) (Edge, error) {
	nu, okU := t.nodes[u]
	nv, okV := t.nodes[v]
	switch {
	case !okU || !okV:
		return Edge{}, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	case nu.hasParent && nu.parent == v:
		return t.cut(u), nil
	case nv.hasParent && nv.parent == u:
		return t.cut(v), nil
	}

	return Edge{}, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
}

// HasEdge reports whether u and v are linked.
func (t *Tree) HasEdge(u, v int) bool {
	nu, okU := t.nodes[u]
	nv, okV := t.nodes[v]
	if !okU || !okV {
		return false
	}

	return (nu.hasParent && nu.parent == v) || (nv.hasParent && nv.parent == u)
}

// Degree returns the number of edges at x (0 if x is absent).
func (t *Tree) Degree(x int) int {
	if n, ok := t.nodes[x]; ok {
		return n.degree()
	}

	return 0
}

// Neighbors returns the nodes linked to x, ascending.
func (t *Tree) Neighbors(x int) []int {
	n, ok := t.nodes[x]
	if !ok {
		return nil
	}
	out := make([]int, 0, n.degree())
	if n.hasParent {
		out = append(out, n.parent)
	}
	for c := range n.children {
		out = append(out, c)
	}
	sort.Ints(out)

	return out
}

// Cost returns the total weight of all edges.
func (t *Tree) Cost() int64 { return t.cost }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// EdgeCount returns the number of edges.
func (t *Tree) EdgeCount() int { return t.edges }

// Nodes returns all nodes, ascending.
func (t *Tree) Nodes() []int {
	out := make([]int, 0, len(t.nodes))
	for x := range t.nodes {
		out = append(out, x)
	}
	sort.Ints(out)

	return out
}

// Edges returns all edges ordered by ID, ties by endpoints.
func (t *Tree) Edges() []Edge {
	out := make([]Edge, 0, t.edges)
	for _, n := range t.nodes {
		if n.hasParent {
			out = append(out, n.up)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Components returns the number of connected components (roots).
func (t *Tree) Components() int {
	return len(t.nodes) - t.edges
}

// Leaves returns the nodes of degree ≤ 1, ascending.
func (t *Tree) Leaves() []int {
	return t.filter(func(n *node) bool { return n.degree() <= 1 })
}

// KeyNodes returns the nodes of degree ≥ 3, ascending.
func (t *Tree) KeyNodes() []int {
	return t.filter(func(n *node) bool { return n.degree() >= 3 })
}

// Check reports whether every terminal is in the Tree and the Tree is a
// single component.
func (t *Tree) Check(terminals []int) bool {
	for _, x := range terminals {
		if !t.HasNode(x) {
			return false
		}
	}

	return t.Components() == 1
}

// Clone returns an independent copy of t.
func (t *Tree) Clone() *Tree {
	c := &Tree{opts: t.opts, nodes: make(map[int]*node, len(t.nodes)), cost: t.cost, edges: t.edges}
	for x, n := range t.nodes {
		cn := &node{parent: n.parent, up: n.up, hasParent: n.hasParent, children: make(map[int]struct{}, len(n.children))}
		for ch := range n.children {
			cn.children[ch] = struct{}{}
		}
		c.nodes[x] = cn
	}

	return c
}

func (t *Tree) filter(keep func(*node) bool) []int {
	var out []int
	for x, n := range t.nodes {
		if keep(n) {
			out = append(out, x)
		}
	}
	sort.Ints(out)

	return out
}

// root follows parent pointers from x.
func (t *Tree) root(x int) int {
	for n := t.nodes[x]; n.hasParent; n = t.nodes[x] {
		x = n.parent
	}

	return x
}

// link re-roots V's component at V and hangs it under U.
// U and V must be in different components.
func (t *Tree) link(e Edge) {
	t.evert(e.V)
	nv := t.nodes[e.V]
	nv.parent, nv.up, nv.hasParent = e.U, e, true
	t.nodes[e.U].children[e.V] = struct{}{}
	t.cost += e.Weight
	t.edges++
}

// cut detaches child from its parent and returns the removed edge.
func (t *Tree) cut(child int) Edge {
	n := t.nodes[child]
	e := n.up
	delete(t.nodes[n.parent].children, child)
	n.parent, n.up, n.hasParent = 0, Edge{}, false
	t.cost -= e.Weight
	t.edges--

	return e
}

// evert makes x the root of its component by reversing the parent pointers
// on the path from x to the old root.
func (t *Tree) evert(x int) {
	var (
		prev     = x
		prevEdge Edge
		hasPrev  bool
	)
	for cur := x; ; {
		n := t.nodes[cur]
		next, nextEdge, hasNext := n.parent, n.up, n.hasParent
		if hasNext {
			delete(t.nodes[next].children, cur)
		}
		if hasPrev {
			n.parent, n.up, n.hasParent = prev, prevEdge, true
			t.nodes[prev].children[cur] = struct{}{}
		} else {
			n.parent, n.up, n.hasParent = 0, Edge{}, false
		}
		if !hasNext {
			return
		}
		prev, prevEdge, hasPrev = cur, nextEdge, true
		cur = next
	}
}

// maxOnPath returns the heaviest edge on the tree path between u and v (same
// component, u ≠ v) and the child endpoint that owns it as its parent edge.
func (t *Tree) maxOnPath(u, v int) (Edge, int) {
	depth := make(map[int]struct{})
	for x := u; ; {
		depth[x] = struct{}{}
		n := t.nodes[x]
		if !n.hasParent {
			break
		}
		x = n.parent
	}
	lca := v
	for {
		if _, ok := depth[lca]; ok {
			break
		}
		lca = t.nodes[lca].parent
	}

	var (
		best      Edge
		bestChild int
		found     bool
	)
	for _, start := range [2]int{u, v} {
		for x := start; x != lca; x = t.nodes[x].parent {
			up := t.nodes[x].up
			if !found || t.opts.Less(best, up) {
				best, bestChild, found = up, x, true
			}
		}
	}

	return best, bestChild
}
