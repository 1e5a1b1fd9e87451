// Package core: Graph method implementations.
//
// Every query is O(1) or O(deg) and allocation-free except where the method
// contract requires a fresh slice (Edges, Neighbors).

package core

import "fmt"

// AddNode appends a new isolated node and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() int {
	g.incidence = append(g.incidence, nil)

	return len(g.incidence) - 1
}

// AddEdge creates the undirected edge {u,v} with the given weight and returns its ID.
//
// Returns ErrNodeOutOfRange, ErrLoopNotAllowed, ErrBadWeight or ErrMultiEdgeNotAllowed.
// Complexity: O(1) with multi-edges enabled, O(min(deg(u),deg(v))) otherwise.
func (g *Graph) AddEdge(u, v int, weight int64) (int, error) {
	// 1) Endpoint validation
	if !g.HasNode(u) || !g.HasNode(v) {
		return NoEdge, fmt.Errorf("%w: edge %d-%d with %d nodes", ErrNodeOutOfRange, u, v, len(g.incidence))
	}
	// 2) Loop constraint
	if u == v {
		return NoEdge, ErrLoopNotAllowed
	}
	// 3) Weight constraint
	if weight <= 0 {
		return NoEdge, fmt.Errorf("%w: edge %d-%d weight=%d", ErrBadWeight, u, v, weight)
	}
	// 4) Multi-edge existence check
	if !g.allowMulti {
		if _, ok := g.FindEdge(u, v); ok {
			return NoEdge, ErrMultiEdgeNotAllowed
		}
	}

	// 5) Append to the arena; IDs grow monotonically so incidence stays sorted.
	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Weight: weight})
	g.incidence[u] = append(g.incidence[u], id)
	g.incidence[v] = append(g.incidence[v], id)

	return id, nil
}

// HasNode reports whether u is a valid node index.
func (g *Graph) HasNode(u int) bool { return u >= 0 && u < len(g.incidence) }

// HasEdge reports whether id is a valid edge index.
func (g *Graph) HasEdge(id int) bool { return id >= 0 && id < len(g.edges) }

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.incidence) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the edge with the given ID. It panics on an invalid ID, like a slice index.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// Weight returns the weight of edge id.
func (g *Graph) Weight(id int) int64 { return g.edges[id].Weight }

// Endpoints returns both endpoints of edge id.
func (g *Graph) Endpoints(id int) (int, int) {
	e := g.edges[id]

	return e.From, e.To
}

// Other returns the endpoint of edge id opposite to u.
// If u is not an endpoint of id, the result is e.From.
func (g *Graph) Other(id, u int) int {
	e := g.edges[id]
	if e.From == u {
		return e.To
	}

	return e.From
}

// Incident returns the IDs of all edges touching u, ascending.
// The returned slice is owned by the Graph and must not be modified.
func (g *Graph) Incident(u int) []int { return g.incidence[u] }

// Degree returns the number of edges touching u.
func (g *Graph) Degree(u int) int { return len(g.incidence[u]) }

// Neighbors returns the opposite endpoint of every incident edge of u, in edge order.
// Parallel edges yield repeated neighbors.
func (g *Graph) Neighbors(u int) []int {
	inc := g.incidence[u]
	out := make([]int, len(inc))
	for i, id := range inc {
		out[i] = g.Other(id, u)
	}

	return out
}

// FindEdge returns the lightest edge between u and v (lowest ID on ties).
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) FindEdge(u, v int) (int, bool) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return NoEdge, false
	}
	a, b := u, v
	if len(g.incidence[b]) < len(g.incidence[a]) {
		a, b = b, a
	}
	best := NoEdge
	for _, id := range g.incidence[a] {
		if g.Other(id, a) != b {
			continue
		}
		if best == NoEdge || g.edges[id].Weight < g.edges[best].Weight {
			best = id
		}
	}

	return best, best != NoEdge
}

// Edges returns a copy of all edges in ID order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// TotalWeight sums the weights of the given edge IDs.
// Returns ErrEdgeNotFound if any ID is invalid.
func (g *Graph) TotalWeight(ids []int) (int64, error) {
	var sum int64
	for _, id := range ids {
		if !g.HasEdge(id) {
			return 0, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
		}
		sum += g.edges[id].Weight
	}

	return sum, nil
}
