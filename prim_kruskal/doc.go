// Package prim_kruskal provides the two classic Minimum Spanning Tree algorithms,
// Prim’s and Kruskal’s, over the int-indexed graphs of this module.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Role here:
//
//   - Kou–Markowsky–Berman builds the MST of the complete terminal distance graph.
//
//   - Tests use Kruskal as the from-scratch oracle for the incrementally
//     maintained forest of the contracted graph.
//
// Algorithms Provided
//
//   - Kruskal(edges []core.Edge, opts...) ([]core.Edge, int64)
//
//   - Strategy: sort the edge list by Less, then merge components with union-find.
//     Works on any node labels, returns a spanning forest when the input is disconnected.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - KruskalGraph(g *core.Graph, opts...) ([]core.Edge, int64, error)
//
//   - Kruskal over g.Edges() with a connectivity check.
//
//   - Prim(g *core.Graph, opts...) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from WithRoot(r) with a min-heap of incident edges.
//
//   - Complexity: O(E log V) time, O(V + E) space.
//
// Determinism
//
//	Both algorithms order edges by MSTOptions.Less (default (Weight, ID)).
//	When Less is a strict total order the MST is unique and both algorithms
//	return the same edge set.
//
// Error Conditions
//
//   - ErrInvalidGraph : nil graph (or unknown Method in Compute).
//   - ErrRootNotFound : Prim root outside the graph.
//   - ErrDisconnected : empty graph, or not every node is reachable.
package prim_kruskal
