// Package dijkstra provides Dijkstra's shortest-path algorithm on the
// int-indexed core.Graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time.
//   - It relies on pqueue, an indexed min-heap with decrease-key, so every node
//     is queued at most once.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// Role in lvsteiner:
//
//   - The Kou–Markowsky–Berman solver runs one Dijkstra per terminal to build the
//     complete distance graph and recovers shortest paths with PathTo.
//   - Tests use it as the brute-force oracle for Voronoi region assignment.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     no Source option given.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  Source is out of range.
//   - ErrBadMaxDistance:  (via panic) negative MaxDistance.
//   - ErrBadInfThreshold: (via panic) non-positive InfEdgeThreshold.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist []int64, prev []int, err error)
//
//	  - dist[v]: minimal distance from Source to v, or Unreachable.
//	  - prev[v]: last edge on a shortest path to v, core.NoEdge at the source and
//	             at unreachable nodes. Nil unless WithReturnPath().
//
// Determinism:
//
//	Equal tentative distances pop in ascending node order; an equal-distance
//	predecessor replaces the current one only through a lower edge ID. The
//	same graph and source always yield the same shortest-path tree.
//
// Thread safety:
//
//   - core.Graph is immutable after construction, so concurrent Dijkstra calls
//     on the same graph are safe.
package dijkstra
