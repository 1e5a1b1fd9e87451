// Package bfs implements breadth-first search and connected components on
// the int-indexed core.Graph.
//
// What:
//
//   - BFS visits nodes in non-decreasing hop distance from a start node,
//     recording visit Order, Depth and Parent (slices indexed by node).
//   - Components labels every node with its component index.
//   - Connected reports whether a node set lies in one component.
//
// Why:
//
//   - Steiner instances are infeasible when two terminals sit in different
//     components. The CLI checks this with Connected before solving and the
//     solvers' tests compare their infeasibility reports against Components.
//
// Options:
//
//   - WithContext(ctx): cancellation checked once per dequeued node.
//   - WithMaxDepth(d): do not enqueue nodes deeper than d (0 = unlimited,
//     negative = ErrOptionViolation).
//   - WithFilterEdge(fn): skip incident edges for which fn returns false.
//   - WithOnVisit(fn): called per visited node; a non-nil error aborts.
//
// Determinism:
//
//	Neighbours are enqueued in incident-edge order, so Order and Parent are
//	fixed for a given graph.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V).
package bfs
