// Package tree implements a rooted forest of parent pointers with
// cycle-exchange insertion, used both as the spanning structure of the
// contracted graph and as the materialized Steiner tree.
//
// Representation:
//
//	Every node stores its parent, the edge to its parent and its children.
//	A node without a parent is a root; the number of roots is the number of
//	components.
//
// Insertion (AddEdge):
//
//   - Endpoints in different components: the component of V is re-rooted at V
//     (evert) and hung under U.
//   - Endpoints in the same component: the fundamental cycle is found by
//     walking both endpoints up to their lowest common ancestor. When
//     handleConflict is set and the maximum edge of that cycle is heavier
//     than the new edge (under Options.Less) it is evicted and returned;
//     otherwise the new edge is rejected.
//
// Pruning:
//
//	Simplify repeatedly removes leaves that are not terminals. Leaves are nodes
//	of degree ≤ 1 and key nodes are nodes of degree ≥ 3; both are independent
//	of the chosen root.
//
// Complexity:
//
//	AddEdge and RemoveEdge are O(depth); Simplify, Edges, Leaves, KeyNodes and
//	Check are O(n log n) because their results are sorted.
package tree
