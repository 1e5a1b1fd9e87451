// Package contraction holds the contracted graph of a Voronoi decomposition:
// one node per terminal and at most one edge per pair of adjacent regions,
// weighted by the cheapest path dist(u) + w(u,v) + dist(v) through a boundary
// edge and annotated with the Link realizing it.
//
// The package also maintains the minimum spanning forest of that graph under
// incremental updates:
//
//	insert / decrease   cycle exchange in a tree.Tree; the evicted edge joins
//	                    the non-tree list.
//	delete / increase   the tree edge is cut; the non-tree list is scanned in
//	                    ascending order and edges joining two components are
//	                    promoted until the forest spans again.
//
// The non-tree list is a gods red-black tree keyed by (Weight, X, Y). Because
// at most one edge exists per pair this order is strict, the minimum spanning
// forest is unique, and the incremental forest equals a from-scratch Kruskal
// under the same order.
//
// A Graph is not safe for concurrent use.
package contraction
