// Package lvsteiner computes approximate minimum-cost Steiner trees on
// weighted undirected graphs.
//
// Given a graph and a set of required nodes ("terminals"), lvsteiner looks
// for a cheap connected subgraph spanning all terminals. Its core is a
// dynamic Voronoi decomposition of the graph around the terminal set and an
// incrementally maintained minimum spanning tree of the graph contracted by
// that decomposition, so that terminals can be added and removed without
// recomputation from scratch.
//
// Packages, leaves first:
//
//	core/          immutable arena Graph (int nodes, int edge IDs, int64 weights)
//	pqueue/        indexed min-heap with decrease-key
//	voronoi/       Voronoi Engine: Build, AddSources, RemSources, radii, lower bound
//	tree/          forest with cycle-exchange AddEdge, Simplify, leaves, key nodes
//	contraction/   contracted terminal graph with an incremental MST
//	mehlhorn/      Mehlhorn 2-approximation solver and tree materializer
//	dijkstra/      single-source shortest paths
//	prim_kruskal/  minimum spanning trees (Prim, Kruskal)
//	bfs/           traversal, connected components
//	kou/           Kou–Markowsky–Berman 2-approximation
//	localsearch/   key-vertex local search over a Mehlhorn solver
//	branchbound/   branch-and-bound over forced Steiner vertices
//	stp/           SteinLib STP reader, solution writer (text, JSON, YAML)
//	builder/       deterministic instance generators
//	cmd/lvsteiner  CLI: solve, generate
//
// Quick example:
//
//	s, err := mehlhorn.New(g, []int{0, 3})
//	if err != nil { ... }
//	t, err := s.CurrentTree()           // Steiner tree, cost t.Cost()
//	_, err = s.AddSources([]int{5})     // incremental update
//
// Determinism: every tie (equal distances, equal edge weights) is broken by
// node or edge index, so equal inputs and seeds give equal trees.
package lvsteiner
