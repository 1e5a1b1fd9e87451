// Package kou implements the Kou–Markowsky–Berman 2-approximation for the
// Steiner tree problem.
//
// Steps:
//  1. Run Dijkstra from every terminal (K runs) and keep the shortest-path
//     trees.
//  2. Build the complete distance graph over the terminals and take its
//     minimum spanning tree with Kruskal under (distance, pair index).
//  3. Union the shortest paths realizing the chosen distance edges into a
//     tree.Tree with cycle exchange, so overlapping paths collapse.
//  4. Prune non-terminal leaves.
//
// The result costs at most 2·(1 − 1/L)·OPT, L the number of leaves of an
// optimal tree. Solve is a batch algorithm: unlike mehlhorn.Solver it keeps
// no state between calls, which makes it a convenient baseline and
// cross-check for the incremental solver.
//
// Complexity: O(K·(V + E) log V + K² log K).
package kou
