package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph(N + 1)
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkComponents_BinaryTree labels a complete binary tree of depth 10.
func BenchmarkComponents_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1
	g := core.NewGraph(nodeCount)
	for i := 0; i < (nodeCount-1)/2; i++ {
		_, _ = g.AddEdge(i, 2*i+1, 1)
		_, _ = g.AddEdge(i, 2*i+2, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}
