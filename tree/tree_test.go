package tree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/tree"
)

func TestTree_LinkComponents(t *testing.T) {
	tr := tree.New()
	added, _, ev := tr.AddEdge(tree.Edge{ID: 0, U: 1, V: 2, Weight: 3}, false)
	require.True(t, added)
	assert.False(t, ev)
	added, _, _ = tr.AddEdge(tree.Edge{ID: 1, U: 3, V: 4, Weight: 1}, false)
	require.True(t, added)
	assert.Equal(t, 2, tr.Components())

	added, _, _ = tr.AddEdge(tree.Edge{ID: 2, U: 4, V: 2, Weight: 2}, false)
	require.True(t, added)
	assert.Equal(t, 1, tr.Components())
	assert.Equal(t, int64(6), tr.Cost())
	assert.Equal(t, []int{1, 2, 3, 4}, tr.Nodes())
	assert.Equal(t, 3, tr.EdgeCount())
	assert.True(t, tr.HasEdge(2, 4))
	assert.True(t, tr.Check([]int{1, 3}))
}

func TestTree_RejectsCycleWithoutConflictHandling(t *testing.T) {
	tr := tree.New()
	tr.AddEdge(tree.Edge{ID: 0, U: 0, V: 1, Weight: 5}, false)
	tr.AddEdge(tree.Edge{ID: 1, U: 1, V: 2, Weight: 5}, false)

	added, _, _ := tr.AddEdge(tree.Edge{ID: 2, U: 0, V: 2, Weight: 1}, false)
	assert.False(t, added)
	assert.Equal(t, int64(10), tr.Cost())

	added, _, _ = tr.AddEdge(tree.Edge{ID: 3, U: 4, V: 4, Weight: 1}, true)
	assert.False(t, added)
}

func TestTree_CycleExchange(t *testing.T) {
	// Path 0-1-2-3 with a heavy middle edge; closing 0-3 evicts it.
	tr := tree.New()
	tr.AddEdge(tree.Edge{ID: 0, U: 0, V: 1, Weight: 1}, true)
	tr.AddEdge(tree.Edge{ID: 1, U: 1, V: 2, Weight: 9}, true)
	tr.AddEdge(tree.Edge{ID: 2, U: 2, V: 3, Weight: 1}, true)

	added, evicted, ok := tr.AddEdge(tree.Edge{ID: 3, U: 3, V: 0, Weight: 4}, true)
	require.True(t, added)
	require.True(t, ok)
	assert.Equal(t, 1, evicted.ID)
	assert.Equal(t, int64(6), tr.Cost())
	assert.False(t, tr.HasEdge(1, 2))
	assert.Equal(t, 1, tr.Components())

	// A heavier chord is rejected.
	added, _, ok = tr.AddEdge(tree.Edge{ID: 4, U: 1, V: 2, Weight: 7}, true)
	assert.False(t, added)
	assert.False(t, ok)
}

func TestTree_CustomOrder(t *testing.T) {
	// Reverse ID order on equal weights: the lower ID is considered heavier.
	less := func(a, b tree.Edge) bool {
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		return a.ID > b.ID
	}
	tr := tree.New(tree.WithOrder(less))
	tr.AddEdge(tree.Edge{ID: 0, U: 0, V: 1, Weight: 2}, true)
	tr.AddEdge(tree.Edge{ID: 1, U: 1, V: 2, Weight: 2}, true)
	added, evicted, ok := tr.AddEdge(tree.Edge{ID: 2, U: 2, V: 0, Weight: 2}, true)
	require.True(t, added)
	require.True(t, ok)
	assert.Equal(t, 0, evicted.ID)
}

func TestTree_RemoveEdgeAndNode(t *testing.T) {
	tr := tree.New()
	tr.AddEdge(tree.Edge{ID: 0, U: 0, V: 1, Weight: 1}, false)
	tr.AddEdge(tree.Edge{ID: 1, U: 1, V: 2, Weight: 2}, false)
	tr.AddEdge(tree.Edge{ID: 2, U: 1, V: 3, Weight: 3}, false)

	e, err := tr.RemoveEdge(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, e.ID)
	assert.Equal(t, 2, tr.Components())

	_, err = tr.RemoveEdge(0, 3)
	assert.ErrorIs(t, err, tree.ErrEdgeNotFound)

	removed, err := tr.RemoveNode(1)
	require.NoError(t, err)
	require.Len(t, removed, 2)
	assert.Equal(t, 0, removed[0].ID)
	assert.Equal(t, 2, removed[1].ID)
	assert.Zero(t, tr.Cost())
	assert.Equal(t, []int{0, 2, 3}, tr.Nodes())

	_, err = tr.RemoveNode(1)
	assert.ErrorIs(t, err, tree.ErrNodeNotFound)
}

func TestTree_LeavesAndKeyNodes(t *testing.T) {
	// Star centred at 0 with a tail 3-4.
	tr := tree.New()
	tr.AddEdge(tree.Edge{ID: 0, U: 0, V: 1, Weight: 1}, false)
	tr.AddEdge(tree.Edge{ID: 1, U: 0, V: 2, Weight: 1}, false)
	tr.AddEdge(tree.Edge{ID: 2, U: 0, V: 3, Weight: 1}, false)
	tr.AddEdge(tree.Edge{ID: 3, U: 3, V: 4, Weight: 1}, false)

	assert.Equal(t, []int{1, 2, 4}, tr.Leaves())
	assert.Equal(t, []int{0}, tr.KeyNodes())
	assert.Equal(t, 3, tr.Degree(0))
	assert.Equal(t, []int{0, 4}, tr.Neighbors(3))
}

func TestTree_Simplify(t *testing.T) {
	// 0-1-2-3 and a dangling branch 1-4-5. Terminals {0, 3}.
	tr := tree.New()
	tr.AddEdge(tree.Edge{ID: 0, U: 0, V: 1, Weight: 1}, false)
	tr.AddEdge(tree.Edge{ID: 1, U: 1, V: 2, Weight: 1}, false)
	tr.AddEdge(tree.Edge{ID: 2, U: 2, V: 3, Weight: 1}, false)
	tr.AddEdge(tree.Edge{ID: 3, U: 1, V: 4, Weight: 1}, false)
	tr.AddEdge(tree.Edge{ID: 4, U: 4, V: 5, Weight: 1}, false)
	tr.AddNode(9)

	isTerm := tree.TerminalSet([]int{0, 3})
	assert.Equal(t, 3, tr.Simplify(isTerm))
	assert.Equal(t, []int{0, 1, 2, 3}, tr.Nodes())
	assert.Equal(t, int64(3), tr.Cost())
	assert.True(t, tr.Check([]int{0, 3}))

	// Idempotent.
	assert.Zero(t, tr.Simplify(isTerm))
	assert.Equal(t, []int{0, 1, 2, 3}, tr.Nodes())

	for _, leaf := range tr.Leaves() {
		assert.True(t, isTerm(leaf))
	}
}

func TestTree_Check(t *testing.T) {
	tr := tree.New()
	tr.AddEdge(tree.Edge{ID: 0, U: 0, V: 1, Weight: 1}, false)
	assert.True(t, tr.Check([]int{0, 1}))
	assert.False(t, tr.Check([]int{0, 2}))

	tr.AddNode(2)
	assert.False(t, tr.Check([]int{0, 2}))
}

func TestTree_CloneIsIndependent(t *testing.T) {
	tr := tree.New()
	tr.AddEdge(tree.Edge{ID: 0, U: 0, V: 1, Weight: 1}, false)
	c := tr.Clone()
	c.AddEdge(tree.Edge{ID: 1, U: 1, V: 2, Weight: 4}, false)

	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, int64(1), tr.Cost())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, int64(5), c.Cost())
}

// TestTree_ExchangeYieldsMST feeds random edges with conflict handling and
// compares the resulting cost with a brute-force Kruskal.
func TestTree_ExchangeYieldsMST(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 40; round++ {
		n := 3 + rng.Intn(15)
		var edges []tree.Edge
		for i := 0; i < 3*n; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			edges = append(edges, tree.Edge{ID: len(edges), U: u, V: v, Weight: 1 + rng.Int63n(20)})
		}

		tr := tree.New()
		for _, e := range edges {
			tr.AddEdge(e, true)
		}

		assert.Equal(t, kruskalCost(n, edges), tr.Cost(), "round %d", round)
		assert.Equal(t, tr.Len()-tr.Components(), tr.EdgeCount())
	}
}

func kruskalCost(n int, edges []tree.Edge) int64 {
	sorted := append([]tree.Edge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool { return tree.ByWeightThenID(sorted[i], sorted[j]) })
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	var cost int64
	for _, e := range sorted {
		a, b := find(e.U), find(e.V)
		if a != b {
			parent[a] = b
			cost += e.Weight
		}
	}

	return cost
}
