package contraction_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/contraction"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

// byPair is the (Weight, min, max) order used by the contracted forest.
func byPair(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// assertMinimal compares the maintained forest with a from-scratch Kruskal.
func assertMinimal(t *testing.T, g *contraction.Graph) {
	t.Helper()
	all := g.Edges()
	list := make([]core.Edge, len(all))
	for i, e := range all {
		list[i] = core.Edge{ID: e.ID, From: e.X, To: e.Y, Weight: e.Weight}
	}
	want, wantCost := prim_kruskal.Kruskal(list, prim_kruskal.WithLess(byPair))
	wantIDs := make([]int, len(want))
	for i, e := range want {
		wantIDs[i] = e.ID
	}
	sort.Ints(wantIDs)

	tree := g.TreeEdges()
	gotIDs := make([]int, len(tree))
	for i, e := range tree {
		gotIDs[i] = e.ID
	}

	assert.Equal(t, wantCost, g.Cost())
	assert.Equal(t, wantIDs, gotIDs)
	assert.Equal(t, len(all), len(tree)+len(g.NonTreeEdges()))

	rest := g.NonTreeEdges()
	for i := 1; i < len(rest); i++ {
		assert.LessOrEqual(t, rest[i-1].Weight, rest[i].Weight)
	}
}

func TestGraph_TriangleExchange(t *testing.T) {
	g := contraction.New()
	_, err := g.Upsert(0, 1, 5, contraction.Link{U: 10, V: 11, E: 100})
	require.NoError(t, err)
	_, err = g.Upsert(1, 2, 3, contraction.Link{U: 12, V: 13, E: 101})
	require.NoError(t, err)
	_, err = g.Upsert(2, 0, 4, contraction.Link{U: 14, V: 15, E: 102})
	require.NoError(t, err)

	assert.Equal(t, int64(7), g.Cost())
	assert.False(t, g.InTree(0, 1))
	require.Len(t, g.NonTreeEdges(), 1)
	assert.Equal(t, 0, g.NonTreeEdges()[0].X)
	assert.Equal(t, 1, g.NonTreeEdges()[0].Y)

	// Link is oriented from X to Y: Upsert(2, 0, ...) had U on 2's side.
	e, ok := g.Edge(0, 2)
	require.True(t, ok)
	assert.Equal(t, contraction.Link{U: 15, V: 14, E: 102}, e.Link)
	assertMinimal(t, g)
}

func TestGraph_UpsertValidation(t *testing.T) {
	g := contraction.New()
	_, err := g.Upsert(1, 1, 3, contraction.Link{})
	assert.ErrorIs(t, err, contraction.ErrLoop)
	_, err = g.Upsert(1, 2, 0, contraction.Link{})
	assert.ErrorIs(t, err, contraction.ErrBadWeight)
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_Reweight(t *testing.T) {
	g := contraction.New()
	_, _ = g.Upsert(0, 1, 2, contraction.Link{})
	_, _ = g.Upsert(1, 2, 3, contraction.Link{})
	_, _ = g.Upsert(0, 2, 4, contraction.Link{})
	assert.Equal(t, int64(5), g.Cost())

	// Increasing a tree edge swaps it out.
	_, _ = g.Upsert(1, 2, 10, contraction.Link{})
	assert.Equal(t, int64(6), g.Cost())
	assert.False(t, g.InTree(1, 2))
	assertMinimal(t, g)

	// Decreasing the non-tree edge brings it back.
	_, _ = g.Upsert(2, 1, 1, contraction.Link{})
	assert.Equal(t, int64(3), g.Cost())
	assert.True(t, g.InTree(1, 2))
	assert.False(t, g.InTree(0, 2))
	assertMinimal(t, g)

	// Decreasing a tree edge keeps the tree.
	_, _ = g.Upsert(0, 1, 1, contraction.Link{})
	assert.Equal(t, int64(2), g.Cost())
	assert.True(t, g.InTree(0, 1))

	// Increasing a non-tree edge only re-keys it.
	_, _ = g.Upsert(0, 2, 30, contraction.Link{})
	assert.Equal(t, int64(2), g.Cost())
	assertMinimal(t, g)
}

func TestGraph_DeleteRepairs(t *testing.T) {
	g := contraction.New()
	_, _ = g.Upsert(0, 1, 1, contraction.Link{})
	_, _ = g.Upsert(1, 2, 1, contraction.Link{})
	_, _ = g.Upsert(0, 2, 5, contraction.Link{})
	_, _ = g.Upsert(2, 3, 2, contraction.Link{})

	assert.True(t, g.Delete(1, 2))
	assert.False(t, g.Delete(1, 2))
	assert.Equal(t, int64(8), g.Cost())
	assert.Equal(t, 1, g.Components())
	assertMinimal(t, g)

	removed := g.RemoveNode(2)
	require.Len(t, removed, 2)
	assert.False(t, g.HasNode(2))
	assert.Equal(t, []int{0, 1, 3}, g.Nodes())
	assert.Equal(t, 2, g.Components())
	assert.Equal(t, int64(1), g.Cost())
}

func TestGraph_Prune(t *testing.T) {
	g := contraction.New()
	_, _ = g.Upsert(0, 1, 1, contraction.Link{E: 7})
	_, _ = g.Upsert(1, 2, 1, contraction.Link{E: 8})
	_, _ = g.Upsert(0, 2, 4, contraction.Link{E: 9})

	dropped := g.Prune(func(e contraction.Edge) bool { return e.Link.E != 8 })
	require.Len(t, dropped, 1)
	assert.Equal(t, 8, dropped[0].Link.E)
	assert.Equal(t, int64(5), g.Cost())
	assert.Nil(t, g.Prune(func(contraction.Edge) bool { return true }))
}

func TestGraph_RandomUpdatesStayMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 20; round++ {
		g := contraction.New()
		n := 4 + rng.Intn(12)
		for step := 0; step < 120; step++ {
			x, y := rng.Intn(n), rng.Intn(n)
			switch op := rng.Intn(10); {
			case op < 6:
				if x == y {
					continue
				}
				_, err := g.Upsert(x, y, 1+rng.Int63n(15), contraction.Link{U: x, V: y})
				require.NoError(t, err)
			case op < 8:
				g.Delete(x, y)
			case op < 9:
				edges := g.Edges()
				var ids []int
				for _, e := range edges {
					if rng.Intn(4) == 0 {
						ids = append(ids, e.ID)
					}
				}
				g.DeleteEdges(ids)
			default:
				g.RemoveNode(x)
			}
			assertMinimal(t, g)
		}
	}
}
