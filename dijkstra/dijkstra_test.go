// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input validation, distances and paths, MaxDistance,
// InfEdgeThreshold, and deterministic tie-breaking.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph(2)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(2))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality.
// ------------------------------------------------------------------------

func TestDijkstra_ChainWithPath(t *testing.T) {
	// 0—1—2—3—4 with weights 1,2,3,4.
	g := core.NewGraph(5)
	for i := 0; i < 4; i++ {
		_, err := g.AddEdge(i, i+1, int64(i+1))
		require.NoError(t, err)
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3, 6, 10}, dist)
	assert.Equal(t, []int{core.NoEdge, 0, 1, 2, 3}, prev)
	assert.Equal(t, []int{0, 1, 2, 3}, dijkstra.PathTo(g, dist, prev, 4))
	assert.Empty(t, dijkstra.PathTo(g, dist, prev, 0))
}

func TestDijkstra_NoPathWithoutOption(t *testing.T) {
	g := core.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 7)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, int64(7), dist[0])
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, dist[2])
	assert.Equal(t, core.NoEdge, prev[2])
	assert.Nil(t, dijkstra.PathTo(g, dist, prev, 2))
}

func TestDijkstra_TieGoesToLowerEdge(t *testing.T) {
	// Two paths of length 2 from 0 to 3: via 1 (edges 0,1) and via 2 (edges 2,3).
	// Node 3 is first offered through edge 1; edge 3 does not replace it.
	g := core.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 1, prev[3])
}

// ------------------------------------------------------------------------
// 3. MaxDistance and InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := core.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(2, 3, 2)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 4, dijkstra.Unreachable}, dist)

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist[0])
	assert.Equal(t, dijkstra.Unreachable, dist[1])
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// 0—1 (10) is a wall under threshold 10; the detour 0—2—1 costs 6.
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 10)
	_, _ = g.AddEdge(0, 2, 3)
	_, _ = g.AddEdge(2, 1, 3)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(10))
	require.NoError(t, err)
	assert.Equal(t, int64(6), dist[1])
}

// ------------------------------------------------------------------------
// 4. Randomized cross-check with Bellman–Ford.
// ------------------------------------------------------------------------

func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for round := 0; round < 20; round++ {
		n := 2 + rng.Intn(30)
		g := core.NewGraph(n, core.WithMultiEdges())
		for i := 0; i < 3*n; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u != v {
				_, _ = g.AddEdge(u, v, 1+rng.Int63n(50))
			}
		}
		src := rng.Intn(n)
		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
		require.NoError(t, err)

		want := make([]int64, n)
		for i := range want {
			want[i] = dijkstra.Unreachable
		}
		want[src] = 0
		for iter := 0; iter < n; iter++ {
			for _, e := range g.Edges() {
				if want[e.From] != dijkstra.Unreachable && want[e.From]+e.Weight < want[e.To] {
					want[e.To] = want[e.From] + e.Weight
				}
				if want[e.To] != dijkstra.Unreachable && want[e.To]+e.Weight < want[e.From] {
					want[e.From] = want[e.To] + e.Weight
				}
			}
		}
		assert.Equal(t, want, dist)

		for v := 0; v < n; v++ {
			path := dijkstra.PathTo(g, dist, prev, v)
			if dist[v] == dijkstra.Unreachable {
				continue
			}
			total, err := g.TotalWeight(path)
			require.NoError(t, err)
			assert.Equal(t, dist[v], total)
		}
	}
}
