package localsearch_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/localsearch"
	"github.com/katalvlaran/lvsteiner/mehlhorn"
	"github.com/katalvlaran/lvsteiner/tree"
)

// hubGraph has terminals 0,1,2 joined pairwise by weight-5 chords and a hub 3
// at distance 3 from each. The Mehlhorn tree uses two chords (10); the star
// through the hub costs 9.
func hubGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	for _, e := range [][3]int64{{0, 3, 3}, {1, 3, 3}, {2, 3, 3}, {0, 1, 5}, {1, 2, 5}, {0, 2, 5}} {
		_, err := g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

func TestRun_FindsHub(t *testing.T) {
	g := hubGraph(t)
	base, err := mehlhorn.New(g, []int{0, 1, 2})
	require.NoError(t, err)
	start, err := base.CurrentTree()
	require.NoError(t, err)
	require.Equal(t, int64(10), start.Cost())

	res, err := localsearch.Run(context.Background(), g, []int{0, 1, 2}, start,
		localsearch.WithAddProb(1), localsearch.WithMaxIterations(5))
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.Cost)
	assert.Equal(t, []int{3}, res.KeyVertices)
	assert.Equal(t, 1, res.Improvements)
	assert.Equal(t, 5, res.Iterations)
	assert.True(t, res.Tree.Check([]int{0, 1, 2}))
	assert.Equal(t, []int{3}, res.Tree.KeyNodes())
}

func TestRun_StartsFromInitialTree(t *testing.T) {
	g := hubGraph(t)
	star := tree.New()
	for id := 0; id < 3; id++ {
		e := g.Edge(id)
		star.AddEdge(tree.Edge{ID: e.ID, U: e.From, V: e.To, Weight: e.Weight}, false)
	}
	require.Equal(t, int64(9), star.Cost())

	// Dropping the hub is the only move and costs 10, so it is undone.
	res, err := localsearch.Run(context.Background(), g, []int{0, 1, 2}, star,
		localsearch.WithAddProb(0), localsearch.WithMaxIterations(3))
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.Cost)
	assert.Zero(t, res.Improvements)
	assert.True(t, res.Tree.Check([]int{0, 1, 2}))
	assert.Equal(t, []int{0, 1, 2, 3}, res.Tree.Nodes())
}

func TestRun_MockClockDeadline(t *testing.T) {
	mock := clock.NewMock()
	var seen []int64
	res, err := localsearch.Run(context.Background(), hubGraph(t), []int{0, 1, 2}, nil,
		localsearch.WithAddProb(1),
		localsearch.WithMaxIterations(0),
		localsearch.WithClock(mock),
		localsearch.WithTimeLimit(time.Second),
		localsearch.WithOnImprove(func(r localsearch.Result) {
			seen = append(seen, r.Cost)
			mock.Add(2 * time.Second)
		}))
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, seen)
	assert.Equal(t, 1, res.Iterations)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := localsearch.Run(ctx, hubGraph(t), []int{0, 1, 2}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(10), res.Cost)
	assert.Zero(t, res.Iterations)
}

func TestRun_Infeasible(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Path(2))
	require.NoError(t, err)
	_, err = localsearch.Run(context.Background(), g, []int{0, 2}, nil)
	assert.ErrorIs(t, err, mehlhorn.ErrInfeasible)
}

func TestRun_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { localsearch.WithAddProb(1.5) })
	assert.Panics(t, func() { localsearch.WithMaxIterations(-1) })
}

func TestRun_DeterministicAndNeverWorse(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 8; round++ {
		n := 15 + rng.Intn(15)
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithRand(rng), builder.WithUniformWeight(1, 20)},
			builder.RandomConnected(n, 2*n))
		require.NoError(t, err)
		terms, err := builder.PickTerminals(n, 3+rng.Intn(4), rng)
		require.NoError(t, err)

		base, err := mehlhorn.New(g, terms)
		require.NoError(t, err)
		start, err := base.CurrentTree()
		require.NoError(t, err)

		run := func() localsearch.Result {
			res, err := localsearch.Run(context.Background(), g, terms, start,
				localsearch.WithSeed(int64(round+1)), localsearch.WithMaxIterations(60))
			require.NoError(t, err)
			return res
		}
		a, b := run(), run()
		assert.Equal(t, a.Cost, b.Cost)
		assert.Equal(t, a.KeyVertices, b.KeyVertices)
		assert.Equal(t, a.Tree.Edges(), b.Tree.Edges())

		assert.LessOrEqual(t, a.Cost, start.Cost())
		assert.True(t, a.Tree.Check(terms))
		for _, leaf := range a.Tree.Leaves() {
			assert.Contains(t, terms, leaf)
		}
	}
}
