package branchbound_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/branchbound"
	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/mehlhorn"
)

// hubGraph: terminals 0,1,2 with weight-5 chords and a hub 3 at distance 3.
// An isolated node 4 sits outside the terminals' component.
func hubGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(5)
	for _, e := range [][3]int64{{0, 3, 3}, {1, 3, 3}, {2, 3, 3}, {0, 1, 5}, {1, 2, 5}, {0, 2, 5}} {
		_, err := g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

func TestRun_FindsHub(t *testing.T) {
	res, err := branchbound.Run(context.Background(), hubGraph(t), []int{0, 1, 2}, nil)
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, int64(9), res.Cost)
	assert.Equal(t, []int{3}, res.Steiner)
	assert.Equal(t, 1, res.Nodes)
	assert.Equal(t, 1, res.Improvements)
	assert.True(t, mehlhorn.Check(res.Tree, []int{0, 1, 2}))
}

func TestRun_UpperBoundSeedsBest(t *testing.T) {
	g := hubGraph(t)
	first, err := branchbound.Run(context.Background(), g, []int{0, 1, 2}, nil)
	require.NoError(t, err)
	require.Equal(t, int64(9), first.Cost)

	// Seeded with the optimum, the hub is still visited (radius bound 6 ≤ 9)
	// but brings no improvement.
	res, err := branchbound.Run(context.Background(), g, []int{0, 1, 2}, first.Tree)
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.Cost)
	assert.Zero(t, res.Improvements)
	assert.Nil(t, res.Steiner)
	assert.Equal(t, 1, res.Nodes)
}

func TestRun_NodeLimit(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(2), builder.WithUniformWeight(1, 9)},
		builder.Grid(4, 4))
	require.NoError(t, err)
	res, err := branchbound.Run(context.Background(), g, []int{0, 3, 12, 15}, nil, branchbound.WithMaxNodes(5))
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.Equal(t, 5, res.Nodes)
	assert.True(t, res.Tree.Check([]int{0, 3, 12, 15}))
}

func TestRun_MockClock(t *testing.T) {
	// A spoke 3-4 puts node 4 in the terminals' component, so a second free
	// vertex remains when the first improvement moves the clock past the
	// deadline.
	g := hubGraph(t)
	_, err := g.AddEdge(3, 4, 7)
	require.NoError(t, err)

	mock := clock.NewMock()
	res, err := branchbound.Run(context.Background(), g, []int{0, 1, 2}, nil,
		branchbound.WithClock(mock),
		branchbound.WithTimeLimit(time.Second),
		branchbound.WithOnImprove(func(branchbound.Result) { mock.Add(time.Minute) }))
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.Equal(t, 1, res.Improvements)
	assert.Equal(t, 1, res.Nodes)
	assert.Equal(t, int64(9), res.Cost)
	assert.Equal(t, []int{3}, res.Steiner)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := branchbound.Run(ctx, hubGraph(t), []int{0, 1, 2}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(10), res.Cost)
	assert.False(t, res.Complete)
}

func TestRun_Infeasible(t *testing.T) {
	_, err := branchbound.Run(context.Background(), hubGraph(t), []int{0, 4}, nil)
	assert.ErrorIs(t, err, mehlhorn.ErrInfeasible)
}

func TestRun_NeverWorseThanMehlhorn(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for round := 0; round < 10; round++ {
		n := 6 + rng.Intn(5)
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithRand(rng), builder.WithUniformWeight(1, 12)},
			builder.RandomConnected(n, n))
		require.NoError(t, err)
		terms, err := builder.PickTerminals(n, 3, rng)
		require.NoError(t, err)

		base, err := mehlhorn.New(g, terms)
		require.NoError(t, err)
		start, err := base.CurrentTree()
		require.NoError(t, err)

		res, err := branchbound.Run(context.Background(), g, terms, nil)
		require.NoError(t, err)
		assert.True(t, res.Complete)
		assert.LessOrEqual(t, res.Cost, start.Cost())
		assert.Equal(t, res.Cost, res.Tree.Cost())
		assert.True(t, res.Tree.Check(terms))
		assert.LessOrEqual(t, len(res.Steiner), 2)
	}
}
