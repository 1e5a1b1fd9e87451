package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/core"
)

func TestPathAndCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, core.Edge{ID: 2, From: 2, To: 3, Weight: 1}, g.Edge(2))

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(5)}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, int64(5), g.Weight(2))

	_, err = builder.BuildGraph(nil, nil, builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComposeDisjoint(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	_, count := bfs.Components(g)
	assert.Equal(t, 2, count)
	// Star hub is node 3.
	assert.Equal(t, 2, g.Degree(3))
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	// 2*(3-1) horizontal + 3*(2-1) vertical.
	assert.Equal(t, 7, g.EdgeCount())
	_, ok := g.FindEdge(builder.GridNode(0, 3, 0, 1), builder.GridNode(0, 3, 1, 1))
	assert.True(t, ok)

	_, err = builder.BuildGraph(nil, nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

func TestRandomConnected(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(2, 9)}
	g1, err := builder.BuildGraph(nil, opts, builder.RandomConnected(40, 60))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(2, 9)}
	g2, err := builder.BuildGraph(nil, opts, builder.RandomConnected(40, 60))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	_, count := bfs.Components(g1)
	assert.Equal(t, 1, count)
	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(2))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}

	_, err = builder.BuildGraph(nil, nil, builder.RandomConnected(5, 1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWeightFnPanics(t *testing.T) {
	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 8)(nil))
}

func TestPickTerminals(t *testing.T) {
	terms, err := builder.PickTerminals(10, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, terms)

	terms, err = builder.PickTerminals(10, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, terms, 4)
	assert.IsIncreasing(t, terms)

	_, err = builder.PickTerminals(3, 4, nil)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.PickTerminals(3, 0, nil)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}
