package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/darp/gridgraph"
)

//----------------------------------------------------------------------------//
// From2D and accessor tests
//----------------------------------------------------------------------------//

// TestFrom2D_Errors verifies that From2D rejects empty, ragged or unknown inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {0}}, gridgraph.ErrNonRectangular},
		{"UnknownCode", [][]int{{0, 3}}, gridgraph.ErrUnknownCode},
		{"NegativeCode", [][]int{{-1, 0}}, gridgraph.ErrUnknownCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.From2D(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("From2D(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestFrom2D_DeepCopy ensures later mutation of the input does not leak in.
func TestFrom2D_DeepCopy(t *testing.T) {
	in := [][]int{{0, 2}, {1, 0}}
	g, err := gridgraph.From2D(in)
	require.NoError(t, err)
	in[0][0] = gridgraph.Obstacle
	assert.Equal(t, gridgraph.Free, g.Code(0))
}

// TestGrid_Accessors checks counts, starts and index conversions.
func TestGrid_Accessors(t *testing.T) {
	g, err := gridgraph.From2D([][]int{
		{0, 0, 2},
		{1, 2, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 5, g.FreeCount())
	assert.Equal(t, 2, g.Robots())
	assert.Equal(t, []gridgraph.Point{{Row: 0, Col: 2}, {Row: 1, Col: 1}}, g.Starts())
	assert.Equal(t, []int{2, 4}, g.StartIndices())
	assert.Equal(t, []gridgraph.Point{{Row: 1, Col: 0}}, g.Obstacles())
	assert.Equal(t, []bool{true, true, true, false, true, true}, g.FreeMask())

	for i := 0; i < g.Len(); i++ {
		if got := g.Index(g.Point(i)); got != i {
			t.Errorf("Index(Point(%d)) = %d", i, got)
		}
	}
	assert.True(t, g.InBounds(gridgraph.Point{Row: 1, Col: 2}))
	assert.False(t, g.InBounds(gridgraph.Point{Row: 2, Col: 0}))
	assert.False(t, g.InBounds(gridgraph.Point{Row: 0, Col: -1}))
	assert.True(t, g.IsFree(2))
	assert.False(t, g.IsFree(3))
}

// TestGrid_Feasible accepts one free component and rejects split or empty space.
func TestGrid_Feasible(t *testing.T) {
	ok, _ := gridgraph.From2D([][]int{
		{2, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	assert.NoError(t, ok.Feasible())

	split, _ := gridgraph.From2D([][]int{
		{2, 1, 0},
		{1, 1, 0},
	})
	assert.ErrorIs(t, split.Feasible(), gridgraph.ErrDisconnected)

	diagonal, _ := gridgraph.From2D([][]int{
		{2, 1},
		{1, 2},
	})
	assert.ErrorIs(t, diagonal.Feasible(), gridgraph.ErrDisconnected)

	blocked, _ := gridgraph.From2D([][]int{{1, 1}})
	assert.ErrorIs(t, blocked.Feasible(), gridgraph.ErrDisconnected)
}
