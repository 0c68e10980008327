// Package dijkstra_test contains unit tests for the grid Dijkstra implementation.
// These tests validate option validation, weighted detours, walls, caps and
// path reconstruction.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/darp/dijkstra"
	"github.com/katalvlaran/darp/gridgraph"
)

// uniform returns a rows×cols cost slice filled with 1.
func uniform(rows, cols int) []float64 {
	c := make([]float64, rows*cols)
	for i := range c {
		c[i] = 1
	}

	return c
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	costs := uniform(2, 2)
	cases := []struct {
		name string
		in   []float64
		opts []dijkstra.Option
		err  error
	}{
		{"NoSource", costs, nil, dijkstra.ErrNoSource},
		{"Dimensions", costs[:3], []dijkstra.Option{dijkstra.Source(0)}, dijkstra.ErrDimensionMismatch},
		{"SourceRange", costs, []dijkstra.Option{dijkstra.Source(4)}, dijkstra.ErrSourceRange},
		{"MaxDistance", costs, []dijkstra.Option{dijkstra.Source(0), dijkstra.WithMaxDistance(-1)}, dijkstra.ErrBadMaxDistance},
		{"Connectivity", costs, []dijkstra.Option{dijkstra.Source(0), dijkstra.WithConnectivity(9)}, dijkstra.ErrBadConnectivity},
		{"Negative", []float64{1, -1, 1, 1}, []dijkstra.Option{dijkstra.Source(0)}, dijkstra.ErrNegativeCost},
		{"NaN", []float64{1, math.NaN(), 1, 1}, []dijkstra.Option{dijkstra.Source(0)}, dijkstra.ErrNegativeCost},
		{"Blocked", []float64{math.Inf(1), 1, 1, 1}, []dijkstra.Option{dijkstra.Source(0)}, dijkstra.ErrSourceBlocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := dijkstra.Dijkstra(tc.in, 2, 2, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Distance Tests
// ------------------------------------------------------------------------

// TestDijkstra_UniformMatchesManhattan checks that unit costs under Conn4
// reproduce Manhattan distances on an open grid.
func TestDijkstra_UniformMatchesManhattan(t *testing.T) {
	const rows, cols = 4, 5
	dist, prev, err := dijkstra.Dijkstra(uniform(rows, cols), rows, cols, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Nil(t, prev)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assert.Equal(t, float64(r+c), dist[r*cols+c], "cell (%d,%d)", r, c)
		}
	}
}

// TestDijkstra_Walls routes around an impassable column and leaves an
// enclosed cell unreachable.
//
//	S . # .
//	. . # .
//	. . . .
func TestDijkstra_Walls(t *testing.T) {
	inf := math.Inf(1)
	costs := []float64{
		1, 1, inf, 1,
		1, 1, inf, 1,
		1, 1, 1, 1,
	}
	dist, prev, err := dijkstra.Dijkstra(costs, 3, 4, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 7.0, dist[3], "(0,3) is reached around the wall")
	assert.True(t, math.IsInf(dist[2], 1))

	path := dijkstra.PathTo(prev, 0, 3)
	require.NotEmpty(t, path)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 3, path[len(path)-1])
	assert.Len(t, path, 8)
	assert.Nil(t, dijkstra.PathTo(prev, 0, 2))
}

// TestDijkstra_ExpensiveCells prefers a longer detour over a costly cell.
func TestDijkstra_ExpensiveCells(t *testing.T) {
	// 3×3 with an expensive centre; corner to corner.
	costs := uniform(3, 3)
	costs[4] = 100
	dist, _, err := dijkstra.Dijkstra(costs, 3, 3, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, 4.0, dist[8])
	assert.Equal(t, 51.5, dist[4])
}

// TestDijkstra_Conn8 uses diagonal steps of length √2.
func TestDijkstra_Conn8(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(uniform(3, 3), 3, 3,
		dijkstra.Source(0), dijkstra.WithConnectivity(gridgraph.Conn8))
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sqrt2, dist[8], 1e-12)
	assert.InDelta(t, 1+math.Sqrt2, dist[5], 1e-12)
}

// TestDijkstra_MaxDistance caps exploration.
func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(uniform(1, 6), 1, 6, dijkstra.Source(0), dijkstra.WithMaxDistance(2.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, math.Inf(1), math.Inf(1), math.Inf(1)}, dist)
}

// TestDijkstra_Symmetric checks dist(a→b) == dist(b→a) on random costs.
func TestDijkstra_Symmetric(t *testing.T) {
	const rows, cols = 6, 7
	costs := make([]float64, rows*cols)
	for i := range costs {
		costs[i] = 1 + float64((i*37)%11)/3
	}
	a, b := 3, rows*cols-2
	da, _, err := dijkstra.Dijkstra(costs, rows, cols, dijkstra.Source(a))
	require.NoError(t, err)
	db, _, err := dijkstra.Dijkstra(costs, rows, cols, dijkstra.Source(b))
	require.NoError(t, err)
	assert.InDelta(t, da[b], db[a], 1e-9)
}
