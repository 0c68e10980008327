// File: gridgraph/components_test.go
package gridgraph

import (
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (0 = free, 1 = obstacle, 2 = start):
//
//	1 0 0 1
//	0 0 1 1
//	1 1 2 0
//
// Expected: 2 components of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	g, err := From2D([][]int{
		{1, 0, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 2, 0},
	})
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := g.ConnectedComponents(Conn4)
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestLabel_Diagonal8 uses a 5×5 X pattern where members only touch at corners.
// With Conn8 all 9 cells form one component; with Conn4 each is isolated.
func TestLabel_Diagonal8(t *testing.T) {
	pattern := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	mask := make([]bool, 25)
	for r, row := range pattern {
		for c, v := range row {
			mask[r*5+c] = v == 1
		}
	}

	lab8, err := Label(mask, 5, 5, Conn8)
	require.NoError(t, err)
	assert.Equal(t, 1, lab8.Count)
	assert.Equal(t, []int{9}, lab8.Sizes())

	lab4, err := Label(mask, 5, 5, Conn4)
	require.NoError(t, err)
	assert.Equal(t, 9, lab4.Count)
}

// TestLabel_ScanOrder checks that components are numbered by their first cell.
func TestLabel_ScanOrder(t *testing.T) {
	mask := []bool{
		false, true, false,
		true, false, true,
		true, false, true,
	}
	lab, err := Label(mask, 3, 3, Conn4)
	require.NoError(t, err)
	assert.Equal(t, 3, lab.Count)
	assert.Equal(t, []int{
		0, 1, 0,
		2, 0, 3,
		2, 0, 3,
	}, lab.Labels)
	assert.Equal(t, []int{1, 2, 2}, lab.Sizes())
}

// TestLabel_Errors covers dimension and connectivity validation.
func TestLabel_Errors(t *testing.T) {
	_, err := Label(make([]bool, 5), 2, 3, Conn4)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Label(make([]bool, 6), 2, 3, Connectivity(7))
	assert.ErrorIs(t, err, ErrBadConnectivity)

	lab, err := Label(make([]bool, 6), 2, 3, Conn4)
	require.NoError(t, err)
	assert.Zero(t, lab.Count)
}

// TestFlood_LabelEqual labels one owner inside an assignment matrix and
// verifies the Flood buffer is reused between calls.
func TestFlood_LabelEqual(t *testing.T) {
	assign := []int{
		0, 0, 1, 1,
		1, 0, 1, -1,
		1, 1, 0, 0,
	}
	f := NewFlood(3, 4)

	lab, err := f.LabelEqual(assign, 0, Conn4)
	require.NoError(t, err)
	assert.Equal(t, 2, lab.Count)
	assert.Equal(t, []int{3, 2}, lab.Sizes())

	lab, err = f.LabelEqual(assign, 1, Conn4)
	require.NoError(t, err)
	assert.Equal(t, 2, lab.Count)
	assert.Equal(t, 0, lab.Labels[0], "stale label from previous call")

	lab, err = f.LabelEqual(assign, 1, Conn8)
	require.NoError(t, err)
	assert.Equal(t, 1, lab.Count)
}

// TestFlood_Distances checks a multi-source BFS field around a wall.
func TestFlood_Distances(t *testing.T) {
	// 1×6 corridor with a blocked cell at index 2.
	mask := []bool{true, true, false, true, true, true}
	dst := make([]float64, 6)
	f := NewFlood(1, 6)

	require.NoError(t, f.Distances(dst, mask, []int{0}, Conn4))
	assert.Equal(t, 0.0, dst[0])
	assert.Equal(t, 1.0, dst[1])
	for _, i := range []int{2, 3, 4, 5} {
		assert.True(t, math.IsInf(dst[i], 1), "cell %d should be unreachable", i)
	}

	require.NoError(t, f.Distances(dst, mask, []int{0, 5, 2}, Conn4))
	assert.Equal(t, []float64{0, 1, math.Inf(1), 2, 1, 0}, dst)

	assert.ErrorIs(t, f.Distances(dst[:5], mask, nil, Conn4), ErrDimensionMismatch)
}

// TestFlood_DistancesNoAlloc ensures repeated BFS passes do not allocate.
func TestFlood_DistancesNoAlloc(t *testing.T) {
	const rows, cols = 20, 30
	mask := make([]bool, rows*cols)
	for i := range mask {
		mask[i] = i%7 != 3
	}
	dst := make([]float64, rows*cols)
	f := NewFlood(rows, cols)
	sources := []int{0, rows*cols - 1}

	allocs := testing.AllocsPerRun(50, func() {
		_ = f.Distances(dst, mask, sources, Conn4)
	})
	assert.Zero(t, allocs)
}

// TestEuclideanField checks straight-line distances from a corner.
func TestEuclideanField(t *testing.T) {
	dst := make([]float64, 12)
	require.NoError(t, EuclideanField(dst, 3, 4, Point{Row: 0, Col: 0}))
	assert.Equal(t, 0.0, dst[0])
	assert.Equal(t, 3.0, dst[3])
	assert.InDelta(t, math.Sqrt(13), dst[11], 1e-12)
	assert.ErrorIs(t, EuclideanField(dst, 2, 2, Point{}), ErrDimensionMismatch)
}
