// Package gridgraph defines core types, cell codes, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/darp.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCode indicates a cell value outside {Free, Obstacle, RobotStart}.
	ErrUnknownCode = errors.New("gridgraph: unknown cell code")
	// ErrDimensionMismatch indicates a mask or buffer whose length is not rows×cols.
	ErrDimensionMismatch = errors.New("gridgraph: mask length does not match grid dimensions")
	// ErrBadConnectivity indicates a Connectivity value other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("gridgraph: connectivity must be Conn4 or Conn8")
	// ErrDisconnected indicates that the free space splits into more than one component.
	ErrDisconnected = errors.New("gridgraph: free space is not a single 4-connected component")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no bridge exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Cell codes accepted by From2D.
const (
	// Free marks a traversable cell that must be covered.
	Free = 0
	// Obstacle marks a blocked cell.
	Obstacle = 1
	// RobotStart marks a robot's initial cell; it is also free space.
	RobotStart = 2
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return "conn?"
	}
}

// Point addresses a grid cell by row and column.
type Point struct {
	Row, Col int
}

// Labeling is the result of a component flood fill.
//
// Labels has one entry per grid cell in row-major order: 0 for cells that are
// not members, otherwise the 1-based component number. Components are numbered
// in the row-major order of their first cell.
type Labeling struct {
	Labels []int
	Count  int
}

// Sizes returns the number of cells in each component; Sizes()[k] belongs to label k+1.
func (l Labeling) Sizes() []int {
	sizes := make([]int, l.Count)
	for _, lab := range l.Labels {
		if lab > 0 {
			sizes[lab-1]++
		}
	}

	return sizes
}

// Grid is an immutable rectangular workspace of cell codes stored row-major.
// Rows and Cols define dimensions; starts lists RobotStart cells in scan order.
type Grid struct {
	Rows, Cols int
	cells      []int
	starts     []int
	free       int
}

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// NeighborOffsets returns the (dRow, dCol) offsets for conn in N, E, S, W order
// (with diagonals interleaved clockwise for Conn8). Callers must not modify the slice.
func NeighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}
