// Package gridgraph treats a rectangular 2D workspace of cell codes as an
// implicit graph. Cells are addressed by Point or by row-major index.
package gridgraph

import (
	"fmt"
)

// From2D constructs a Grid from a non-empty, rectangular 2D slice of cell codes.
// It deep-copies the input to ensure immutability.
//
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrUnknownCode
// (wrapped with the offending position) for values other than Free,
// Obstacle or RobotStart.
// Complexity: O(R×C) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{Rows: rows, Cols: cols, cells: make([]int, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := values[r][c]
			switch v {
			case Free:
				g.free++
			case RobotStart:
				g.free++
				g.starts = append(g.starts, r*cols+c)
			case Obstacle:
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCode, v, r, c)
			}
			g.cells[r*cols+c] = v
		}
	}

	return g, nil
}

// Len returns Rows×Cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Index maps p to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Row*g.Cols + p.Col
}

// Point converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Point(idx int) Point {
	return Point{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Code returns the cell code stored at idx.
func (g *Grid) Code(idx int) int { return g.cells[idx] }

// IsFree reports whether the cell at idx is traversable (Free or RobotStart).
func (g *Grid) IsFree(idx int) bool { return g.cells[idx] != Obstacle }

// FreeCount returns the number of traversable cells.
func (g *Grid) FreeCount() int { return g.free }

// FreeMask returns a fresh row-major mask of traversable cells.
func (g *Grid) FreeMask() []bool {
	mask := make([]bool, len(g.cells))
	for i, v := range g.cells {
		mask[i] = v != Obstacle
	}

	return mask
}

// Robots returns the number of RobotStart cells.
func (g *Grid) Robots() int { return len(g.starts) }

// StartIndices returns a copy of the RobotStart indices in row-major order.
// Robot k starts at StartIndices()[k].
func (g *Grid) StartIndices() []int {
	out := make([]int, len(g.starts))
	copy(out, g.starts)

	return out
}

// Starts returns the RobotStart cells in row-major order.
func (g *Grid) Starts() []Point {
	out := make([]Point, len(g.starts))
	for i, idx := range g.starts {
		out[i] = g.Point(idx)
	}

	return out
}

// Obstacles returns every Obstacle cell in row-major order.
func (g *Grid) Obstacles() []Point {
	var out []Point
	for i, v := range g.cells {
		if v == Obstacle {
			out = append(out, g.Point(i))
		}
	}

	return out
}

// Feasible reports whether the free space is one non-empty 4-connected component.
// Returns ErrDisconnected, wrapped with the component count, otherwise.
// Complexity: O(R×C).
func (g *Grid) Feasible() error {
	lab, err := Label(g.FreeMask(), g.Rows, g.Cols, Conn4)
	if err != nil {
		return err
	}
	if lab.Count != 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, lab.Count)
	}

	return nil
}
