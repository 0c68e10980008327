package gridgraph

import (
	"fmt"
	"math"
)

// Flood holds reusable scratch buffers for flood fills and BFS distance
// fields on a fixed rows×cols grid. Reusing one Flood across calls keeps
// repeated labeling free of allocations.
//
// A Labeling returned by a Flood method aliases the Flood's label buffer and
// is valid only until the next call on the same Flood. Flood is not safe for
// concurrent use.
type Flood struct {
	rows, cols int
	labels     []int
	queue      []int
}

// NewFlood allocates scratch buffers for a rows×cols grid.
func NewFlood(rows, cols int) *Flood {
	n := rows * cols
	return &Flood{
		rows:   rows,
		cols:   cols,
		labels: make([]int, n),
		queue:  make([]int, 0, n),
	}
}

// Label assigns component numbers to the cells where mask is true.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C), returned as a fresh Labeling.
func Label(mask []bool, rows, cols int, conn Connectivity) (Labeling, error) {
	lab, err := NewFlood(rows, cols).Label(mask, conn)
	if err != nil {
		return Labeling{}, err
	}

	return lab, nil
}

// Label floods the cells where mask is true. See Flood for aliasing rules.
func (f *Flood) Label(mask []bool, conn Connectivity) (Labeling, error) {
	if len(mask) != f.rows*f.cols {
		return Labeling{}, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(mask), f.rows*f.cols)
	}

	return f.fill(conn, func(i int) bool { return mask[i] })
}

// LabelEqual floods the cells where values[i] == want, for example one
// robot's territory inside an assignment matrix.
func (f *Flood) LabelEqual(values []int, want int, conn Connectivity) (Labeling, error) {
	if len(values) != f.rows*f.cols {
		return Labeling{}, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(values), f.rows*f.cols)
	}

	return f.fill(conn, func(i int) bool { return values[i] == want })
}

func (f *Flood) fill(conn Connectivity, member func(int) bool) (Labeling, error) {
	if conn != Conn4 && conn != Conn8 {
		return Labeling{}, ErrBadConnectivity
	}
	offsets := NeighborOffsets(conn)
	for i := range f.labels {
		f.labels[i] = 0
	}

	count := 0
	for i0 := range f.labels {
		if f.labels[i0] != 0 || !member(i0) {
			continue
		}
		count++
		f.labels[i0] = count
		queue := append(f.queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := u/f.cols, u%f.cols
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if vr < 0 || vr >= f.rows || vc < 0 || vc >= f.cols {
					continue
				}
				v := vr*f.cols + vc
				if f.labels[v] == 0 && member(v) {
					f.labels[v] = count
					queue = append(queue, v)
				}
			}
		}
		f.queue = queue
	}

	return Labeling{Labels: f.labels, Count: count}, nil
}

// Distances writes into dst the BFS step count from the nearest source to
// every cell where mask is true, moving only through mask cells. Cells
// outside the mask or unreachable from every source get +Inf.
// Sources outside the mask are ignored.
//
// Time: O(R·C·d). No allocations once the queue has grown to R·C.
func (f *Flood) Distances(dst []float64, mask []bool, sources []int, conn Connectivity) error {
	n := f.rows * f.cols
	if len(dst) != n || len(mask) != n {
		return ErrDimensionMismatch
	}
	if conn != Conn4 && conn != Conn8 {
		return ErrBadConnectivity
	}
	inf := math.Inf(1)
	for i := range dst {
		dst[i] = inf
	}

	queue := f.queue[:0]
	for _, s := range sources {
		if s < 0 || s >= n || !mask[s] || dst[s] == 0 {
			continue
		}
		dst[s] = 0
		queue = append(queue, s)
	}
	offsets := NeighborOffsets(conn)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := u/f.cols, u%f.cols
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if vr < 0 || vr >= f.rows || vc < 0 || vc >= f.cols {
				continue
			}
			v := vr*f.cols + vc
			if mask[v] && math.IsInf(dst[v], 1) {
				dst[v] = dst[u] + 1
				queue = append(queue, v)
			}
		}
	}
	f.queue = queue

	return nil
}

// EuclideanField writes the straight-line distance from `from` to every cell
// of a rows×cols grid into dst.
func EuclideanField(dst []float64, rows, cols int, from Point) error {
	if len(dst) != rows*cols {
		return ErrDimensionMismatch
	}
	for r := 0; r < rows; r++ {
		dr := r - from.Row
		for c := 0; c < cols; c++ {
			dc := c - from.Col
			dst[r*cols+c] = math.Sqrt(float64(dr*dr + dc*dc))
		}
	}

	return nil
}

// ConnectedComponents finds all contiguous regions of free cells
// (Free or RobotStart) under the given connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS order starting from its first cell in scan order.
//
// To convert an index back to a Point, use Point(idx).
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for labels and output.
func (g *Grid) ConnectedComponents(conn Connectivity) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	offsets := NeighborOffsets(conn)

	for i0, v := range g.cells {
		if v == Obstacle || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Point(queue[qi])
			for _, d := range offsets {
				p := Point{Row: u.Row + d[0], Col: u.Col + d[1]}
				if !g.InBounds(p) {
					continue
				}
				vi := g.Index(p)
				if g.cells[vi] != Obstacle && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
