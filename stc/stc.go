package stc

import (
	"fmt"

	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/spanning"
)

// Headings, clockwise from north. A heading h also names the backbone bit 1<<h.
const (
	north = iota
	east
	south
	west
)

// deltas[h] is the fine-grid step for heading h.
var deltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Generate returns the coverage circuit of one region.
//
// mask is the rows×cols region (true = owned) and start one of its cells.
// The region's cells become the vertices of a backbone graph, with edges to
// their right and lower neighbours, and a spanning tree of that graph is
// computed. Each cell is split into four fine sub-cells. The circuit runs
// around the tree: a fine cell steps into the neighbouring coarse cell only
// across a tree edge and otherwise stays in its own block.
//
// The walk starts at the top-left sub-cell of start heading east and at every
// cell prefers, relative to its heading, a right turn, then straight on, then
// a left turn, then going back.
//
// Errors: ErrDimensionMismatch, ErrUnsupportedConnectivity,
// ErrUnknownWeighting, spanning.ErrUnknownMethod, ErrStartOutsideRegion,
// ErrRegionDisconnected.
//
// Complexity: O(N log N) time for N region cells (edge sort), O(rows·cols) memory.
func Generate(mask []bool, rows, cols int, start gridgraph.Point, opts ...Option) (Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Preconditions.
	if rows <= 0 || cols <= 0 || len(mask) != rows*cols {
		return Path{}, fmt.Errorf("%w: len %d, %d×%d", ErrDimensionMismatch, len(mask), rows, cols)
	}
	if cfg.Connectivity != gridgraph.Conn4 {
		return Path{}, fmt.Errorf("%w: got %v", ErrUnsupportedConnectivity, cfg.Connectivity)
	}
	hw, vw, err := cfg.Weighting.edgeWeights()
	if err != nil {
		return Path{}, err
	}
	if start.Row < 0 || start.Row >= rows || start.Col < 0 || start.Col >= cols || !mask[start.Row*cols+start.Col] {
		return Path{}, fmt.Errorf("%w: (%d,%d)", ErrStartOutsideRegion, start.Row, start.Col)
	}
	lab, err := gridgraph.Label(mask, rows, cols, gridgraph.Conn4)
	if err != nil {
		return Path{}, err
	}
	if lab.Count != 1 {
		return Path{}, fmt.Errorf("%w: %d components", ErrRegionDisconnected, lab.Count)
	}

	// 2. Backbone tree.
	tree, n, err := backbone(mask, rows, cols, start, hw, vw, cfg.Method)
	if err != nil {
		return Path{}, err
	}

	// 3. Walk the circuit.
	w := walker{mask: mask, tree: tree, rows: rows, cols: cols, seen: make([]uint8, rows*cols)}
	segs, err := w.run(FinePoint{Row: 2 * start.Row, Col: 2 * start.Col}, 4*n)
	if err != nil {
		return Path{}, err
	}

	return Path{Segments: segs}, nil
}

// backbone builds the spanning tree of the region and returns it as a bitmask
// per coarse cell (bit 1<<h set when a tree edge leaves the cell towards h),
// together with the number of region cells.
func backbone(mask []bool, rows, cols int, start gridgraph.Point, hw, vw float64, method spanning.Method) ([]uint8, int, error) {
	// Compact vertex ids in row-major order.
	id := make([]int, len(mask))
	cells := make([]int, 0, len(mask))
	for i, in := range mask {
		id[i] = -1
		if in {
			id[i] = len(cells)
			cells = append(cells, i)
		}
	}

	edges := make([]spanning.Edge, 0, 2*len(cells))
	for _, i := range cells {
		r, c := i/cols, i%cols
		if c+1 < cols && mask[i+1] {
			edges = append(edges, spanning.Edge{U: id[i], V: id[i+1], W: hw})
		}
		if r+1 < rows && mask[i+cols] {
			edges = append(edges, spanning.Edge{U: id[i], V: id[i+cols], W: vw})
		}
	}

	forest, err := spanning.Build(len(cells), edges,
		spanning.WithMethod(method),
		spanning.WithRoot(id[start.Row*cols+start.Col]),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("stc: backbone: %w", err)
	}
	if !forest.Spanning() {
		return nil, 0, fmt.Errorf("%w: backbone has %d trees", ErrRegionDisconnected, forest.Components())
	}

	tree := make([]uint8, len(mask))
	for _, e := range forest.Edges {
		a, b := cells[e.U], cells[e.V]
		if a > b {
			a, b = b, a
		}
		// Vertical first: with one column a+1 is also the cell below.
		if b == a+cols {
			tree[a] |= 1 << south
			tree[b] |= 1 << north
		} else {
			tree[a] |= 1 << east
			tree[b] |= 1 << west
		}
	}

	return tree, len(cells), nil
}

// walker follows the fine circuit around a backbone.
type walker struct {
	mask       []bool
	tree       []uint8
	rows, cols int
	seen       []uint8 // visited sub-cells per coarse cell, bit (row&1)*2 + col&1
}

func (w *walker) run(from FinePoint, total int) ([]Segment, error) {
	segs := make([]Segment, 0, total-1)
	cur, heading := from, east
	w.visit(cur)
	for visited := 1; visited < total; visited++ {
		next, h, ok := w.step(cur, heading)
		if !ok {
			return nil, fmt.Errorf("%w: stuck at (%d,%d) after %d of %d cells",
				ErrIncompleteCircuit, cur.Row, cur.Col, visited, total)
		}
		w.visit(next)
		segs = append(segs, Segment{From: cur, To: next})
		cur, heading = next, h
	}

	return segs, nil
}

// step picks the first unvisited linked neighbour in the order right turn,
// straight, left turn, back.
func (w *walker) step(cur FinePoint, heading int) (FinePoint, int, bool) {
	for _, turn := range [4]int{1, 0, 3, 2} {
		h := (heading + turn) % 4
		next := FinePoint{Row: cur.Row + deltas[h][0], Col: cur.Col + deltas[h][1]}
		if w.linked(cur, next, h) && !w.visited(next) {
			return next, h, true
		}
	}

	return FinePoint{}, 0, false
}

// linked reports whether the circuit connects cur to its neighbour next in
// direction h.
func (w *walker) linked(cur, next FinePoint, h int) bool {
	if next.Row < 0 || next.Row >= 2*w.rows || next.Col < 0 || next.Col >= 2*w.cols {
		return false
	}
	from := (cur.Row/2)*w.cols + cur.Col/2
	to := (next.Row/2)*w.cols + next.Col/2
	if !w.mask[to] {
		return false
	}
	if from != to {
		return w.tree[from]&(1<<h) != 0
	}

	// Inside one block a move is blocked by the tree edge leaving the side
	// the two sub-cells share.
	var side int
	switch h {
	case east, west:
		side = north
		if cur.Row&1 == 1 {
			side = south
		}
	default:
		side = west
		if cur.Col&1 == 1 {
			side = east
		}
	}

	return w.tree[from]&(1<<side) == 0
}

func (w *walker) bit(f FinePoint) (int, uint8) {
	return (f.Row/2)*w.cols + f.Col/2, 1 << ((f.Row&1)*2 + f.Col&1)
}

func (w *walker) visit(f FinePoint) {
	i, b := w.bit(f)
	w.seen[i] |= b
}

func (w *walker) visited(f FinePoint) bool {
	i, b := w.bit(f)
	return w.seen[i]&b != 0
}
