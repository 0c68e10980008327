// Package proximity answers "how far is the nearest obstacle?" for grid
// cells using an R-tree over obstacle cells, and turns the answer into
// per-cell traversal weights that make open space cheaper than corridors
// hugging walls.
package proximity

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/darp/gridgraph"
)

// neighbors is how many R-tree candidates are compared by centre distance.
const neighbors = 4

// obstacleEntry wraps an obstacle cell for R-tree storage.
type obstacleEntry struct {
	cell gridgraph.Point
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (o *obstacleEntry) Bounds() rtreego.Rect {
	return o.bbox
}

// Index manages nearest-obstacle queries over a grid.
type Index struct {
	tree  *rtreego.Rtree
	count int
}

// NewIndex builds an index over every Obstacle cell of g. Each obstacle is
// stored as a tiny box around its cell centre.
func NewIndex(g *gridgraph.Grid) *Index {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	obstacles := g.Obstacles()
	for _, p := range obstacles {
		tree.Insert(&obstacleEntry{
			cell: p,
			bbox: rtreego.Point{float64(p.Row), float64(p.Col)}.ToRect(1e-6),
		})
	}

	return &Index{tree: tree, count: len(obstacles)}
}

// Len returns the number of indexed obstacles.
func (ix *Index) Len() int { return ix.count }

// Nearest returns the obstacle closest to p by centre distance and that
// distance. ok is false when the grid has no obstacles.
func (ix *Index) Nearest(p gridgraph.Point) (cell gridgraph.Point, dist float64, ok bool) {
	if ix.count == 0 {
		return gridgraph.Point{}, math.Inf(1), false
	}
	query := rtreego.Point{float64(p.Row), float64(p.Col)}
	dist = math.Inf(1)
	for _, item := range ix.tree.NearestNeighbors(neighbors, query) {
		entry, isEntry := item.(*obstacleEntry)
		if !isEntry || entry == nil {
			continue
		}
		dr, dc := float64(entry.cell.Row-p.Row), float64(entry.cell.Col-p.Col)
		d := math.Sqrt(dr*dr + dc*dc)
		if d < dist || (d == dist && less(entry.cell, cell)) {
			cell, dist, ok = entry.cell, d, true
		}
	}

	return cell, dist, ok
}

// Field writes the nearest-obstacle distance of every cell of g into dst
// (+Inf everywhere when there are no obstacles, 0 on obstacle cells).
func (ix *Index) Field(g *gridgraph.Grid, dst []float64) error {
	if len(dst) != g.Len() {
		return gridgraph.ErrDimensionMismatch
	}
	for i := range dst {
		if !g.IsFree(i) {
			dst[i] = 0
			continue
		}
		_, d, _ := ix.Nearest(g.Point(i))
		dst[i] = d
	}

	return nil
}

// Weights returns per-cell traversal costs for g: free cells cost
// 1 + 1/d where d is the distance to the nearest obstacle, obstacles cost
// +Inf. Without obstacles every free cell costs 1.
func Weights(g *gridgraph.Grid) ([]float64, error) {
	ix := NewIndex(g)
	w := make([]float64, g.Len())
	if err := ix.Field(g, w); err != nil {
		return nil, err
	}
	for i, d := range w {
		switch {
		case !g.IsFree(i):
			w[i] = math.Inf(1)
		case math.IsInf(d, 1):
			w[i] = 1
		default:
			w[i] = 1 + 1/d
		}
	}

	return w, nil
}

func less(a, b gridgraph.Point) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}
