// Package dijkstra implements Dijkstra's shortest-path algorithm on grids
// whose cells carry non-negative traversal costs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all costs (O(N)) to detect negative values and fail fast.
//   - We treat any cell with cost +Inf as an impassable wall.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/darp/gridgraph"
)

// Dijkstra computes shortest distances from the source cell to every cell of a
// rows×cols grid with per-cell costs.
//
// Returns:
//
//   - dist: distance per cell (+Inf if unreachable, impassable or beyond MaxDistance).
//   - prev: predecessor per cell if ReturnPath (nil otherwise); -1 for the
//     source and for unreached cells.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. len(costs) == rows×cols (ErrDimensionMismatch).
//  3. Source within range (ErrSourceRange).
//  4. MaxDistance ≥ 0 (ErrBadMaxDistance); Connectivity valid (ErrBadConnectivity).
//  5. No negative or NaN cost (ErrNegativeCost).
//  6. Source passable (ErrSourceBlocked).
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Space: O(N)
func Dijkstra(costs []float64, rows, cols int, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == -1 {
		return nil, nil, ErrNoSource
	}
	n := rows * cols
	if rows <= 0 || cols <= 0 || len(costs) != n {
		return nil, nil, ErrDimensionMismatch
	}
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, ErrSourceRange
	}
	if cfg.MaxDistance < 0 {
		return nil, nil, ErrBadMaxDistance
	}
	if cfg.Connectivity != gridgraph.Conn4 && cfg.Connectivity != gridgraph.Conn8 {
		return nil, nil, ErrBadConnectivity
	}

	// 3) Pre-scan all costs. Fail fast with ErrNegativeCost.
	for i, c := range costs {
		if c < 0 || math.IsNaN(c) {
			return nil, nil, fmt.Errorf("%w: cell %d cost=%g", ErrNegativeCost, i, c)
		}
	}
	if math.IsInf(costs[cfg.Source], 1) {
		return nil, nil, ErrSourceBlocked
	}

	// 4) Prepare state and run.
	r := &runner{
		costs:   costs,
		rows:    rows,
		cols:    cols,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// PathTo reconstructs the cell sequence from source to target using a
// predecessor slice returned with WithReturnPath. It returns nil when target
// was not reached from source.
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}
	var path []int
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
		if len(path) > len(prev) {
			return nil
		}
	}
	if path[len(path)-1] != source {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	costs      []float64 // per-cell costs; read-only
	rows, cols int
	options    Options
	dist       []float64 // current best distance per cell
	prev       []int     // predecessor per cell, nil unless ReturnPath
	visited    []bool    // finalised cells
	pq         nodePQ    // lazy min-heap
}

// init sets every distance to +Inf and pushes the source with distance 0.
func (r *runner) init() {
	inf := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = inf
	}
	if r.prev != nil {
		for i := range r.prev {
			r.prev[i] = -1
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinished cell and relaxes its neighbours.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(nodeItem)

		// 2) Skip stale entries.
		if r.visited[item.idx] {
			continue
		}

		// 3) Stop beyond the cap.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalise and relax.
		r.visited[item.idx] = true
		r.relax(item.idx)
	}
}

// relax tries to improve every passable neighbour of u.
// Assumes r.dist[u] is finalised.
func (r *runner) relax(u int) {
	ur, uc := u/r.cols, u%r.cols
	for _, d := range gridgraph.NeighborOffsets(r.options.Connectivity) {
		vr, vc := ur+d[0], uc+d[1]
		if vr < 0 || vr >= r.rows || vc < 0 || vc >= r.cols {
			continue
		}
		v := vr*r.cols + vc
		if r.visited[v] || math.IsInf(r.costs[v], 1) {
			continue
		}

		step := (r.costs[u] + r.costs[v]) / 2
		if d[0] != 0 && d[1] != 0 {
			step *= math.Sqrt2
		}
		newDist := r.dist[u] + step
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a cell and its tentative distance.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist; stale entries are skipped on pop.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
