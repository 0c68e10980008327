package gridgraph

import (
	"container/list"
)

// Bridge finds a minimum set of Obstacle cells whose removal would join
// component srcComp to component dstComp, as numbered by
// ConnectedComponents(Conn4). It is a diagnostic for workspaces rejected by
// Feasible: the returned cost is the number of obstacles to clear.
// Returns the sequence of cell indices (row-major) forming the bridge,
// including the start and end free cells, and the total cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into a free cell     → cost 0
//     • Moving into an obstacle     → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(R·C) time and memory.
func (g *Grid) Bridge(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := g.ConnectedComponents(Conn4)
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make([]bool, len(g.cells))
	for _, i := range comps[dstComp] {
		dstSet[i] = true
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, len(g.cells))
	prev := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	offsets := NeighborOffsets(Conn4)
	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if dstSet[u] {
			target = u
			break
		}
		up := g.Point(u)
		for _, d := range offsets {
			p := Point{Row: up.Row + d[0], Col: up.Col + d[1]}
			if !g.InBounds(p) {
				continue
			}
			v := g.Index(p)
			step := 0
			if g.cells[v] == Obstacle {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
