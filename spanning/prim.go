package spanning

import (
	"container/heap"
)

// Prim computes a minimum spanning tree by growing outwards from root using a
// min-heap of candidate edges. Accepted edges are oriented parent→child
// (U is already in the tree when the edge is taken).
//
// Error Conditions:
//   - ErrNegativeVertices : n < 0.
//   - ErrVertexRange      : an endpoint or root outside [0, n).
//   - ErrDisconnected     : some vertex is unreachable from root.
//
// Steps:
//  1. Validate input; n == 0 yields an empty forest.
//  2. Build a compact adjacency (CSR) over non-loop edges.
//  3. Mark root visited and push its incident edges.
//  4. Pop the cheapest edge; skip it if the far end is visited, otherwise
//     accept it and push the new vertex's edges.
//  5. Fewer than n-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(n int, edges []Edge, root int) (Forest, error) {
	// 1. Validate input.
	if err := validate(n, edges); err != nil {
		return Forest{}, err
	}
	if n == 0 {
		return Forest{}, nil
	}
	if root < 0 || root >= n {
		return Forest{}, ErrVertexRange
	}

	// 2. CSR adjacency: start[v]..start[v+1] indexes into nbr.
	start := make([]int, n+1)
	for _, e := range edges {
		if e.U != e.V {
			start[e.U+1]++
			start[e.V+1]++
		}
	}
	for v := 0; v < n; v++ {
		start[v+1] += start[v]
	}
	nbr := make([]Edge, start[n])
	fill := make([]int, n)
	copy(fill, start[:n])
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		nbr[fill[e.U]] = Edge{U: e.U, V: e.V, W: e.W}
		fill[e.U]++
		nbr[fill[e.V]] = Edge{U: e.V, V: e.U, W: e.W}
		fill[e.V]++
	}

	// 3. Seed the heap from root.
	forest := Forest{Vertices: n, Edges: make([]Edge, 0, n-1)}
	visited := make([]bool, n)
	pq := &edgePQ{}
	heap.Init(pq)
	visited[root] = true
	for _, e := range nbr[start[root]:start[root+1]] {
		heap.Push(pq, e)
	}

	// 4. Main loop.
	for pq.Len() > 0 && len(forest.Edges) < n-1 {
		e := heap.Pop(pq).(Edge)
		if visited[e.V] {
			continue
		}
		visited[e.V] = true
		forest.Edges = append(forest.Edges, e)
		forest.Weight += e.W
		for _, ne := range nbr[start[e.V]:start[e.V+1]] {
			if !visited[ne.V] {
				heap.Push(pq, ne)
			}
		}
	}

	// 5. Every vertex must be reached.
	if len(forest.Edges) < n-1 {
		return Forest{}, ErrDisconnected
	}

	return forest, nil
}

// edgePQ implements heap.Interface for a min-heap of Edge, ordered by W.
type edgePQ []Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by W for ascending order.
func (pq edgePQ) Less(i, j int) bool { return pq[i].W < pq[j].W }

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(Edge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
