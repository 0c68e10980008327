package spanning

import (
	"sort"
)

// Kruskal computes a minimum spanning forest of an undirected weighted graph
// with vertices 0..n-1.
//
// Error Conditions:
//   - ErrNegativeVertices : n < 0.
//   - ErrVertexRange      : an edge endpoint outside [0, n).
//
// A disconnected input is not an error: the result has one tree per
// component and Forest.Spanning() reports false.
//
// Steps:
//  1. Validate n and every endpoint.
//  2. Copy edges, skipping self-loops (U == V).
//  3. Sort by ascending W with sort.SliceStable so equal weights keep input order.
//  4. Walk sorted edges; accept (u,v) when Find(u) != Find(v), then Union.
//  5. Stop once n-1 edges are accepted.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(n int, edges []Edge) (Forest, error) {
	// 1. Validate input.
	if err := validate(n, edges); err != nil {
		return Forest{}, err
	}
	forest := Forest{Vertices: n}
	if n <= 1 {
		return forest, nil
	}

	// 2. Collect candidate edges without self-loops.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		sorted = append(sorted, e)
	}

	// 3. Stable sort keeps tie-breaking deterministic.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].W < sorted[j].W
	})

	// 4. Accept edges joining different sets.
	dsu := NewDSU(n)
	forest.Edges = make([]Edge, 0, n-1)
	for _, e := range sorted {
		if !dsu.Union(e.U, e.V) {
			continue
		}
		forest.Edges = append(forest.Edges, e)
		forest.Weight += e.W
		// 5. A spanning tree is complete.
		if len(forest.Edges) == n-1 {
			break
		}
	}

	return forest, nil
}
