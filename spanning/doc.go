// Package spanning computes minimum spanning trees and forests over graphs
// whose vertices are dense indices 0..n-1, which is how grid cells are
// numbered when a region is turned into a backbone graph.
//
// Algorithms Provided
//
//   - Kruskal(n, edges) (Forest, error)
//
//   - Strategy: stable-sort edges by weight, then accept every edge whose
//     endpoints lie in different DSU sets. Stop after n−1 acceptances.
//
//   - Determinism: ties keep input order, so callers that emit edges in
//     row-major order get a reproducible tree.
//
//   - Disconnected input yields a forest; compare len(Edges) with
//     Vertices−1 (or call Forest.Spanning) to detect it.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(n, edges, root) (Forest, error)
//
//   - Strategy: grow one tree from root with a min-heap of frontier edges.
//     Accepted edges are oriented parent→child.
//
//   - Fails with ErrDisconnected when root cannot reach every vertex.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - DSU: flat-array disjoint sets with path halving and union by rank,
//     usable on its own (Find, Union, Connected, Sets).
//
// Error Conditions
//
//   - ErrNegativeVertices: n < 0.
//   - ErrVertexRange: an endpoint (or Prim root) outside [0, n).
//   - ErrDisconnected: Prim only.
//   - ErrUnknownMethod: Build with an unrecognised Method.
//
// For examples of usage, see example_test.go in this package.
package spanning
