// Package dijkstra provides Dijkstra's shortest-path algorithm over a grid of
// non-negative per-cell costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source cell to every
//     reachable cell in O(N log N) time, where N = rows×cols.
//   - It relies on a min-heap (priority queue) to always expand the next-closest cell.
//   - Supports optional path reconstruction, distance caps and impassable cells.
//
// When to use:
//
//   - Cost-aware distance fields, e.g. distances that grow near obstacles so a
//     robot prefers open space when dividing a workspace.
//   - Any grid routing problem where unit-step BFS is not precise enough.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a predecessor slice; PathTo rebuilds a route.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - Cells with cost +Inf are walls.
//
// Step cost:
//
//	cost(u→v) = (costs[u] + costs[v]) / 2 × (1 or √2)
//
// which makes the distance symmetric: dist(a→b) == dist(b→a).
package dijkstra
