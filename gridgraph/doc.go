// Package gridgraph treats a 2D workspace of cell codes as an implicit graph,
// enabling feasibility checks, component labeling and distance fields.
//
// What:
//
//   - Grid wraps a rectangular [][]int of codes Free (0), Obstacle (1) and
//     RobotStart (2). Robots are numbered by the row-major order of their
//     start cells.
//   - Label and Flood assign component numbers to masked cells under Conn4
//     or Conn8; Flood reuses its buffers so iterative callers do not allocate.
//   - Flood.Distances computes multi-source BFS step fields; EuclideanField
//     computes straight-line fields.
//   - Bridge reports the cheapest obstacle removals that would join two
//     components of a disconnected workspace.
//
// Why:
//
//   - Area division needs "is this region one piece?" answered every iteration.
//   - Coverage path generation requires a single 4-connected region.
//
// Complexity:
//
//   - Label, ConnectedComponents: O(R×C×d), Memory: O(R×C)    (d = 4 or 8).
//   - Distances, EuclideanField:  O(R×C×d), no allocations after warm-up.
//   - Bridge:                     O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCode: a value outside {0,1,2}.
//   - ErrDimensionMismatch: mask or buffer length differs from R×C.
//   - ErrBadConnectivity: connectivity other than Conn4/Conn8.
//   - ErrDisconnected: free space is not a single 4-connected component.
//   - ErrComponentIndex, ErrNoPath: Bridge input errors.
package gridgraph
