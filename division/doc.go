// Package division splits the free cells of a grid workspace among several
// robots so that every territory is one 4-connected region and the area
// fractions match caller-supplied portions.
//
// Algorithm (iterative weighted-distance partitioning):
//
//  1. Every robot r gets a base distance field from its start cell
//     (Euclidean, BFS geodesic, or obstacle-aware Dijkstra with Importance)
//     and a coefficient coef[r] = 1.
//  2. Each iteration computes metric[r][c] = coef[r]·base[r][c]·conn[r][c]·noise,
//     where noise ∈ [1−RandomLevel, 1+RandomLevel] breaks exact ties, and
//     assigns every free cell to the robot with the smallest metric. Start
//     cells are pinned to their robot.
//  3. A territory that split keeps the component holding its start cell.
//     The other fragments are released and adopted by neighbouring
//     territories, and conn[r] is skewed to discourage the split next time.
//  4. Achieved fraction = owned cells / free cells. The run succeeds once
//     every robot owns its target count to within
//     max(Variation·free, Discretization) cells.
//  5. Otherwise coef[r] *= exp(step[r]·(achieved − target)/Discretization);
//     step[r] halves (down to 1/64) whenever the error changes sign, and the
//     coefficients are renormalised to mean 1.
//
// Every per-cell pass works on flat slices allocated once per Divide call;
// per-robot metric passes run concurrently under an errgroup barrier.
//
// Errors:
//
//   - ErrPrecondition (wrapping the specific cause) before iterating.
//   - ErrNotConverged with diagnostics when MaxIterations is exhausted.
//   - ErrRegionDisconnected if the final connectivity check fails.
//
// Complexity: O(I·R·N) time, O(R·N) memory, for I iterations, R robots and
// N = rows×cols cells.
package division
