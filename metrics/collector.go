// Package metrics defines the instrumentation surface of the planner and two
// implementations: a no-op collector and a Prometheus-backed collector.
package metrics

// Collector receives planning measurements. Implementations must be safe for
// concurrent use; paths for different robots are recorded from separate
// goroutines.
type Collector interface {
	// RecordDivision records the outcome of one area division run.
	RecordDivision(robots, iterations int, converged bool, seconds float64)
	// RecordRepair records that a robot's territory was split into fragments
	// and had to be repaired during one iteration.
	RecordRepair(robot, fragments int)
	// RecordPath records a generated coverage path: fine cells visited and
	// length in grid cell widths.
	RecordPath(robot, cells int, length float64)
	// RecordPlan records an end-to-end planning run.
	RecordPlan(ok bool, seconds float64)
}
