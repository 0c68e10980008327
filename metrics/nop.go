package metrics

// Nop implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when metrics are not wanted.
type Nop struct{}

// Compile-time assertion that Nop implements Collector.
var _ Collector = (*Nop)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	div, err := division.Divide(ctx, g, params, division.WithMetrics(metrics.NewNop()))
func NewNop() *Nop {
	return &Nop{}
}

// RecordDivision discards the division outcome.
func (n *Nop) RecordDivision(_ /* robots */, _ /* iterations */ int, _ /* converged */ bool, _ /* seconds */ float64) {
	// No-op
}

// RecordRepair discards the repair event.
func (n *Nop) RecordRepair(_ /* robot */, _ /* fragments */ int) {
	// No-op
}

// RecordPath discards the path measurement.
func (n *Nop) RecordPath(_ /* robot */, _ /* cells */ int, _ /* length */ float64) {
	// No-op
}

// RecordPlan discards the plan outcome.
func (n *Nop) RecordPlan(_ /* ok */ bool, _ /* seconds */ float64) {
	// No-op
}
