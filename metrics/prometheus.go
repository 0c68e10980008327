package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements Collector backed by Prometheus.
//
// Metrics are created and registered lazily on first use, so constructing a
// collector that is never exercised leaves the registerer untouched.
type Prometheus struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	divisions    *prometheus.CounterVec
	iterations   prometheus.Histogram
	divisionTime prometheus.Histogram
	repairs      *prometheus.CounterVec
	fragments    prometheus.Histogram
	pathCells    *prometheus.GaugeVec
	pathLength   *prometheus.GaugeVec
	plans        *prometheus.CounterVec
	planTime     prometheus.Histogram
}

// Compile-time assertion that Prometheus implements Collector.
var _ Collector = (*Prometheus)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace (defaults to "darp" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "darp"
	}

	return &Prometheus{reg: reg, namespace: namespace}
}

func (p *Prometheus) ensureRegistered() {
	p.once.Do(func() {
		p.divisions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "division",
			Name:      "runs_total",
			Help:      "Total area division runs by result (converged, not_converged).",
		}, []string{"result"})
		p.iterations = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "division",
			Name:      "iterations",
			Help:      "Iterations used per area division run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		})
		p.divisionTime = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "division",
			Name:      "duration_seconds",
			Help:      "Wall time of area division runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		})
		p.repairs = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "division",
			Name:      "repairs_total",
			Help:      "Territory repairs by robot.",
		}, []string{"robot"})
		p.fragments = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "division",
			Name:      "repair_fragments",
			Help:      "Number of components a territory split into before repair.",
			Buckets:   []float64{2, 3, 4, 6, 8, 16},
		})
		p.pathCells = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "coverage",
			Name:      "path_cells",
			Help:      "Fine cells visited by the latest coverage path per robot.",
		}, []string{"robot"})
		p.pathLength = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "coverage",
			Name:      "path_length",
			Help:      "Length of the latest coverage path per robot in grid cell widths.",
		}, []string{"robot"})
		p.plans = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plans_total",
			Help:      "Total planning runs by result (success, failure).",
		}, []string{"result"})
		p.planTime = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "duration_seconds",
			Help:      "Wall time of planning runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		})

		p.reg.MustRegister(p.divisions)
		p.reg.MustRegister(p.iterations)
		p.reg.MustRegister(p.divisionTime)
		p.reg.MustRegister(p.repairs)
		p.reg.MustRegister(p.fragments)
		p.reg.MustRegister(p.pathCells)
		p.reg.MustRegister(p.pathLength)
		p.reg.MustRegister(p.plans)
		p.reg.MustRegister(p.planTime)
	})
}

// RecordDivision records the outcome of one area division run.
func (p *Prometheus) RecordDivision(_ /* robots */, iterations int, converged bool, seconds float64) {
	p.ensureRegistered()
	result := "converged"
	if !converged {
		result = "not_converged"
	}
	p.divisions.WithLabelValues(result).Inc()
	p.iterations.Observe(float64(iterations))
	p.divisionTime.Observe(seconds)
}

// RecordRepair records one territory repair.
func (p *Prometheus) RecordRepair(robot, fragments int) {
	p.ensureRegistered()
	p.repairs.WithLabelValues(strconv.Itoa(robot)).Inc()
	p.fragments.Observe(float64(fragments))
}

// RecordPath records the size and length of a robot's coverage path.
func (p *Prometheus) RecordPath(robot, cells int, length float64) {
	p.ensureRegistered()
	label := strconv.Itoa(robot)
	p.pathCells.WithLabelValues(label).Set(float64(cells))
	p.pathLength.WithLabelValues(label).Set(length)
}

// RecordPlan records an end-to-end planning run.
func (p *Prometheus) RecordPlan(ok bool, seconds float64) {
	p.ensureRegistered()
	result := "success"
	if !ok {
		result = "failure"
	}
	p.plans.WithLabelValues(result).Inc()
	p.planTime.Observe(seconds)
}
