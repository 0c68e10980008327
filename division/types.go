// Package division defines parameters, options, results and sentinel errors
// for the iterative multi-robot area division engine.
package division

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/metrics"
)

// Sentinel errors returned by Divide.
var (
	// ErrPrecondition wraps every input rejected before the first iteration.
	ErrPrecondition = errors.New("division: precondition violated")

	// ErrNilGrid indicates a nil *gridgraph.Grid.
	ErrNilGrid = errors.New("division: grid is nil")

	// ErrNoRobots indicates a grid without RobotStart cells.
	ErrNoRobots = errors.New("division: grid has no robot start cells")

	// ErrRobotCount indicates Params.Robots disagrees with the start cells.
	ErrRobotCount = errors.New("division: robot count does not match start cells")

	// ErrInvalidPortions indicates portions of the wrong length, negative
	// entries, or a sum other than 1.
	ErrInvalidPortions = errors.New("division: portions must be non-negative, one per robot, and sum to 1")

	// ErrInvalidParams indicates a numeric parameter outside its range.
	ErrInvalidParams = errors.New("division: parameter out of range")

	// ErrOptionViolation indicates an invalid functional option value.
	ErrOptionViolation = errors.New("division: invalid option")

	// ErrNotConverged indicates the iteration cap was reached before every
	// robot's share came within the variation threshold.
	ErrNotConverged = errors.New("division: did not converge within the iteration cap")

	// ErrRegionDisconnected indicates a final region that is not one
	// 4-connected component.
	ErrRegionDisconnected = errors.New("division: robot region is not 4-connected")
)

// Unassigned marks obstacle cells in Division.Assignment.
const Unassigned = -1

// PortionTolerance is the allowed |sum(portions) − 1|.
const PortionTolerance = 1e-6

// Params are the inputs of one division run. The zero value is not usable;
// start from DefaultParams.
type Params struct {
	// Robots is the expected robot count; 0 derives it from the grid.
	Robots int `yaml:"robots"`
	// Portions are the target area fractions per robot; empty means equal
	// shares. A robot with portion 0 still owns its start cell, so it ends
	// up with between one cell and the tolerance.
	Portions []float64 `yaml:"portions"`
	// MaxIterations caps the refinement loop.
	MaxIterations int `yaml:"max_iterations"`
	// Variation is the accepted |achieved − target| fraction. The run
	// converges when every robot is within max(Variation·free,
	// Discretization) cells of its target count.
	Variation float64 `yaml:"variation"`
	// RandomLevel bounds the multiplicative perturbation applied to every
	// metric value: each is scaled by a factor in [1−RandomLevel, 1+RandomLevel].
	RandomLevel float64 `yaml:"random_level"`
	// Discretization is the smallest accepted per-robot error in cells, so
	// that small workspaces are not held to a fraction finer than one cell.
	// It also divides every coefficient correction; larger values mean
	// finer, slower corrections.
	Discretization int `yaml:"discretization"`
	// Importance makes distances grow near obstacles.
	Importance bool `yaml:"importance"`
}

// DefaultParams returns the reference parameter set:
// MaxIterations=10000, Variation=0.01, RandomLevel=0.0001, Discretization=2.
func DefaultParams() Params {
	return Params{
		MaxIterations:  10000,
		Variation:      0.01,
		RandomLevel:    0.0001,
		Discretization: 2,
	}
}

// DistanceMode selects the base distance from a robot's start cell.
type DistanceMode int

const (
	// Euclidean uses straight-line distance, ignoring obstacles.
	Euclidean DistanceMode = iota
	// Geodesic uses BFS step counts through free space.
	Geodesic
)

// String returns "euclidean" or "geodesic".
func (m DistanceMode) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Geodesic:
		return "geodesic"
	default:
		return "unknown"
	}
}

// ParseDistanceMode maps "euclidean" / "geodesic" (or "") to a DistanceMode.
func ParseDistanceMode(s string) (DistanceMode, error) {
	switch s {
	case "", "euclidean":
		return Euclidean, nil
	case "geodesic":
		return Geodesic, nil
	default:
		return Euclidean, ErrOptionViolation
	}
}

// Options configures engine behavior that does not change the problem.
type Options struct {
	// Logger receives run summaries at Info and per-iteration detail at Debug.
	Logger *zap.Logger
	// Seed feeds the perturbation source.
	Seed int64
	// Workers bounds the goroutines used for per-robot passes.
	Workers int
	// Distance selects the base distance; ignored when Params.Importance is set.
	Distance DistanceMode
	// ConnectivityBias is the half-width of the connectivity multiplier range
	// [1−bias, 1+bias] applied to robots whose territory split.
	ConnectivityBias float64
	// Metrics receives run outcomes.
	Metrics metrics.Collector
}

// Option configures Options.
type Option func(*Options)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithSeed sets the perturbation seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers bounds per-robot parallelism; must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithDistance selects the base distance mode.
func WithDistance(m DistanceMode) Option {
	return func(o *Options) {
		o.Distance = m
	}
}

// WithConnectivityBias sets the connectivity multiplier half-width; must be in [0, 1).
func WithConnectivityBias(b float64) Option {
	return func(o *Options) {
		o.ConnectivityBias = b
	}
}

// WithMetrics sets the metrics collector. A nil collector disables metrics.
func WithMetrics(m metrics.Collector) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// DefaultOptions returns:
//   - Logger:           zap.NewNop()
//   - Seed:             1
//   - Workers:          4
//   - Distance:         Euclidean
//   - ConnectivityBias: 0.01
//   - Metrics:          metrics.NewNop()
func DefaultOptions() Options {
	return Options{
		Logger:           zap.NewNop(),
		Seed:             1,
		Workers:          4,
		Distance:         Euclidean,
		ConnectivityBias: 0.01,
		Metrics:          metrics.NewNop(),
	}
}

// Region is one robot's territory.
type Region struct {
	Robot int
	Start gridgraph.Point
	// Mask is true for every cell owned by Robot (row-major, Rows×Cols).
	Mask  []bool
	Cells int
}

// Division is the outcome of Divide.
//
// On success Assignment holds the owning robot of every free cell and
// Unassigned for obstacles, and Regions holds one connected region per robot.
// On failure (non-convergence or a failed region check) Success is false,
// Assignment and Regions are nil, and the remaining fields describe the last
// iteration.
type Division struct {
	Rows, Cols int
	Success    bool
	Iterations int
	Assignment []int
	Regions    []Region
	// Targets and Achieved are area fractions per robot.
	Targets  []float64
	Achieved []float64
	// MaxDeviation is max |Achieved − Targets| and WorstRobot its argmax.
	MaxDeviation float64
	WorstRobot   int
	// Tolerance is the accepted per-robot error in cells.
	Tolerance float64
}

// At returns the robot owning p, or Unassigned.
func (d *Division) At(p gridgraph.Point) int {
	if d.Assignment == nil || p.Row < 0 || p.Row >= d.Rows || p.Col < 0 || p.Col >= d.Cols {
		return Unassigned
	}

	return d.Assignment[p.Row*d.Cols+p.Col]
}

// Counts returns the number of cells owned by each robot.
func (d *Division) Counts() []int {
	out := make([]int, len(d.Regions))
	for i, r := range d.Regions {
		out[i] = r.Cells
	}

	return out
}
