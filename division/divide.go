package division

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/metrics"
)

const (
	// orphan marks a cell released by connectivity repair and not yet adopted.
	orphan = -2
	// minStep is the floor of the per-robot correction step.
	minStep = 1.0 / 64
	// coefMin and coefMax clamp the normalised coefficients.
	coefMin = 1e-3
	coefMax = 1e3
)

var (
	tracerOnce sync.Once
	tracer     trace.Tracer
)

func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		tracer = otel.Tracer("github.com/katalvlaran/darp/division")
	})

	return tracer
}

// Divide partitions the free cells of g among its robots.
//
// Robots are numbered by the row-major order of their RobotStart cells. Each
// iteration scales every robot's distance field by a per-robot coefficient,
// assigns each free cell to the cheapest robot, repairs territories that split
// into several components, and nudges the coefficients towards the target
// portions. The loop stops as soon as every robot owns its target share of
// the free cells to within max(p.Variation·free, p.Discretization) cells.
//
// Errors:
//   - ErrPrecondition wrapping ErrNilGrid, ErrNoRobots, ErrRobotCount,
//     ErrInvalidPortions, ErrInvalidParams, ErrOptionViolation or
//     gridgraph.ErrDisconnected: rejected before iterating, nil Division.
//   - ErrNotConverged: the cap was reached; the returned Division carries
//     diagnostics with Success == false.
//   - ErrRegionDisconnected: a final region failed the connectivity check.
//   - ctx.Err(): cancelled between iterations, nil Division.
//
// Complexity: O(I·R·N) time for I iterations, R robots and N cells;
// O(R·N) memory allocated once per call.
func Divide(ctx context.Context, g *gridgraph.Grid, p Params, opts ...Option) (*Division, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewNop()
	}

	ctx, span := getTracer().Start(ctx, "division.Divide",
		trace.WithAttributes(
			attribute.Int("params.max_iterations", p.MaxIterations),
			attribute.Float64("params.variation", p.Variation),
			attribute.Bool("params.importance", p.Importance),
		),
	)
	defer span.End()

	e, err := newEngine(ctx, g, p, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "precondition")
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("robots", e.robots),
		attribute.Int("free_cells", e.free),
	)

	began := time.Now()
	div, err := e.run(ctx)
	elapsed := time.Since(began)

	iterations := 0
	if div != nil {
		iterations = div.Iterations
	}
	cfg.Metrics.RecordDivision(e.robots, iterations, err == nil, elapsed.Seconds())
	span.SetAttributes(attribute.Int("iterations", iterations))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "division failed")
		fields := []zap.Field{zap.Error(err), zap.Int("iterations", iterations), zap.Duration("elapsed", elapsed)}
		if div != nil {
			fields = append(fields, zap.Float64("deviation", div.MaxDeviation), zap.Int("worst_robot", div.WorstRobot))
		}
		e.log.Warn("area division failed", fields...)
		return div, err
	}

	e.log.Info("area divided",
		zap.Int("robots", e.robots),
		zap.Int("iterations", div.Iterations),
		zap.Ints("cells", div.Counts()),
		zap.Float64("deviation", div.MaxDeviation),
		zap.Duration("elapsed", elapsed),
	)

	return div, nil
}

// engine holds the flat per-run state. Every slice is allocated in newEngine
// and reused across iterations.
type engine struct {
	params  Params
	opts    Options
	log     *zap.Logger
	metrics metrics.Collector

	rows, cols int
	n          int // rows×cols
	robots     int
	free       int
	freeMask   []bool
	starts     []int // start cell per robot
	startOwner []int // robot pinned to each cell, or -1
	targets    []float64
	tolerance  float64 // accepted per-robot error in cells

	base   [][]float64 // distance from each robot's start
	conn   [][]float64 // accumulated connectivity multipliers
	metric [][]float64 // coef·base·conn·noise of the current iteration
	noise  [][]float64 // nil when RandomLevel == 0
	rng    *rand.Rand

	coef, step, prevErr []float64
	achieved, diff      []float64
	counts              []int
	assign              []int

	flood           *gridgraph.Flood
	dMain, dFrag    []float64
	mainBuf, frag   []int
	orphans, claims []int
}

// newEngine validates every precondition and allocates the working set.
func newEngine(ctx context.Context, g *gridgraph.Grid, p Params, o Options) (*engine, error) {
	// 1. Validate the grid and robot count.
	if g == nil {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, ErrNilGrid)
	}
	robots := g.Robots()
	if robots == 0 {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, ErrNoRobots)
	}
	if p.Robots != 0 && p.Robots != robots {
		return nil, fmt.Errorf("%w: %w: params ask for %d, grid has %d start cells",
			ErrPrecondition, ErrRobotCount, p.Robots, robots)
	}
	if err := g.Feasible(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}

	// 2. Validate parameters and options.
	if err := validateParams(p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	if err := validateOptions(o); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	targets, err := normalizePortions(p.Portions, robots)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}

	// 3. Allocate.
	n := g.Len()
	e := &engine{
		params:     p,
		opts:       o,
		log:        o.Logger.With(zap.String("component", "division")),
		metrics:    o.Metrics,
		rows:       g.Rows,
		cols:       g.Cols,
		n:          n,
		robots:     robots,
		free:       g.FreeCount(),
		freeMask:   g.FreeMask(),
		starts:     g.StartIndices(),
		startOwner: make([]int, n),
		targets:    targets,
		tolerance:  math.Max(p.Variation*float64(g.FreeCount()), float64(p.Discretization)),
		base:       matrix(robots, n),
		conn:       matrix(robots, n),
		metric:     matrix(robots, n),
		coef:       make([]float64, robots),
		step:       make([]float64, robots),
		prevErr:    make([]float64, robots),
		achieved:   make([]float64, robots),
		diff:       make([]float64, robots),
		counts:     make([]int, robots),
		assign:     make([]int, n),
		flood:      gridgraph.NewFlood(g.Rows, g.Cols),
		dMain:      make([]float64, n),
		dFrag:      make([]float64, n),
		mainBuf:    make([]int, 0, n),
		frag:       make([]int, 0, n),
		orphans:    make([]int, 0, n),
		claims:     make([]int, 0, 2*n),
	}
	for i := range e.startOwner {
		e.startOwner[i] = -1
	}
	for r, s := range e.starts {
		e.startOwner[s] = r
		e.coef[r] = 1
		e.step[r] = 1
		for i := range e.conn[r] {
			e.conn[r][i] = 1
		}
	}
	if p.RandomLevel > 0 {
		e.noise = matrix(robots, n)
		e.rng = rand.New(rand.NewSource(o.Seed))
	}

	// 4. Base distance fields.
	if err := e.computeBase(ctx, g); err != nil {
		return nil, err
	}

	return e, nil
}

// run iterates until convergence, the iteration cap, or cancellation.
func (e *engine) run(ctx context.Context) (*Division, error) {
	var dev float64
	var worst int
	for it := 1; it <= e.params.MaxIterations; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 1. Metric: coef·base·conn·noise per robot.
		e.perturb()
		if err := e.computeMetric(ctx); err != nil {
			return nil, err
		}

		// 2. Tentative assignment and connectivity repair.
		e.assignCells()
		if err := e.repair(); err != nil {
			return nil, err
		}

		// 3. Convergence test.
		dev, worst = e.measure()
		if ce := e.log.Check(zap.DebugLevel, "division iteration"); ce != nil {
			ce.Write(
				zap.Int("iteration", it),
				zap.Float64("deviation", dev),
				zap.Int("worst_robot", worst),
				zap.Float64s("coefficients", e.coef),
			)
		}
		if e.converged() {
			return e.result(it, dev, worst)
		}

		// 4. Coefficient correction.
		e.update()
	}

	div := e.diagnostics(e.params.MaxIterations, dev, worst)
	return div, fmt.Errorf("%w: deviation %.4f (robot %d) after %d iterations",
		ErrNotConverged, dev, worst, e.params.MaxIterations)
}

// perturb draws the multiplicative noise of this iteration, robot by robot
// and cell by cell.
func (e *engine) perturb() {
	if e.noise == nil {
		return
	}
	rl := e.params.RandomLevel
	for r := 0; r < e.robots; r++ {
		nz := e.noise[r]
		for i := range nz {
			nz[i] = 1 + rl*(2*e.rng.Float64()-1)
		}
	}
}

// computeMetric fills e.metric, one goroutine per robot up to Workers.
func (e *engine) computeMetric(ctx context.Context) error {
	if e.opts.Workers == 1 || e.robots == 1 {
		for r := 0; r < e.robots; r++ {
			e.fillMetric(r)
		}
		return nil
	}
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(e.opts.Workers)
	for r := 0; r < e.robots; r++ {
		eg.Go(func() error {
			e.fillMetric(r)
			return nil
		})
	}

	return eg.Wait()
}

func (e *engine) fillMetric(r int) {
	m, b, c, k := e.metric[r], e.base[r], e.conn[r], e.coef[r]
	if e.noise == nil {
		for i := range m {
			m[i] = k * b[i] * c[i]
		}
		return
	}
	nz := e.noise[r]
	for i := range m {
		m[i] = k * b[i] * c[i] * nz[i]
	}
}

// assignCells gives every free cell to the robot with the smallest metric
// (lowest index on ties). Start cells always belong to their robot.
func (e *engine) assignCells() {
	for i := 0; i < e.n; i++ {
		if !e.freeMask[i] {
			e.assign[i] = Unassigned
			continue
		}
		if owner := e.startOwner[i]; owner >= 0 {
			e.assign[i] = owner
			continue
		}
		best, bestM := 0, e.metric[0][i]
		for r := 1; r < e.robots; r++ {
			if m := e.metric[r][i]; m < bestM {
				best, bestM = r, m
			}
		}
		e.assign[i] = best
	}
}

// measure counts cells per robot and returns the L∞ deviation from the
// targets and the robot that attains it.
func (e *engine) measure() (float64, int) {
	for r := range e.counts {
		e.counts[r] = 0
	}
	for i, owner := range e.assign {
		if e.freeMask[i] {
			e.counts[owner]++
		}
	}
	worst := 0
	for r := 0; r < e.robots; r++ {
		e.achieved[r] = float64(e.counts[r]) / float64(e.free)
		e.diff[r] = e.achieved[r] - e.targets[r]
		if math.Abs(e.diff[r]) > math.Abs(e.diff[worst]) {
			worst = r
		}
	}

	return floats.Norm(e.diff, math.Inf(1)), worst
}

// converged reports whether every robot's cell count is within the
// tolerance of its target count.
func (e *engine) converged() bool {
	free := float64(e.free)
	for r, c := range e.counts {
		if math.Abs(float64(c)-e.targets[r]*free) > e.tolerance+1e-9 {
			return false
		}
	}

	return true
}

// update moves each coefficient against its robot's error. Over-served
// robots get larger coefficients, which makes their cells more expensive.
// A robot's step halves whenever its error changes sign.
func (e *engine) update() {
	disc := float64(e.params.Discretization)
	for r := 0; r < e.robots; r++ {
		err := e.diff[r]
		if err*e.prevErr[r] < 0 {
			e.step[r] = math.Max(e.step[r]/2, minStep)
		}
		e.prevErr[r] = err
		e.coef[r] *= math.Exp(e.step[r] * err / disc)
	}
	mean := floats.Sum(e.coef) / float64(e.robots)
	floats.Scale(1/mean, e.coef)
	for r, c := range e.coef {
		e.coef[r] = math.Min(math.Max(c, coefMin), coefMax)
	}
}

// result packages a converged assignment after re-verifying every region.
// A region that fails the check yields diagnostics only.
func (e *engine) result(it int, dev float64, worst int) (*Division, error) {
	regions := make([]Region, e.robots)
	for r := 0; r < e.robots; r++ {
		mask := make([]bool, e.n)
		for i, owner := range e.assign {
			mask[i] = owner == r
		}
		lab, err := e.flood.Label(mask, gridgraph.Conn4)
		if err != nil {
			return nil, err
		}
		if lab.Count != 1 {
			return e.diagnostics(it, dev, worst),
				fmt.Errorf("%w: robot %d has %d components", ErrRegionDisconnected, r, lab.Count)
		}
		regions[r] = Region{
			Robot: r,
			Start: gridgraph.Point{Row: e.starts[r] / e.cols, Col: e.starts[r] % e.cols},
			Mask:  mask,
			Cells: e.counts[r],
		}
	}

	div := e.diagnostics(it, dev, worst)
	div.Success = true
	div.Assignment = slices.Clone(e.assign)
	div.Regions = regions

	return div, nil
}

// diagnostics builds the fields shared by successful and failed runs.
func (e *engine) diagnostics(it int, dev float64, worst int) *Division {
	return &Division{
		Rows:         e.rows,
		Cols:         e.cols,
		Iterations:   it,
		Targets:      slices.Clone(e.targets),
		Achieved:     slices.Clone(e.achieved),
		MaxDeviation: dev,
		WorstRobot:   worst,
		Tolerance:    e.tolerance,
	}
}

func matrix(rows, cols int) [][]float64 {
	backing := make([]float64, rows*cols)
	out := make([][]float64, rows)
	for r := range out {
		out[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}

	return out
}
