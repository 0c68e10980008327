package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/darp/division"
	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/metrics"
	"github.com/katalvlaran/darp/stc"
)

var (
	tracerOnce sync.Once
	tracer     trace.Tracer
)

func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		tracer = otel.Tracer("github.com/katalvlaran/darp/planner")
	})

	return tracer
}

// Planner divides workspaces and generates coverage circuits.
// A Planner is safe for concurrent use.
type Planner struct {
	opts Options
	log  *zap.Logger
}

// New returns a Planner configured by opts.
func New(opts ...Option) (*Planner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, cfg.Workers)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewNop()
	}

	return &Planner{opts: cfg, log: cfg.Logger.With(zap.String("component", "planner"))}, nil
}

// Plan divides g among its robots with params and generates each robot's
// coverage circuit concurrently.
//
// When division fails after validation (for example ErrNotConverged) the
// returned Plan carries the division diagnostics and no paths. Path failures
// are wrapped with the robot index; the first one cancels the others.
func (p *Planner) Plan(ctx context.Context, g *gridgraph.Grid, params division.Params) (*Plan, error) {
	id := uuid.New()
	log := p.log.With(zap.String("plan_id", id.String()))
	ctx, span := getTracer().Start(ctx, "planner.Plan",
		trace.WithAttributes(attribute.String("plan.id", id.String())))
	defer span.End()

	began := time.Now()
	plan, err := p.plan(ctx, g, params, id)
	elapsed := time.Since(began)
	p.opts.Metrics.RecordPlan(err == nil, elapsed.Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "plan failed")
		log.Warn("planning failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return plan, err
	}

	span.SetAttributes(attribute.Int("robots", len(plan.Paths)))
	log.Info("plan ready",
		zap.Int("robots", len(plan.Paths)),
		zap.Int("iterations", plan.Division.Iterations),
		zap.Duration("elapsed", elapsed),
	)

	return plan, nil
}

func (p *Planner) plan(ctx context.Context, g *gridgraph.Grid, params division.Params, id uuid.UUID) (*Plan, error) {
	divOpts := append([]division.Option{
		division.WithLogger(p.opts.Logger),
		division.WithMetrics(p.opts.Metrics),
	}, p.opts.Division...)

	div, err := division.Divide(ctx, g, params, divOpts...)
	if err != nil {
		if div == nil {
			return nil, err
		}
		return &Plan{ID: id, Rows: div.Rows, Cols: div.Cols, Division: div}, err
	}

	paths := make([]RobotPath, len(div.Regions))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.opts.Workers)
	for i := range div.Regions {
		reg := &div.Regions[i]
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := stc.Generate(reg.Mask, div.Rows, div.Cols, reg.Start, p.opts.Coverage...)
			if err != nil {
				return fmt.Errorf("planner: robot %d: %w", reg.Robot, err)
			}
			paths[i] = RobotPath{Robot: reg.Robot, Start: reg.Start, Cells: reg.Cells, Path: path}
			p.opts.Metrics.RecordPath(reg.Robot, path.Len()+1, float64(path.Len())/2)
			if ce := p.log.Check(zap.DebugLevel, "coverage path generated"); ce != nil {
				ce.Write(zap.Int("robot", reg.Robot), zap.Int("cells", reg.Cells), zap.Int("segments", path.Len()))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return &Plan{ID: id, Rows: div.Rows, Cols: div.Cols, Division: div}, err
	}

	return &Plan{ID: id, Rows: div.Rows, Cols: div.Cols, Division: div, Paths: paths}, nil
}
