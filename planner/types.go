// Package planner runs the full coverage pipeline: area division followed by
// one coverage circuit per robot.
package planner

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/darp/division"
	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/metrics"
	"github.com/katalvlaran/darp/stc"
)

// ErrInvalidWorkers indicates a worker bound below 1.
var ErrInvalidWorkers = errors.New("planner: workers must be at least 1")

// ErrRobotRange indicates a robot index outside the plan.
var ErrRobotRange = errors.New("planner: robot index out of range")

// ErrInvalidFrame indicates a non-positive cell size.
var ErrInvalidFrame = errors.New("planner: cell size must be positive")

// Options configures a Planner.
type Options struct {
	Logger   *zap.Logger
	Metrics  metrics.Collector
	Workers  int               // concurrent path generations
	Division []division.Option // applied after Logger and Metrics
	Coverage []stc.Option
}

// Option configures Options.
type Option func(*Options)

// WithLogger sets the logger shared by the planner and the division engine.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics sets the collector shared by the planner and the division engine.
func WithMetrics(m metrics.Collector) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithWorkers bounds concurrent path generation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithDivisionOptions appends options passed to division.Divide.
func WithDivisionOptions(opts ...division.Option) Option {
	return func(o *Options) {
		o.Division = append(o.Division, opts...)
	}
}

// WithCoverageOptions appends options passed to stc.Generate.
func WithCoverageOptions(opts ...stc.Option) Option {
	return func(o *Options) {
		o.Coverage = append(o.Coverage, opts...)
	}
}

// DefaultOptions returns a no-op logger and collector and 4 workers.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Metrics: metrics.NewNop(),
		Workers: 4,
	}
}

// RobotPath is one robot's coverage circuit.
type RobotPath struct {
	Robot int
	Start gridgraph.Point
	Cells int // coarse cells covered
	Path  stc.Path
}

// Plan is the outcome of Planner.Plan.
type Plan struct {
	ID         uuid.UUID
	Rows, Cols int
	Division   *division.Division
	Paths      []RobotPath
}
