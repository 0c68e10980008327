package planner_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/darp/division"
	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/metrics"
	"github.com/katalvlaran/darp/planner"
	"github.com/katalvlaran/darp/stc"
)

func sevenBySeven(t *testing.T) *gridgraph.Grid {
	t.Helper()
	cells := make([][]int, 7)
	for r := range cells {
		cells[r] = make([]int, 7)
	}
	cells[0][0] = gridgraph.RobotStart
	cells[2][2] = gridgraph.RobotStart
	g, err := gridgraph.From2D(cells)
	require.NoError(t, err)

	return g
}

func convergingParams() division.Params {
	p := division.DefaultParams()
	p.RandomLevel = 0

	return p
}

func TestPlan_EndToEnd(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := sevenBySeven(t)
	pl, err := planner.New(planner.WithWorkers(2))
	require.NoError(t, err)

	plan, err := pl.Plan(context.Background(), g, convergingParams())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, plan.ID)
	assert.Equal(t, 7, plan.Rows)
	assert.Equal(t, 7, plan.Cols)
	require.True(t, plan.Division.Success)
	require.Len(t, plan.Paths, 2)

	total := 0
	for r, rp := range plan.Paths {
		reg := plan.Division.Regions[r]
		assert.Equal(t, r, rp.Robot)
		assert.Equal(t, reg.Start, rp.Start)
		assert.InDelta(t, 24.5, float64(rp.Cells), plan.Division.Tolerance)
		assert.Equal(t, 4*rp.Cells-1, rp.Path.Len())
		require.NoError(t, rp.Path.Validate(reg.Mask, plan.Rows, plan.Cols))
		assert.Equal(t, stc.Fine(reg.Start)[0], rp.Path.Cells()[0])
		total += rp.Cells
	}
	assert.Equal(t, 49, total)
}

func TestPlan_CoverageOptions(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := sevenBySeven(t)
	pl, err := planner.New(planner.WithCoverageOptions(stc.WithWeighting(stc.WeightVertical)))
	require.NoError(t, err)

	plan, err := pl.Plan(context.Background(), g, convergingParams())
	require.NoError(t, err)
	for r, rp := range plan.Paths {
		require.NoError(t, rp.Path.Validate(plan.Division.Regions[r].Mask, plan.Rows, plan.Cols))
	}
}

func TestPlan_CoverageFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := sevenBySeven(t)
	pl, err := planner.New(planner.WithCoverageOptions(stc.WithConnectivity(gridgraph.Conn8)))
	require.NoError(t, err)

	plan, err := pl.Plan(context.Background(), g, convergingParams())
	require.ErrorIs(t, err, stc.ErrUnsupportedConnectivity)
	assert.ErrorContains(t, err, "planner: robot")
	require.NotNil(t, plan)
	assert.True(t, plan.Division.Success)
	assert.Nil(t, plan.Paths)
}

func TestPlan_NotConverged(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := convergingParams()
	p.MaxIterations = 1
	pl, err := planner.New()
	require.NoError(t, err)

	plan, err := pl.Plan(context.Background(), sevenBySeven(t), p)
	require.ErrorIs(t, err, division.ErrNotConverged)
	require.NotNil(t, plan)
	assert.False(t, plan.Division.Success)
	assert.Equal(t, 1, plan.Division.Iterations)
	assert.Empty(t, plan.Paths)
}

func TestPlan_Precondition(t *testing.T) {
	g, err := gridgraph.From2D([][]int{{0, 1, 0}})
	require.NoError(t, err)
	pl, err := planner.New()
	require.NoError(t, err)

	plan, err := pl.Plan(context.Background(), g, division.DefaultParams())
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, division.ErrPrecondition)
	assert.ErrorIs(t, err, division.ErrNoRobots)
}

func TestPlan_DivisionOptionsOverride(t *testing.T) {
	g := sevenBySeven(t)
	pl, err := planner.New(planner.WithDivisionOptions(division.WithWorkers(0)))
	require.NoError(t, err)

	_, err = pl.Plan(context.Background(), g, convergingParams())
	assert.ErrorIs(t, err, division.ErrOptionViolation)
}

func TestNew_InvalidWorkers(t *testing.T) {
	pl, err := planner.New(planner.WithWorkers(0))
	assert.Nil(t, pl)
	assert.ErrorIs(t, err, planner.ErrInvalidWorkers)
}

func TestPlan_LogsAndMetrics(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	reg := prometheus.NewRegistry()
	pl, err := planner.New(
		planner.WithLogger(zap.New(core)),
		planner.WithMetrics(metrics.NewPrometheus(reg, "darp")),
	)
	require.NoError(t, err)

	plan, err := pl.Plan(context.Background(), sevenBySeven(t), convergingParams())
	require.NoError(t, err)

	ready := logs.FilterMessage("plan ready").All()
	require.Len(t, ready, 1)
	assert.Equal(t, plan.ID.String(), ready[0].ContextMap()["plan_id"])
	assert.Equal(t, "planner", ready[0].ContextMap()["component"])
	assert.Equal(t, 1, logs.FilterMessage("area divided").Len())

	for name, want := range map[string]int{
		"darp_planner_plans_total":      1,
		"darp_division_runs_total":      1,
		"darp_coverage_path_cells":      2,
		"darp_coverage_path_length":     2,
		"darp_planner_duration_seconds": 1,
	} {
		got, err := testutil.GatherAndCount(reg, name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestPlan_Waypoints(t *testing.T) {
	g, err := gridgraph.From2D([][]int{{2, 0}})
	require.NoError(t, err)
	pl, err := planner.New()
	require.NoError(t, err)
	plan, err := pl.Plan(context.Background(), g, division.DefaultParams())
	require.NoError(t, err)

	frame := planner.Frame{Origin: orb.Point{10, 20}, CellSize: 2}
	ls, err := plan.Waypoints(0, frame)
	require.NoError(t, err)
	require.Len(t, ls, 8)
	assert.Equal(t, orb.Point{10.5, 20.5}, ls[0])
	assert.Equal(t, orb.Point{10.5, 21.5}, ls[1])
	assert.Equal(t, orb.Point{11.5, 20.5}, ls[7])

	length, err := plan.Length(0, frame)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, length, 1e-9)

	unit, err := plan.Length(0, planner.UnitFrame)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, unit, 1e-9)

	bound, err := plan.Bound(frame)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{10.5, 20.5}, bound.Min)
	assert.Equal(t, orb.Point{13.5, 21.5}, bound.Max)

	_, err = plan.Waypoints(1, frame)
	assert.ErrorIs(t, err, planner.ErrRobotRange)
	_, err = plan.Waypoints(0, planner.Frame{})
	assert.ErrorIs(t, err, planner.ErrInvalidFrame)
	_, err = (&planner.Plan{}).Bound(frame)
	assert.ErrorIs(t, err, planner.ErrRobotRange)
}
