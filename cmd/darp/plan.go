package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/darp/config"
	"github.com/katalvlaran/darp/division"
	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/planner"
)

func newPlanCmd(a *app) *cobra.Command {
	var waypoints bool
	cmd := &cobra.Command{
		Use:   "plan <mission.yaml>",
		Short: "Divide the workspace and build a coverage circuit per robot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd, args[0], waypoints)
		},
	}
	cmd.Flags().BoolVar(&waypoints, "waypoints", false, "Print each circuit as a WKT line string in the mission frame")

	return cmd
}

func (a *app) runPlan(cmd *cobra.Command, path string, waypoints bool) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
	defer cancel()

	m, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	g, err := m.BuildGrid()
	if err != nil {
		return err
	}
	dopts, err := m.DivisionOptions()
	if err != nil {
		return err
	}
	copts, err := m.CoverageOptions()
	if err != nil {
		return err
	}

	pl, err := planner.New(
		planner.WithLogger(a.logger.With(zap.String("mission", m.Name))),
		planner.WithWorkers(m.Engine.Workers),
		planner.WithDivisionOptions(dopts...),
		planner.WithCoverageOptions(copts...),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mission %s: %d robots, %d free cells\n", m.Name, g.Robots(), g.FreeCount())

	plan, err := pl.Plan(ctx, g, m.Division)
	if plan != nil && plan.Division != nil {
		printDivision(out, plan, g, err)
	}
	if err != nil {
		if errors.Is(err, division.ErrNotConverged) {
			fmt.Fprintln(out, "hint: raise max_iterations or variation, or lower discretization")
		}
		return err
	}

	frame := m.PlanFrame()
	for _, rp := range plan.Paths {
		length, err := plan.Length(rp.Robot, frame)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "robot %d: start (%d,%d), %d cells, %d segments, length %.2f\n",
			rp.Robot, rp.Start.Row, rp.Start.Col, rp.Cells, rp.Path.Len(), length)
		if waypoints {
			ls, err := plan.Waypoints(rp.Robot, frame)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, wkt.MarshalString(ls))
		}
	}

	return nil
}

// printDivision writes the plan header and the assignment matrix, or the
// diagnostics of the division error.
func printDivision(out io.Writer, plan *planner.Plan, g *gridgraph.Grid, err error) {
	div := plan.Division
	if !div.Success {
		switch {
		case errors.Is(err, division.ErrRegionDisconnected):
			fmt.Fprintf(out, "plan %s: region check failed after %d iterations: %v\n",
				plan.ID, div.Iterations, err)
		default:
			fmt.Fprintf(out, "plan %s: not converged after %d iterations (robot %d off by %.4f)\n",
				plan.ID, div.Iterations, div.WorstRobot, div.MaxDeviation)
		}
		for r := range div.Targets {
			fmt.Fprintf(out, "robot %d: target %.4f achieved %.4f\n", r, div.Targets[r], div.Achieved[r])
		}
		return
	}

	fmt.Fprintf(out, "plan %s: converged in %d iterations (max deviation %.4f)\n",
		plan.ID, div.Iterations, div.MaxDeviation)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if owner := div.At(gridgraph.Point{Row: r, Col: c}); owner == division.Unassigned {
				fmt.Fprint(out, "  #")
			} else {
				fmt.Fprintf(out, " %2d", owner)
			}
		}
		fmt.Fprintln(out)
	}
}
