package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/darp/config"
	"github.com/katalvlaran/darp/gridgraph"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <mission.yaml>",
		Short: "Validate a mission and check that its free space is connected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args[0])
		},
	}
}

func (a *app) runCheck(cmd *cobra.Command, path string) error {
	m, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	g, err := m.BuildGrid()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = g.Feasible()
	if err == nil {
		fmt.Fprintf(out, "%s: ok, %d robots, %d free cells\n", m.Name, g.Robots(), g.FreeCount())
		return nil
	}
	if !errors.Is(err, gridgraph.ErrDisconnected) {
		return err
	}

	comps := g.ConnectedComponents(gridgraph.Conn4)
	a.logger.Debug("workspace disconnected", zap.String("mission", m.Name), zap.Int("components", len(comps)))
	fmt.Fprintf(out, "%s: free space splits into %d components\n", m.Name, len(comps))
	if bridge, cost, berr := g.Bridge(0, 1); berr == nil {
		fmt.Fprintf(out, "hint: clear %d obstacle(s) along", cost)
		for _, idx := range bridge {
			p := g.Point(idx)
			fmt.Fprintf(out, " (%d,%d)", p.Row, p.Col)
		}
		fmt.Fprintln(out)
	}

	return err
}
