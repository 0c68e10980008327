// Package main implements the darp command: it divides a grid workspace among
// robots and prints each robot's territory and coverage circuit.
//
// Usage:
//
//	darp plan examples/warehouse.yaml
//	darp check examples/warehouse.yaml
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the global flags and the logger shared by subcommands.
type app struct {
	verbose bool
	timeout time.Duration
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "darp",
		Short: "Multi-robot area division and coverage planning",
		Long: `darp splits the free cells of a grid workspace among several robots so that
every robot owns one connected territory of the requested size, then builds a
spanning-tree coverage circuit through each territory.

Workspaces are described by YAML mission files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", time.Minute, "Planning timeout")

	root.AddCommand(newPlanCmd(a))
	root.AddCommand(newCheckCmd(a))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
