// Package darp plans coverage for teams of robots working on a shared grid.
//
// The workspace is a rectangular grid of free cells, obstacles and one start
// cell per robot. Planning runs in two stages:
//
//   - Division: every free cell is handed to exactly one robot so that each
//     robot's territory is a single 4-connected region whose size matches a
//     requested share of the free area.
//   - Coverage: each territory is turned into a closed circuit over a
//     doubled-resolution grid that follows a spanning tree of the territory
//     and visits every sub-cell once.
//
// Packages, in dependency order:
//
//	gridgraph/  grid model, connected components, BFS and Euclidean distance fields, bridging hints
//	dijkstra/   cost-weighted shortest paths on grids
//	proximity/  nearest-obstacle queries (R-tree) and obstacle-aware cell weights
//	spanning/   Kruskal and Prim minimum spanning trees over index graphs
//	metrics/    instrumentation surface with no-op and Prometheus collectors
//	division/   iterative area division engine
//	stc/        spanning-tree coverage circuits
//	planner/    end-to-end pipeline with concurrent path generation and waypoint export
//	config/     YAML mission files
//	cmd/darp/   command line front end
//
// Quick example:
//
//	g, _ := gridgraph.From2D([][]int{
//		{2, 0, 0, 0},
//		{0, 1, 1, 0},
//		{0, 0, 0, 2},
//	})
//	pl, _ := planner.New()
//	plan, err := pl.Plan(ctx, g, division.DefaultParams())
//
//	go install github.com/katalvlaran/darp/cmd/darp@latest
package darp
