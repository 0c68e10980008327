// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted grids.
//
// Each cell carries a non-negative traversal cost; stepping between two
// neighbouring cells costs the mean of their costs times the step length
// (1 orthogonally, √2 diagonally under Conn8). A cost of +Inf marks a cell
// as impassable.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = rows×cols
//	   • Each cell is finalised at most once.
//	   • Each relaxation may push into the priority queue (up to d·N pushes).
//	– Space: O(N)
//	   • dist and prev slices plus the lazy heap.
//
// Options:
//
//	– Source:           index of the starting cell (required, must be passable).
//	– Connectivity:     Conn4 (default) or Conn8.
//	– ReturnPath:       if true, return the predecessor slice.
//	– MaxDistance:      optional cap on distances to explore; cells beyond stay +Inf.
//
// Errors (sentinel):
//
//	– ErrNoSource          if no Source option was given.
//	– ErrSourceRange       if Source lies outside the grid.
//	– ErrSourceBlocked     if the source cell is impassable.
//	– ErrDimensionMismatch if len(costs) != rows×cols.
//	– ErrNegativeCost      if a cell cost is negative or NaN.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrBadConnectivity   if Connectivity is neither Conn4 nor Conn8.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(costs, rows, cols,
//	    dijkstra.Source(0),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist[target], dijkstra.PathTo(prev, 0, target))
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/darp/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source cell was provided.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrSourceRange indicates that the source index lies outside the grid.
	ErrSourceRange = errors.New("dijkstra: source cell out of range")

	// ErrSourceBlocked indicates that the source cell has infinite cost.
	ErrSourceBlocked = errors.New("dijkstra: source cell is impassable")

	// ErrDimensionMismatch indicates len(costs) != rows×cols.
	ErrDimensionMismatch = errors.New("dijkstra: cost slice does not match grid dimensions")

	// ErrNegativeCost indicates that a negative or NaN cell cost was detected.
	ErrNegativeCost = errors.New("dijkstra: negative cell cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadConnectivity indicates an unsupported connectivity value.
	ErrBadConnectivity = errors.New("dijkstra: connectivity must be Conn4 or Conn8")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source       – starting cell index (row-major); -1 means unset.
// Connectivity – neighbourhood used for steps.
// ReturnPath   – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance  – cells whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source       int
	Connectivity gridgraph.Connectivity
	ReturnPath   bool
	MaxDistance  float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell index. Must be called.
func Source(idx int) Option {
	return func(o *Options) {
		o.Source = idx
	}
}

// WithConnectivity selects Conn4 (default) or Conn8 steps.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = conn
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Negative values are
// reported as ErrBadMaxDistance by Dijkstra.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:       -1 (unset; validated in Dijkstra).
//   - Connectivity: Conn4.
//   - ReturnPath:   false.
//   - MaxDistance:  +Inf.
func DefaultOptions() Options {
	return Options{
		Source:       -1,
		Connectivity: gridgraph.Conn4,
		ReturnPath:   false,
		MaxDistance:  math.Inf(1),
	}
}
