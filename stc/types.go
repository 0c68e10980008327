// Package stc defines options, result types and sentinel errors for
// spanning-tree coverage paths over a single robot region.
package stc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/spanning"
)

// ErrDimensionMismatch indicates a mask whose length is not rows×cols.
var ErrDimensionMismatch = errors.New("stc: mask length does not match dimensions")

// ErrStartOutsideRegion indicates a start cell out of bounds or not in the mask.
var ErrStartOutsideRegion = errors.New("stc: start cell is outside the region")

// ErrRegionDisconnected indicates a mask that is not one 4-connected component.
var ErrRegionDisconnected = errors.New("stc: region is not 4-connected")

// ErrUnsupportedConnectivity indicates a connectivity other than Conn4.
// Diagonal moves would let the circuit cut corners of the backbone.
var ErrUnsupportedConnectivity = errors.New("stc: only 4-connectivity is supported")

// ErrUnknownWeighting indicates a Weighting outside the defined constants.
var ErrUnknownWeighting = errors.New("stc: unknown edge weighting")

// ErrIncompleteCircuit indicates a walk that stopped before visiting every
// fine cell. It signals a broken backbone and is never expected.
var ErrIncompleteCircuit = errors.New("stc: circuit does not cover the region")

// ErrInvalidPath is returned by Path.Validate.
var ErrInvalidPath = errors.New("stc: invalid coverage path")

// Weighting selects the backbone edge weights and with them the dominant
// sweep direction of the circuit.
type Weighting int

const (
	// WeightUniform gives every backbone edge weight 1.
	WeightUniform Weighting = iota
	// WeightHorizontal prefers left-right backbone edges, producing long
	// horizontal sweeps.
	WeightHorizontal
	// WeightVertical prefers up-down backbone edges.
	WeightVertical
)

// String returns "uniform", "horizontal" or "vertical".
func (w Weighting) String() string {
	switch w {
	case WeightUniform:
		return "uniform"
	case WeightHorizontal:
		return "horizontal"
	case WeightVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseWeighting maps a Weighting name (or "") to its constant.
func ParseWeighting(s string) (Weighting, error) {
	switch s {
	case "", "uniform":
		return WeightUniform, nil
	case "horizontal":
		return WeightHorizontal, nil
	case "vertical":
		return WeightVertical, nil
	default:
		return WeightUniform, fmt.Errorf("%w: %q", ErrUnknownWeighting, s)
	}
}

// edgeWeights returns the weight of a horizontal and a vertical backbone edge.
func (w Weighting) edgeWeights() (horizontal, vertical float64, err error) {
	switch w {
	case WeightUniform:
		return 1, 1, nil
	case WeightHorizontal:
		return 1, 2, nil
	case WeightVertical:
		return 2, 1, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownWeighting, int(w))
	}
}

// Options configures Generate.
//
//	Connectivity: must be gridgraph.Conn4.
//	Method:       spanning.MethodKruskal or spanning.MethodPrim (rooted at the start cell).
//	Weighting:    backbone edge weights.
type Options struct {
	Connectivity gridgraph.Connectivity
	Method       spanning.Method
	Weighting    Weighting
}

// Option configures Options.
type Option func(*Options)

// WithConnectivity sets the neighbourhood; anything but Conn4 is rejected by Generate.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = c
	}
}

// WithMethod selects the spanning tree algorithm.
func WithMethod(m spanning.Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithWeighting selects the backbone edge weights.
func WithWeighting(w Weighting) Option {
	return func(o *Options) {
		o.Weighting = w
	}
}

// DefaultOptions returns Conn4, Kruskal and uniform weights.
func DefaultOptions() Options {
	return Options{
		Connectivity: gridgraph.Conn4,
		Method:       spanning.MethodKruskal,
		Weighting:    WeightUniform,
	}
}

// FinePoint addresses a cell of the doubled-resolution grid:
// 0 ≤ Row < 2·rows, 0 ≤ Col < 2·cols.
type FinePoint struct {
	Row, Col int
}

// Segment is one unit move between 4-adjacent fine cells.
type Segment struct {
	From, To FinePoint
}

// Path is a coverage circuit in fine coordinates. Consecutive segments share
// an endpoint and every fine cell of the region is visited exactly once.
type Path struct {
	Segments []Segment
}

// Fine returns the four sub-cells of coarse cell p in clockwise order
// starting at the top-left one.
func Fine(p gridgraph.Point) [4]FinePoint {
	r, c := 2*p.Row, 2*p.Col
	return [4]FinePoint{{r, c}, {r, c + 1}, {r + 1, c + 1}, {r + 1, c}}
}

// Coarse returns the coarse cell containing f.
func Coarse(f FinePoint) gridgraph.Point {
	return gridgraph.Point{Row: f.Row / 2, Col: f.Col / 2}
}
