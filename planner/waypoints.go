package planner

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/darp/stc"
)

// Frame places the grid in a planar coordinate system. X grows with the
// column and Y with the row; Origin is the outer corner of cell (0,0) and
// CellSize the side of one grid cell.
type Frame struct {
	Origin   orb.Point
	CellSize float64
}

// UnitFrame has its origin at (0,0) and unit cells.
var UnitFrame = Frame{CellSize: 1}

// Centre returns the planar centre of fine cell f.
func (f Frame) Centre(p stc.FinePoint) orb.Point {
	half := f.CellSize / 2
	return orb.Point{
		f.Origin.X() + (float64(p.Col)+0.5)*half,
		f.Origin.Y() + (float64(p.Row)+0.5)*half,
	}
}

// Waypoints returns the robot's circuit as a line string of fine cell centres.
func (p *Plan) Waypoints(robot int, f Frame) (orb.LineString, error) {
	if f.CellSize <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidFrame, f.CellSize)
	}
	if robot < 0 || robot >= len(p.Paths) {
		return nil, fmt.Errorf("%w: %d of %d", ErrRobotRange, robot, len(p.Paths))
	}
	cells := p.Paths[robot].Path.Cells()
	ls := make(orb.LineString, len(cells))
	for i, c := range cells {
		ls[i] = f.Centre(c)
	}

	return ls, nil
}

// Length returns the planar length of the robot's circuit in f.
func (p *Plan) Length(robot int, f Frame) (float64, error) {
	ls, err := p.Waypoints(robot, f)
	if err != nil {
		return 0, err
	}

	return planar.Length(ls), nil
}

// Bound returns the bounding box of every robot's waypoints in f.
func (p *Plan) Bound(f Frame) (orb.Bound, error) {
	var mls orb.MultiLineString
	for r := range p.Paths {
		ls, err := p.Waypoints(r, f)
		if err != nil {
			return orb.Bound{}, err
		}
		mls = append(mls, ls)
	}
	if len(mls) == 0 {
		return orb.Bound{}, fmt.Errorf("%w: plan has no paths", ErrRobotRange)
	}

	return mls.Bound(), nil
}
