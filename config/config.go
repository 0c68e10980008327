// Package config loads mission files: a grid workspace together with the
// division, coverage and output settings used to plan it.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/darp/division"
	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/planner"
	"github.com/katalvlaran/darp/spanning"
	"github.com/katalvlaran/darp/stc"
)

// ErrNoGrid indicates a mission without grid rows.
var ErrNoGrid = errors.New("config: mission has no grid")

// ErrGridSymbol indicates a grid character outside the accepted set.
var ErrGridSymbol = errors.New("config: unknown grid symbol")

// ErrInvalidMission wraps every semantic error found by Load.
var ErrInvalidMission = errors.New("config: invalid mission")

// Mission is the root of a mission file.
//
// Grid rows use '.' or '0' for free cells, '#' or '1' for obstacles and
// 'R' or '2' for robot start cells; spaces are ignored.
type Mission struct {
	Name     string          `yaml:"name"`
	Grid     []string        `yaml:"grid"`
	Division division.Params `yaml:"division"`
	Engine   EngineConfig    `yaml:"engine"`
	Coverage CoverageConfig  `yaml:"coverage"`
	Frame    FrameConfig     `yaml:"frame"`
}

// EngineConfig tunes the division engine without changing the problem.
type EngineConfig struct {
	Seed             int64    `yaml:"seed"`
	Workers          int      `yaml:"workers"`
	Distance         string   `yaml:"distance"`          // "euclidean", "geodesic"
	ConnectivityBias *float64 `yaml:"connectivity_bias"` // nil keeps the engine default
}

// CoverageConfig selects how coverage circuits are built.
type CoverageConfig struct {
	Method    string `yaml:"method"`    // "kruskal", "prim"
	Weighting string `yaml:"weighting"` // "uniform", "horizontal", "vertical"
}

// FrameConfig places the grid in world coordinates.
type FrameConfig struct {
	Origin   [2]float64 `yaml:"origin"`
	CellSize float64    `yaml:"cell_size"`
}

// Default returns a mission with every setting at its default and no grid.
func Default() Mission {
	return Mission{
		Division: division.DefaultParams(),
		Engine:   EngineConfig{Seed: 1, Workers: 4, Distance: division.Euclidean.String()},
		Coverage: CoverageConfig{Method: string(spanning.MethodKruskal), Weighting: stc.WeightUniform.String()},
		Frame:    FrameConfig{CellSize: 1},
	}
}

// Load decodes a mission from r. Fields absent from the document keep their
// defaults and unknown fields are rejected.
func Load(r io.Reader) (*Mission, error) {
	m := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("config: failed to parse mission: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadFile reads and decodes the mission file at path.
func LoadFile(path string) (*Mission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to open mission: %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Validate checks the grid and every option that can be checked without
// running the planner.
func (m *Mission) Validate() error {
	if _, err := m.BuildGrid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMission, err)
	}
	if _, err := m.DivisionOptions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMission, err)
	}
	if _, err := m.CoverageOptions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMission, err)
	}
	if m.Frame.CellSize <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMission, planner.ErrInvalidFrame)
	}

	return nil
}

// BuildGrid parses the grid rows.
func (m *Mission) BuildGrid() (*gridgraph.Grid, error) {
	if len(m.Grid) == 0 {
		return nil, ErrNoGrid
	}
	cells := make([][]int, len(m.Grid))
	for r, line := range m.Grid {
		row := make([]int, 0, len(line))
		for _, ch := range strings.ReplaceAll(line, " ", "") {
			code, ok := symbolCode(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d", ErrGridSymbol, ch, r)
			}
			row = append(row, code)
		}
		cells[r] = row
	}

	return gridgraph.From2D(cells)
}

func symbolCode(ch rune) (int, bool) {
	switch ch {
	case '.', '0':
		return gridgraph.Free, true
	case '#', '1':
		return gridgraph.Obstacle, true
	case 'R', 'r', '2':
		return gridgraph.RobotStart, true
	default:
		return 0, false
	}
}

// DivisionOptions translates the engine settings.
func (m *Mission) DivisionOptions() ([]division.Option, error) {
	mode, err := division.ParseDistanceMode(m.Engine.Distance)
	if err != nil {
		return nil, fmt.Errorf("%w: distance %q", err, m.Engine.Distance)
	}
	if m.Engine.Workers < 1 {
		return nil, fmt.Errorf("%w: workers %d", division.ErrOptionViolation, m.Engine.Workers)
	}
	opts := []division.Option{
		division.WithSeed(m.Engine.Seed),
		division.WithWorkers(m.Engine.Workers),
		division.WithDistance(mode),
	}
	if m.Engine.ConnectivityBias != nil {
		opts = append(opts, division.WithConnectivityBias(*m.Engine.ConnectivityBias))
	}

	return opts, nil
}

// CoverageOptions translates the coverage settings.
func (m *Mission) CoverageOptions() ([]stc.Option, error) {
	method := spanning.Method(m.Coverage.Method)
	switch method {
	case "":
		method = spanning.MethodKruskal
	case spanning.MethodKruskal, spanning.MethodPrim:
	default:
		return nil, fmt.Errorf("%w: %q", spanning.ErrUnknownMethod, m.Coverage.Method)
	}
	w, err := stc.ParseWeighting(m.Coverage.Weighting)
	if err != nil {
		return nil, err
	}

	return []stc.Option{stc.WithMethod(method), stc.WithWeighting(w)}, nil
}

// PlanFrame returns the world frame of the grid.
func (m *Mission) PlanFrame() planner.Frame {
	return planner.Frame{
		Origin:   orb.Point{m.Frame.Origin[0], m.Frame.Origin[1]},
		CellSize: m.Frame.CellSize,
	}
}
