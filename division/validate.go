package division

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

func validateParams(p Params) error {
	switch {
	case p.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %d < 1", ErrInvalidParams, p.MaxIterations)
	case !(p.Variation > 0 && p.Variation < 1):
		return fmt.Errorf("%w: variation %g not in (0,1)", ErrInvalidParams, p.Variation)
	case !(p.RandomLevel >= 0 && p.RandomLevel < 1):
		return fmt.Errorf("%w: random level %g not in [0,1)", ErrInvalidParams, p.RandomLevel)
	case p.Discretization < 1:
		return fmt.Errorf("%w: discretization %d < 1", ErrInvalidParams, p.Discretization)
	}

	return nil
}

func validateOptions(o Options) error {
	switch {
	case o.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrOptionViolation, o.Workers)
	case !(o.ConnectivityBias >= 0 && o.ConnectivityBias < 1):
		return fmt.Errorf("%w: connectivity bias %g not in [0,1)", ErrOptionViolation, o.ConnectivityBias)
	case o.Distance != Euclidean && o.Distance != Geodesic:
		return fmt.Errorf("%w: distance mode %d", ErrOptionViolation, o.Distance)
	}

	return nil
}

// normalizePortions returns the target fractions: equal shares when portions
// is empty, otherwise a validated copy.
func normalizePortions(portions []float64, robots int) ([]float64, error) {
	out := make([]float64, robots)
	if len(portions) == 0 {
		for r := range out {
			out[r] = 1 / float64(robots)
		}
		return out, nil
	}
	if len(portions) != robots {
		return nil, fmt.Errorf("%w: got %d portions for %d robots", ErrInvalidPortions, len(portions), robots)
	}
	for r, v := range portions {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: portion %d is %g", ErrInvalidPortions, r, v)
		}
	}
	if sum := floats.Sum(portions); math.Abs(sum-1) > PortionTolerance {
		return nil, fmt.Errorf("%w: sum is %g", ErrInvalidPortions, sum)
	}
	copy(out, portions)

	return out, nil
}
