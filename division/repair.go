package division

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/darp/gridgraph"
)

// repair makes every robot's territory a single 4-connected component.
//
// For each robot whose cells form several components, the component holding
// its start cell is kept and the rest are released. The robot's connectivity
// multipliers are then skewed so that cells near the kept component become
// cheaper and cells near the released fragments dearer in later iterations.
// Released cells are finally adopted by neighbouring territories.
func (e *engine) repair() error {
	e.orphans = e.orphans[:0]
	for r := 0; r < e.robots; r++ {
		lab, err := e.flood.LabelEqual(e.assign, r, gridgraph.Conn4)
		if err != nil {
			return err
		}
		if lab.Count <= 1 {
			continue
		}
		e.metrics.RecordRepair(r, lab.Count)

		keep := lab.Labels[e.starts[r]]
		e.mainBuf, e.frag = e.mainBuf[:0], e.frag[:0]
		for i, l := range lab.Labels {
			switch {
			case l == 0:
			case l == keep:
				e.mainBuf = append(e.mainBuf, i)
			default:
				e.frag = append(e.frag, i)
			}
		}
		if err := e.steer(r); err != nil {
			return err
		}
		for _, i := range e.frag {
			e.assign[i] = orphan
			e.orphans = append(e.orphans, i)
		}
	}
	if len(e.orphans) == 0 {
		return nil
	}
	slices.Sort(e.orphans)

	return e.adopt()
}

// steer multiplies robot r's connectivity multipliers by a factor in
// [1−bias, 1+bias] that grows with (distance to kept part − distance to
// fragments).
func (e *engine) steer(r int) error {
	bias := e.opts.ConnectivityBias
	if bias == 0 {
		return nil
	}
	if err := e.flood.Distances(e.dMain, e.freeMask, e.mainBuf, gridgraph.Conn4); err != nil {
		return err
	}
	if err := e.flood.Distances(e.dFrag, e.freeMask, e.frag, gridgraph.Conn4); err != nil {
		return err
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, free := range e.freeMask {
		if !free {
			continue
		}
		raw := e.dMain[i] - e.dFrag[i]
		e.dMain[i] = raw
		lo = math.Min(lo, raw)
		hi = math.Max(hi, raw)
	}
	if hi <= lo {
		return nil
	}
	c := e.conn[r]
	scale := 2 * bias / (hi - lo)
	for i, free := range e.freeMask {
		if free {
			c[i] *= 1 - bias + scale*(e.dMain[i]-lo)
		}
	}

	return nil
}

// adopt hands released cells to neighbouring territories in waves. In each
// wave every orphan touching an owned cell joins the neighbouring robot with
// the lowest metric for it (lowest index on ties); claims of one wave are
// applied together, so each adopted cell touches its new owner's region.
func (e *engine) adopt() error {
	offsets := gridgraph.NeighborOffsets(gridgraph.Conn4)
	pending := e.orphans
	for len(pending) > 0 {
		e.claims = e.claims[:0]
		rest := pending[:0]
		for _, o := range pending {
			orow, ocol := o/e.cols, o%e.cols
			best, bestM := -1, math.Inf(1)
			for _, d := range offsets {
				vr, vc := orow+d[0], ocol+d[1]
				if vr < 0 || vr >= e.rows || vc < 0 || vc >= e.cols {
					continue
				}
				owner := e.assign[vr*e.cols+vc]
				if owner < 0 {
					continue
				}
				m := e.metric[owner][o]
				if m < bestM || (m == bestM && owner < best) {
					best, bestM = owner, m
				}
			}
			if best < 0 {
				rest = append(rest, o)
				continue
			}
			e.claims = append(e.claims, o, best)
		}
		if len(e.claims) == 0 {
			return fmt.Errorf("%w: %d released cells have no owned neighbour", ErrRegionDisconnected, len(rest))
		}
		for k := 0; k < len(e.claims); k += 2 {
			e.assign[e.claims[k]] = e.claims[k+1]
		}
		pending = rest
	}

	return nil
}
