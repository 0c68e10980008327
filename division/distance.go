package division

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/darp/dijkstra"
	"github.com/katalvlaran/darp/gridgraph"
	"github.com/katalvlaran/darp/proximity"
)

// computeBase fills e.base with each robot's distance field.
//
//   - Importance: cost-weighted path length through free space, where a
//     cell's cost is 1 + 1/(distance to the nearest obstacle).
//   - Geodesic: BFS step count through free space.
//   - Euclidean: straight-line distance.
func (e *engine) computeBase(ctx context.Context, g *gridgraph.Grid) error {
	var weights []float64
	if e.params.Importance {
		w, err := proximity.Weights(g)
		if err != nil {
			return fmt.Errorf("division: obstacle weights: %w", err)
		}
		weights = w
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(e.opts.Workers)
	for r := 0; r < e.robots; r++ {
		eg.Go(func() error {
			start := e.starts[r]
			dst := e.base[r]
			switch {
			case weights != nil:
				dist, _, err := dijkstra.Dijkstra(weights, e.rows, e.cols, dijkstra.Source(start))
				if err != nil {
					return fmt.Errorf("division: robot %d distance field: %w", r, err)
				}
				copy(dst, dist)
			case e.opts.Distance == Geodesic:
				flood := gridgraph.NewFlood(e.rows, e.cols)
				if err := flood.Distances(dst, e.freeMask, []int{start}, gridgraph.Conn4); err != nil {
					return fmt.Errorf("division: robot %d distance field: %w", r, err)
				}
			default:
				p := gridgraph.Point{Row: start / e.cols, Col: start % e.cols}
				if err := gridgraph.EuclideanField(dst, e.rows, e.cols, p); err != nil {
					return fmt.Errorf("division: robot %d distance field: %w", r, err)
				}
			}
			return nil
		})
	}

	return eg.Wait()
}
