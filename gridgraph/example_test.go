// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/darp/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents demonstrates how to find contiguous
// free regions in a workspace.
// Scenario:
//
//   - Grid values: 0 = free, 1 = obstacle, 2 = robot start
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect three components, listed in BFS order from their first cell.
func ExampleGrid_ConnectedComponents() {
	g, _ := gridgraph.From2D([][]int{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{2, 0, 1, 0},
	})

	comps := g.ConnectedComponents(gridgraph.Conn4)
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			p := g.Point(idx)
			fmt.Printf(" (%d,%d)", p.Row, p.Col)
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (0,0) (0,1)
	// component 1: (0,3) (1,3) (2,3)
	// component 2: (2,0) (2,1)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Bridge
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Bridge reports which obstacles to clear so that a rejected
// workspace becomes a single component.
func ExampleGrid_Bridge() {
	g, _ := gridgraph.From2D([][]int{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{2, 0, 1, 0},
	})
	fmt.Println("feasible:", g.Feasible() == nil)

	path, cost, _ := g.Bridge(0, 1)
	fmt.Printf("clear %d obstacle(s) along:", cost)
	for _, idx := range path {
		p := g.Point(idx)
		fmt.Printf(" (%d,%d)", p.Row, p.Col)
	}
	fmt.Println()

	// Output:
	// feasible: false
	// clear 1 obstacle(s) along: (0,1) (0,2) (0,3)
}
