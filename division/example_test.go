package division_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/darp/division"
	"github.com/katalvlaran/darp/gridgraph"
)

// ExampleDivide splits a ring-shaped workspace between two robots.
func ExampleDivide() {
	g, err := gridgraph.From2D([][]int{
		{2, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p := division.DefaultParams()
	p.RandomLevel = 0
	p.Variation = 0.1
	div, err := division.Divide(context.Background(), g, p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("success: %v cells: %v\n", div.Success, div.Counts())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if owner := div.At(gridgraph.Point{Row: r, Col: c}); owner == division.Unassigned {
				fmt.Print(" #")
			} else {
				fmt.Printf(" %d", owner)
			}
		}
		fmt.Println()
	}
	// Output:
	// success: true cells: [5 5]
	//  0 0 0 1
	//  0 # # 1
	//  0 1 1 1
}
