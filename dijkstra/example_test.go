// Package dijkstra_test provides examples demonstrating how to use Dijkstra on grids.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/dijkstra"
	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/parsing"
)

// ExampleDijkstra_valueCost finds the cheapest route through a digit grid,
// paying the digit of every cell entered.
func ExampleDijkstra_valueCost() {
	g := parsing.Must(parsing.SingleDigitGrid().Parse("131\n191\n111\n"))
	goal := grid.NewCell(2, 2)

	res, err := dijkstra.Dijkstra(g, grid.Origin, dijkstra.ValueCost(g), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := res.Distance(goal)
	path, _ := res.PathTo(goal)
	fmt.Println(d, path)
	// Output:
	// 4 [(0, 0) (1, 0) (2, 0) (2, 1) (2, 2)]
}

// ExampleDijkstra_walls treats '#' as impassable by pricing it at the threshold.
func ExampleDijkstra_walls() {
	g := parsing.Must(parsing.CharacterGrid().Parse(".#.\n.#.\n...\n"))
	const wall = 1 << 20
	cost := func(_, to grid.Cell) int {
		if v, _ := g.Element(to); v == '#' {
			return wall
		}
		return 1
	}

	res, err := dijkstra.Dijkstra(g, grid.Origin, cost, dijkstra.WithInfCostThreshold(wall))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, ok := res.Distance(grid.NewCell(0, 2))
	fmt.Println(d, ok)
	// Output:
	// 6 true
}
