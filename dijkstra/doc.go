// Package dijkstra implements Dijkstra's cheapest-path algorithm on a grid.Grid.
//
// Dijkstra computes the minimum-cost path from a source cell to every other
// reachable cell when each step has a non-negative price. It processes cells
// in order of increasing distance using a min-heap priority queue
// (github.com/zyedidia/generic/heap), relaxing moves and updating distances.
//
// Step costs:
//
//	The caller supplies a CostFunc(from, to) giving the price of stepping
//	from one cell into an adjacent one. ValueCost covers the common case
//	where the price is the digit stored in the destination cell.
//
// Complexity (N = Width × Height, d = 4 or 8):
//
//   - Time:  O(N·d·log N)
//   - Each cell is settled at most once.
//   - Each relaxation may push a new heap entry: up to N·d pushes.
//   - Space: O(N·d) worst case under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Negative step prices are detected when first priced and fail with ErrNegativeCost.
//   - Any step priced ≥ InfCostThreshold is an impassable wall.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance,
//     or as soon as the WithTarget cell is settled.
//   - Lazy decrease-key: duplicates are pushed and stale entries ignored on pop.
//   - Equal distances pop in push order, so Prev is deterministic.
//
// Options:
//
//	– WithConnectivity(c):      4- or 8-neighbour moves.
//	– WithReturnPath():         record predecessors for Result.PathTo.
//	– WithMaxDistance(x):       cells with distance > x are not explored (x ≥ 0).
//	– WithInfCostThreshold(t):  steps with cost ≥ t are skipped (t > 0).
//	– WithTarget(c):            stop once c is settled.
//
// Errors (sentinel):
//
//	– ErrNilGrid, ErrNilCost, ErrSourceOutOfBounds for invalid input.
//	– ErrNegativeCost if the cost function returns a negative price.
//	– ErrBadMaxDistance, ErrBadInfThreshold (panics from the option constructors).
//	– ErrNoPath from Result.PathTo.
//
// Example usage:
//
//	g := parsing.Must(parsing.SingleDigitGrid().Parse(input))
//	goal := grid.NewCell(g.Height()-1, g.Width()-1)
//	res, err := dijkstra.Dijkstra(g, grid.Origin, dijkstra.ValueCost(g), dijkstra.WithTarget(goal))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	risk, _ := res.Distance(goal)
package dijkstra
