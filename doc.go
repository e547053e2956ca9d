// Package puzzlekit is a toolbox of building blocks for grid-based and
// numeric puzzles: coordinates and grids, neighbourhoods, regions, grid
// search, integer math, interval merging, matrix transforms and a small
// parser-combinator layer for puzzle input.
//
// What is in the box?
//
//	A pure-Go, synchronous, in-memory library:
//		• grid/     Cell, Offset, CellSet, Grid[T], Connectivity, regions
//		• grid3d/   Vector3D with Euclidean distance
//		• numeric/  ExtendedEuclid, GCD/LCM, Mod, DiophantineEEA, ToInt, BubbleDigits
//		• ranges/   closed integer intervals and Merged
//		• matrix/   Transpose, RotateRight/Left, FlipVertically/Horizontally
//		• parsing/  parser combinators plus ready-made line, number, range and grid parsers
//		• seq/      Iterate, Take, TakeWhile, IterateUntilStable
//		• bfs/      breadth-first search and multi-source 0-1 BFS on grids
//		• dfs/      depth-first search and path counting on grids
//		• dijkstra/ weighted shortest paths on grids
//
// A typical session:
//
//	g, err := parsing.SingleDigitGrid().Parse(input)
//	if err != nil {
//		return err
//	}
//	res, err := dijkstra.Dijkstra(g, grid.Origin, dijkstra.ValueCost(g))
//	if err != nil {
//		return err
//	}
//	d, ok := res.Distance(grid.NewCell(g.Height()-1, g.Width()-1))
//
// Conventions:
//
//   - Rows grow downward, columns to the right; (0, 0) is the top-left cell.
//   - Expected absence is reported with an ok bool, never a sentinel value.
//   - Precondition violations on Must*/structural helpers panic with a
//     wrapped sentinel error; everything else returns errors matched with errors.Is.
//   - Optional behaviour is configured with functional options.
//
// Each subpackage carries its own doc.go with details, complexity notes and
// runnable examples.
package puzzlekit
