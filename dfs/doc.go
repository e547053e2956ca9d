// Package dfs implements depth-first search over a grid.Grid and memoised
// path counting through the acyclic step graph a filter defines.
//
// What & Why:
//
//	DFS explores as deep as possible along each step before backtracking.
//	On puzzle grids it answers "what can I reach from here" when the
//	allowed moves depend on the cells involved (climbing by exactly one,
//	staying on the same letter, never crossing a wall), and its post-order
//	is the natural order for accumulating values bottom-up.
//
// Steps:
//
//	From a cell c, the candidate steps are the in-bounds neighbours in the
//	configured Connectivity (grid.Conn4: Up, Right, Down, Left; grid.Conn8
//	adds diagonals). FilterNeighbor(from, to) decides which are taken.
//
// API:
//
//	DFS(g, start, opts...) (*DFSResult, error)
//	  Order             - cells in post-order (finished)
//	  Depth             - DFS-tree depth of every visited cell
//	  Parent            - discovery parent; roots are absent
//	  Visited           - reached cells
//	  SkippedNeighbors  - steps rejected by FilterNeighbor
//
//	CountPaths(g, start, isEnd, opts...) (int, error)
//	  number of distinct step sequences from start to the first end cell on
//	  each path. Cells are coloured White → Gray → Black; reaching a Gray
//	  cell again means the steps loop and ErrCycleDetected is returned.
//
// Options:
//
//	WithContext(ctx)         - cancellation
//	WithConnectivity(conn)   - 4- or 8-neighbour steps
//	WithOnVisit(fn)          - pre-order hook; a non-nil error aborts
//	WithOnExit(fn)           - post-order hook; a non-nil error aborts
//	WithMaxDepth(limit)      - cells deeper than limit are not visited
//	WithFilterNeighbor(fn)   - choose which steps to take
//	WithFullTraversal()      - restart from every unvisited cell, row-major
//
// Complexity:
//
//	Time:   O(N·d), N = cells, d = 4 or 8
//	Memory: O(N) for metadata and the recursion stack
//
// Errors:
//
//	ErrGridNil, ErrStartOutOfBounds, ErrOptionViolation, ErrNilEnd, ErrCycleDetected,
//	ctx.Err() on cancellation, and hook errors wrapped with the failing cell.
package dfs
