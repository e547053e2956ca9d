// Package bfs provides breadth-first search over a grid.Grid, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (step count) from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (steps) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows forbidding individual steps (walls, slopes, height limits)
//     via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Steps to 4 or 8 neighbours via WithConnectivity.
//
// Why
//
//   - Shortest routes through mazes where every step costs the same.
//   - Flood fills and reachability ("how many plots in 64 steps").
//
// Determinism
//
//	Neighbours are enqueued in grid.Connectivity.Offsets order (Up, Right,
//	Down, Left, then the diagonals for Conn8), so the visit sequence is
//	fully reproducible.
//
// Complexity (N = Width × Height, d = 4 or 8)
//
//   - Time:   O(N·d)   (each cell dequeued once, each move checked once)
//   - Memory: O(N)     (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithMaxDepth(64),
//	    bfs.WithFilterNeighbor(func(_, to grid.Cell) bool {
//	        v, _ := g.Element(to)
//	        return v != '#'
//	    }),
//	)
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if the start cell is outside the grid.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrUnreachable       from PathTo for a cell never reached.
//   - ErrNilWeight         from ZeroOne when the weight function is nil.
//   - ErrBadWeight         from ZeroOne when a step weighs other than 0 or 1.
//   - Wrapped user-supplied hook errors from OnVisit, or the context error.
package bfs
