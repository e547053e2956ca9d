// SPDX-License-Identifier: MIT

// Package grid provides an immutable rectangular Grid addressed by Cell
// coordinates, together with the coordinate and neighbour model used by
// puzzle solutions.
//
// What:
//
//   - Cell is a (Row, Col) value type with offset arithmetic, unfiltered
//     neighbour sets and Manhattan distance.
//   - Offset enumerates the eight directional deltas; Orthogonal, Diagonal and
//     AllOffsets group them.
//   - Grid[T] wraps a non-empty, rectangular [][]T. It answers bounds queries,
//     probes elements, filters neighbours to the grid, traverses rows and
//     columns lazily, searches, selects and maps into new grids.
//   - Regions finds connected areas of equal values under Conn4 or Conn8.
//
// Why:
//
//   - Cell keeps the shape of adjacency, Grid keeps the shape of the
//     container. The same offsets serve unbounded-plane algorithms.
//   - Out-of-range probes are an expected outcome at grid edges, so every
//     accessor reports absence with an ok flag instead of failing.
//
// Complexity:
//
//   - Bounds checks, element access, neighbour queries: O(1).
//   - FirstCell, Cells, Map, String, Regions: O(W×H).
//   - Rows/Cols: O(W) / O(H) per yielded slice.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or an empty first row.
//   - ErrNonRectangular: rows have differing lengths.
//
// New returns these errors; MustNew panics with them because a malformed grid
// is a programmer or input error, not a runtime condition.
package grid
