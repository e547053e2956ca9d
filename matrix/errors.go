// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// ErrNonRectangular indicates that the rows of the input differ in length.
var ErrNonRectangular = errors.New("matrix: all rows must have the same length")

// shape returns the row and column counts of m. It panics with a wrapped
// ErrNonRectangular tagged with op when any row length differs from the first.
func shape[T any](op string, m [][]T) (rows, cols int) {
	rows = len(m)
	if rows == 0 {
		return 0, 0
	}
	cols = len(m[0])
	for r, row := range m {
		if len(row) != cols {
			panic(fmt.Errorf("%s: %w: row %d has %d columns, want %d", op, ErrNonRectangular, r, len(row), cols))
		}
	}

	return rows, cols
}

// alloc returns a rows × cols matrix backed by a single slice.
// With cols == 0 it still returns rows empty rows.
func alloc[T any](rows, cols int) [][]T {
	if rows == 0 {
		return [][]T{}
	}
	backing := make([]T, rows*cols)
	out := make([][]T, rows)
	for r := range out {
		out[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}

	return out
}
