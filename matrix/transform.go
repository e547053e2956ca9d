// SPDX-License-Identifier: MIT

package matrix

import "slices"

// Transpose returns m with rows and columns swapped: result[c][r] = m[r][c].
func Transpose[T any](m [][]T) [][]T {
	rows, cols := shape("Transpose", m)
	out := alloc[T](cols, rows)
	for r := 0; r < rows && cols > 0; r++ {
		for c := 0; c < cols; c++ {
			out[c][r] = m[r][c]
		}
	}

	return out
}

// RotateRight turns m a quarter clockwise: result[c][rows-1-r] = m[r][c].
//
//	1 2 3      4 1
//	4 5 6  ->  5 2
//	           6 3
func RotateRight[T any](m [][]T) [][]T {
	rows, cols := shape("RotateRight", m)
	out := alloc[T](cols, rows)
	for r := 0; r < rows && cols > 0; r++ {
		for c := 0; c < cols; c++ {
			out[c][rows-1-r] = m[r][c]
		}
	}

	return out
}

// RotateLeft turns m a quarter counter-clockwise: result[cols-1-c][r] = m[r][c].
func RotateLeft[T any](m [][]T) [][]T {
	rows, cols := shape("RotateLeft", m)
	out := alloc[T](cols, rows)
	for r := 0; r < rows && cols > 0; r++ {
		for c := 0; c < cols; c++ {
			out[cols-1-c][r] = m[r][c]
		}
	}

	return out
}

// FlipVertically mirrors m about its vertical axis by reversing every row.
func FlipVertically[T any](m [][]T) [][]T {
	rows, cols := shape("FlipVertically", m)
	out := alloc[T](rows, cols)
	for r := 0; r < rows && cols > 0; r++ {
		copy(out[r], m[r])
		slices.Reverse(out[r])
	}

	return out
}

// FlipHorizontally mirrors m about its horizontal axis by reversing the row order.
func FlipHorizontally[T any](m [][]T) [][]T {
	rows, cols := shape("FlipHorizontally", m)
	out := alloc[T](rows, cols)
	for r := 0; r < rows && cols > 0; r++ {
		copy(out[rows-1-r], m[r])
	}

	return out
}
