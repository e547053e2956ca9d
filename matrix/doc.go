// Package matrix offers shape transforms over rectangular [][]T matrices.
//
// The matrix package provides:
//
//   - Transpose, which swaps rows and columns.
//   - RotateRight and RotateLeft, quarter turns clockwise and counter-clockwise.
//   - FlipVertically, which mirrors each row left to right, and
//     FlipHorizontally, which reverses the order of the rows.
//
// Every transform allocates a fresh matrix and never mutates its input.
// An empty input (no rows, or rows with no columns) yields an empty result.
// Ragged input is a programmer error: the transforms panic with
// ErrNonRectangular wrapped with the operation name, so callers can match
// it with errors.Is after recover.
//
// Complexity: O(rows × cols) time and memory for every transform.
//
// Four RotateRight calls return a matrix equal to the original, as do two
// Transpose calls or two FlipVertically calls.
package matrix
