// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Cell is a row/column coordinate. Row grows downward, Col grows to the right.
// Cells are plain values: comparable, usable as map keys and never mutated in
// place. Negative coordinates are allowed in intermediate arithmetic.
type Cell struct {
	Row int
	Col int
}

// Origin is the top-left cell (0, 0).
var Origin = Cell{}

// NewCell returns the cell at (row, col).
func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// CellOf builds a cell from a (row, col) pair.
func CellOf(pair [2]int) Cell {
	return Cell{Row: pair[0], Col: pair[1]}
}

// String returns "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Add returns the componentwise sum of c and other.
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Offset returns c translated by o. No bounds checking is performed; validity
// is a Grid concern.
func (c Cell) Offset(o Offset) Cell {
	dr, dc := o.Delta()

	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Offsets applies every offset in os to c and returns the distinct results.
func (c Cell) Offsets(os ...Offset) CellSet {
	set := NewCellSet()
	for _, o := range os {
		set.Put(c.Offset(o))
	}

	return set
}

// OrthogonalNeighbours returns the four cells up, down, left and right of c.
func (c Cell) OrthogonalNeighbours() CellSet {
	return c.Offsets(Orthogonal()...)
}

// DiagonalNeighbours returns the four diagonally adjacent cells.
func (c Cell) DiagonalNeighbours() CellSet {
	return c.Offsets(Diagonal()...)
}

// Neighbours returns all eight surrounding cells.
func (c Cell) Neighbours() CellSet {
	return c.Offsets(AllOffsets()...)
}

// ManhattanDistance returns |Δrow| + |Δcol| between c and to.
func (c Cell) ManhattanDistance(to Cell) int {
	return abs(c.Row-to.Row) + abs(c.Col-to.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
