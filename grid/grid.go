// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows is empty or the first row has no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	cells := make([]T, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// MustNew is New for input the caller guarantees to be well formed.
// A malformed grid is a programmer error: MustNew panics with the wrapped
// sentinel instead of returning it.
func MustNew[T comparable](rows [][]T) *Grid[T] {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// Width is the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// IsValidRow reports whether row exists in the grid.
func (g *Grid[T]) IsValidRow(row int) bool {
	return row >= 0 && row < g.height
}

// IsValidColumn reports whether col exists in the grid.
func (g *Grid[T]) IsValidColumn(col int) bool {
	return col >= 0 && col < g.width
}

// IsValid reports whether (row, col) lies within the grid.
func (g *Grid[T]) IsValid(row, col int) bool {
	return g.IsValidRow(row) && g.IsValidColumn(col)
}

// IsValidCell reports whether c lies within the grid.
func (g *Grid[T]) IsValidCell(c Cell) bool {
	return g.IsValid(c.Row, c.Col)
}

// index maps (row, col) to the row-major storage index.
func (g *Grid[T]) index(row, col int) int {
	return row*g.width + col
}

// At returns the element at (row, col). ok is false when out of bounds.
func (g *Grid[T]) At(row, col int) (v T, ok bool) {
	if !g.IsValid(row, col) {
		return v, false
	}

	return g.cells[g.index(row, col)], true
}

// Element returns the element at c. ok is false when c is out of bounds.
func (g *Grid[T]) Element(c Cell) (T, bool) {
	return g.At(c.Row, c.Col)
}

// Row returns a copy of the given row. ok is false when row is out of bounds.
func (g *Grid[T]) Row(row int) ([]T, bool) {
	if !g.IsValidRow(row) {
		return nil, false
	}
	start := g.index(row, 0)

	return append([]T(nil), g.cells[start:start+g.width]...), true
}

// filter keeps the members of set that lie within the grid.
func (g *Grid[T]) filter(set CellSet) CellSet {
	out := NewCellSet()
	set.Each(func(c Cell) {
		if g.IsValidCell(c) {
			out.Put(c)
		}
	})

	return out
}

// OrthogonalNeighbours returns the in-bounds orthogonal neighbours of c.
func (g *Grid[T]) OrthogonalNeighbours(c Cell) CellSet {
	return g.filter(c.OrthogonalNeighbours())
}

// DiagonalNeighbours returns the in-bounds diagonal neighbours of c.
func (g *Grid[T]) DiagonalNeighbours(c Cell) CellSet {
	return g.filter(c.DiagonalNeighbours())
}

// Neighbours returns all in-bounds neighbours of c.
func (g *Grid[T]) Neighbours(c Cell) CellSet {
	return g.filter(c.Neighbours())
}

// Rows returns a lazy, restartable sequence of rows, top to bottom.
// Each yielded slice is a fresh copy of length Width.
func (g *Grid[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for r := 0; r < g.height; r++ {
			row, _ := g.Row(r)
			if !yield(row) {
				return
			}
		}
	}
}

// Cols returns a lazy, restartable sequence of columns, left to right.
// Each column is rebuilt on demand by reading one element from every row.
func (g *Grid[T]) Cols() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for c := 0; c < g.width; c++ {
			col := make([]T, g.height)
			for r := 0; r < g.height; r++ {
				col[r] = g.cells[g.index(r, c)]
			}
			if !yield(col) {
				return
			}
		}
	}
}

// All returns every cell and its element in row-major order.
func (g *Grid[T]) All() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		for i, v := range g.cells {
			if !yield(Cell{Row: i / g.width, Col: i % g.width}, v) {
				return
			}
		}
	}
}

// FirstCell returns the first cell in row-major order holding v.
// ok is false when no cell matches.
func (g *Grid[T]) FirstCell(v T) (Cell, bool) {
	for c, e := range g.All() {
		if e == v {
			return c, true
		}
	}

	return Cell{}, false
}

// Cells returns every cell whose element satisfies pred.
func (g *Grid[T]) Cells(pred func(T) bool) CellSet {
	set := NewCellSet()
	for c, e := range g.All() {
		if pred(e) {
			set.Put(c)
		}
	}

	return set
}

// Equal reports whether g and other have the same shape and elements.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}

	return true
}

// Map applies fn to every element of g and returns a new grid of the same
// shape. fn sees only the element, never its position or neighbours.
// g is left untouched.
func Map[T, U comparable](g *Grid[T], fn func(T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = fn(v)
	}

	return &Grid[U]{width: g.width, height: g.height, cells: cells}
}

// IterateMap returns the unbounded sequence g, Map(g, fn), Map(Map(g, fn), fn), ...
//
// The sequence never ends on its own: bound it with seq.Take, seq.TakeWhile
// or a break in the range loop. It is restartable; each traversal starts
// again from g.
func (g *Grid[T]) IterateMap(fn func(T) T) iter.Seq[*Grid[T]] {
	return func(yield func(*Grid[T]) bool) {
		for cur := g; ; cur = Map(cur, fn) {
			if !yield(cur) {
				return
			}
		}
	}
}

// String renders one line per row with elements concatenated via fmt.Sprint
// and no separator. Rune elements are written as characters, so a grid built
// by parsing.CharacterGrid prints back as its source text.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for i, v := range g.cells {
		if i > 0 && i%g.width == 0 {
			sb.WriteByte('\n')
		}
		if r, ok := any(v).(rune); ok {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(fmt.Sprint(v))
	}

	return sb.String()
}
