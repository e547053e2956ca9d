// SPDX-License-Identifier: MIT

package grid

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// CellSet is an unordered set of distinct cells.
type CellSet = mapset.Set[Cell]

// NewCellSet returns a set holding the given cells.
func NewCellSet(cells ...Cell) CellSet {
	set := mapset.New[Cell]()
	for _, c := range cells {
		set.Put(c)
	}

	return set
}

// Union returns a new set with every cell of a and b.
func Union(a, b CellSet) CellSet {
	out := NewCellSet()
	a.Each(func(c Cell) { out.Put(c) })
	b.Each(func(c Cell) { out.Put(c) })

	return out
}

// SortedCells returns the members of set in row-major order.
func SortedCells(set CellSet) []Cell {
	cells := make([]Cell, 0, set.Size())
	set.Each(func(c Cell) { cells = append(cells, c) })
	slices.SortFunc(cells, compareRowMajor)

	return cells
}

// compareRowMajor orders cells by row, then by column.
func compareRowMajor(a, b Cell) int {
	if r := cmp.Compare(a.Row, b.Row); r != 0 {
		return r
	}

	return cmp.Compare(a.Col, b.Col)
}
