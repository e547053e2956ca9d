// SPDX-License-Identifier: MIT

package grid

// Regions finds all contiguous areas of equal elements according to conn.
// Every cell belongs to exactly one region, so the regions partition the grid.
//
// Regions are ordered by the row-major position of their first cell; cells
// inside a region are in breadth-first discovery order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Regions(conn Connectivity) [][]Cell {
	seen := make([]bool, len(g.cells))
	offsets := conn.Offsets()
	var regions [][]Cell

	for i0, v := range g.cells {
		if seen[i0] {
			continue
		}
		// BFS over equal neighbours
		start := Cell{Row: i0 / g.width, Col: i0 % g.width}
		queue := []Cell{start}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, o := range offsets {
				n := u.Offset(o)
				if !g.IsValidCell(n) {
					continue
				}
				ni := g.index(n.Row, n.Col)
				if seen[ni] || g.cells[ni] != v {
					continue
				}
				seen[ni] = true
				queue = append(queue, n)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Region returns the contiguous area of elements equal to the one at start.
// ok is false when start is out of bounds.
func (g *Grid[T]) Region(start Cell, conn Connectivity) (CellSet, bool) {
	v, ok := g.Element(start)
	if !ok {
		return NewCellSet(), false
	}
	set := NewCellSet(start)
	queue := []Cell{start}
	for qi := 0; qi < len(queue); qi++ {
		for _, o := range conn.Offsets() {
			n := queue[qi].Offset(o)
			if set.Has(n) {
				continue
			}
			if e, ok := g.Element(n); !ok || e != v {
				continue
			}
			set.Put(n)
			queue = append(queue, n)
		}
	}

	return set, true
}
