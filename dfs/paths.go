// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/grid"
)

// CountPaths returns the number of distinct step sequences that lead from
// start to a cell satisfying isEnd. Steps are the in-bounds neighbours in the
// configured Connectivity that pass FilterNeighbor; a path ends at the first
// end cell it reaches.
//
// Counts are memoised per cell. A cell met again while still on the recursion
// stack (Gray) means the steps loop and the count is unbounded, so
// ErrCycleDetected is returned together with the looping cell.
//
// MaxDepth, OnVisit, OnExit and FullTraversal are ignored.
// Complexity: O(N·d) time, O(N) memory.
func CountPaths[T comparable](g *grid.Grid[T], start grid.Cell, isEnd func(grid.Cell) bool, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	if isEnd == nil {
		return 0, ErrNilEnd
	}
	if !g.IsValidCell(start) {
		return 0, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return 0, dopts.err
	}

	pc := &pathCounter[T]{
		grid:    g,
		opts:    dopts,
		offsets: dopts.Connectivity.Offsets(),
		isEnd:   isEnd,
		state:   make(map[grid.Cell]int),
		memo:    make(map[grid.Cell]int),
	}

	return pc.count(start)
}

// pathCounter holds the colouring and memo table for CountPaths.
type pathCounter[T comparable] struct {
	grid    *grid.Grid[T]
	opts    DFSOptions
	offsets []grid.Offset
	isEnd   func(grid.Cell) bool
	state   map[grid.Cell]int // White (absent), Gray or Black
	memo    map[grid.Cell]int // path counts of Black cells
}

func (pc *pathCounter[T]) count(c grid.Cell) (int, error) {
	select {
	case <-pc.opts.Ctx.Done():
		return 0, pc.opts.Ctx.Err()
	default:
	}

	switch pc.state[c] {
	case Gray:
		return 0, fmt.Errorf("%w at %v", ErrCycleDetected, c)
	case Black:
		return pc.memo[c], nil
	}

	if pc.isEnd(c) {
		pc.state[c] = Black
		pc.memo[c] = 1

		return 1, nil
	}

	pc.state[c] = Gray
	total := 0
	for _, off := range pc.offsets {
		nb := c.Offset(off)
		if !pc.grid.IsValidCell(nb) {
			continue
		}
		if pc.opts.FilterNeighbor != nil && !pc.opts.FilterNeighbor(c, nb) {
			continue
		}
		n, err := pc.count(nb)
		if err != nil {
			return 0, err
		}
		total += n
	}
	pc.state[c] = Black
	pc.memo[c] = total

	return total, nil
}
