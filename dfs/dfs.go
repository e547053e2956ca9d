// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/grid"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[T comparable] struct {
	grid    *grid.Grid[T] // underlying grid
	opts    DFSOptions    // traversal options
	offsets []grid.Offset // steps in Connectivity order
	res     *DFSResult    // result collector
}

// DFS performs depth-first search on grid g. If opts include WithFullTraversal,
// it covers every cell; otherwise, it starts only from start.
// Returns DFSResult or error if aborted by context or hook.
func DFS[T comparable](g *grid.Grid[T], start grid.Cell, opts ...Option) (*DFSResult, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.IsValidCell(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	// 4. Initialize result with capacity hint
	n := g.Width() * g.Height()
	res := &DFSResult{
		Order:   make([]grid.Cell, 0, n),
		Depth:   make(map[grid.Cell]int, n),
		Parent:  make(map[grid.Cell]grid.Cell, n),
		Visited: make(map[grid.Cell]bool, n),
	}

	walker := &dfsWalker[T]{grid: g, opts: dopts, offsets: dopts.Connectivity.Offsets(), res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for c := range g.All() {
			if !res.Visited[c] {
				if err := walker.traverse(c, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(start, 0); err != nil {
			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits cell c at given depth, recursing to its neighbours.
// It honors context cancellation, depth limit, hooks and filtering.
func (w *dfsWalker[T]) traverse(c grid.Cell, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[c] = true
	w.res.Depth[c] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c, depth); err != nil {
			// abort and clear post-order
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", c, err)
		}
	}

	// 5. Explore each in-bounds neighbour
	for _, off := range w.offsets {
		nb := c.Offset(off)
		if !w.grid.IsValidCell(nb) {
			continue
		}

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(c, nb) {
			w.opts.SkippedNeighbors++
			continue
		}

		// Recurse on unvisited cells within the depth limit
		if !w.res.Visited[nb] && (w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth) {
			w.res.Parent[nb] = c
			if err := w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(c); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", c, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, c)

	return nil
}
