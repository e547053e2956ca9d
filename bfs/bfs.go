// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/puzzlekit/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	grid    *grid.Grid[T]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[grid.Cell]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[T comparable](g *grid.Grid[T], start grid.Cell, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.IsValidCell(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, g.Width(), g.Height())
	}

	n := g.Width() * g.Height()
	w := &walker[T]{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[grid.Cell]bool, n),
		res: &BFSResult{
			Order:  make([]grid.Cell, 0, n),
			Depth:  make(map[grid.Cell]int, n),
			Parent: make(map[grid.Cell]grid.Cell, n),
		},
	}

	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent when it has one,
// calls OnEnqueue and adds it to the queue.
func (w *walker[T]) enqueue(c grid.Cell, d int, parent grid.Cell, hasParent bool) {
	w.visited[c] = true
	w.res.Depth[c] = d
	if hasParent {
		w.res.Parent[c] = parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)

	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
	}

	return nil
}

// enqueueNeighbors walks the in-bounds moves in Connectivity order,
// applies filtering and MaxDepth, and enqueues each unseen cell.
func (w *walker[T]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, off := range w.opts.Connectivity.Offsets() {
		nbr := item.cell.Offset(off)
		if !w.grid.IsValidCell(nbr) || w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.cell, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.cell, true)
	}
}
