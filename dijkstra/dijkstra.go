// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/puzzlekit/grid"
)

// Dijkstra computes cheapest distances from source to every reachable cell
// of g, where cost prices each step. It accepts functional options to
// customize behavior (ReturnPath, MaxDistance, InfCostThreshold, Target).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. cost must be non-nil (ErrNilCost).
//  3. source must lie inside g (ErrSourceOutOfBounds).
//  4. No step may cost less than zero (ErrNegativeCost, detected on relaxation).
//
// Complexity:
//
//   - Time:  O(N·d·log N) for N = Width × Height cells and d = 4 or 8.
//   - Space: O(N·d) worst case for heap entries under lazy decrease-key.
func Dijkstra[T comparable](g *grid.Grid[T], source grid.Cell, cost CostFunc, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if cost == nil {
		return nil, ErrNilCost
	}
	if !g.IsValidCell(source) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrSourceOutOfBounds, source, g.Width(), g.Height())
	}

	// 3) Prepare runner state
	n := g.Width() * g.Height()
	r := &runner[T]{
		g:       g,
		cost:    cost,
		options: cfg,
		offsets: cfg.Connectivity.Offsets(),
		dist:    make(map[grid.Cell]int, n),
		visited: make(map[grid.Cell]bool, n),
		pq: heap.New[nodeItem](func(a, b nodeItem) bool {
			if a.dist != b.dist {
				return a.dist < b.dist
			}
			return a.seq < b.seq
		}),
	}
	if cfg.ReturnPath {
		r.prev = make(map[grid.Cell]grid.Cell, n)
	}

	// 4) Run
	r.dist[source] = 0
	r.push(source, 0)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T comparable] struct {
	g       *grid.Grid[T]           // The input grid; read-only within Dijkstra.
	cost    CostFunc                // Step pricing.
	options Options                 // Configuration options.
	offsets []grid.Offset           // Moves in Connectivity order.
	dist    map[grid.Cell]int       // Cell → current best distance from source.
	prev    map[grid.Cell]grid.Cell // Cell → predecessor on the best path (nil unless ReturnPath).
	visited map[grid.Cell]bool      // Tracks if a cell's distance is finalized.
	pq      *heap.Heap[nodeItem]    // Min-heap for the lazy priority queue.
	seq     int                     // Push counter; breaks distance ties in FIFO order.
}

// nodeItem represents a cell and a candidate distance from the source.
type nodeItem struct {
	cell grid.Cell
	dist int
	seq  int
}

// push adds a candidate entry; stale duplicates are skipped on pop.
func (r *runner[T]) push(c grid.Cell, d int) {
	r.pq.Push(nodeItem{cell: c, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the cell with the minimum distance and
// relaxes its moves. It stops when the heap is empty, when the minimum
// exceeds MaxDistance, or when the Target is settled.
func (r *runner[T]) process() error {
	for r.pq.Size() > 0 {
		item, _ := r.pq.Pop()
		u := item.cell

		// skip stale heap entries
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if r.options.HasTarget && u == r.options.Target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every in-bounds neighbour of u.
// Assumes r.dist[u] is final.
func (r *runner[T]) relax(u grid.Cell) error {
	du := r.dist[u]
	for _, off := range r.offsets {
		v := u.Offset(off)
		if !r.g.IsValidCell(v) || r.visited[v] {
			continue
		}

		w := r.cost(u, v)
		if w < 0 {
			return fmt.Errorf("%w: step %v→%v cost=%d", ErrNegativeCost, u, v, w)
		}
		// impassable step
		if w >= r.options.InfCostThreshold {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		r.push(v, newDist)
	}

	return nil
}
