// SPDX-License-Identifier: MIT

package bfs

import (
	"container/list"
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlekit/grid"
)

var (
	// ErrBadWeight is returned when a ZeroOne weight function prices a step
	// other than 0 or 1.
	ErrBadWeight = errors.New("bfs: 0-1 step weight must be 0 or 1")

	// ErrNilWeight is returned when ZeroOne is given a nil weight function.
	ErrNilWeight = errors.New("bfs: weight function is nil")
)

// ZeroOne runs a multi-source 0–1 BFS: every step costs 0 or 1 as priced by
// weight, and all sources start at cost 0. It answers questions such as
// "how many water cells must be filled to join two islands" or "how many
// walls must be broken to reach the exit" in O(N·d) without a heap.
//
// Behavior:
//  1. Validate grid, options and sources.
//  2. Seed a deque with every source at cost 0.
//  3. Pop from the front; a 0-step neighbour goes to the front, a 1-step
//     neighbour to the back. Stale entries are skipped on pop.
//  4. Record settle order, best cost and predecessor.
//
// The returned BFSResult reuses Depth for the cost of each settled cell, and
// Order for the settle sequence (non-decreasing cost). Sources have no Parent,
// so PathTo leads back to whichever source was cheapest.
// Honored options: WithContext, WithConnectivity, WithFilterNeighbor,
// WithMaxDepth (as a cost cap), and the three hooks.
func ZeroOne[T comparable](g *grid.Grid[T], sources []grid.Cell, weight func(from, to grid.Cell) int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if weight == nil {
		return nil, ErrNilWeight
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, s := range sources {
		if !g.IsValidCell(s) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, s, g.Width(), g.Height())
		}
	}

	n := g.Width() * g.Height()
	res := &BFSResult{
		Order:  make([]grid.Cell, 0, n),
		Depth:  make(map[grid.Cell]int, n),
		Parent: make(map[grid.Cell]grid.Cell, n),
	}
	settled := make(map[grid.Cell]bool, n)

	// 0–1 BFS: deque processes cost-0 steps at front, cost-1 steps at back
	dq := list.New()
	for _, s := range sources {
		if _, seen := res.Depth[s]; seen {
			continue
		}
		res.Depth[s] = 0
		o.OnEnqueue(s, 0)
		dq.PushBack(queueItem{cell: s, depth: 0})
	}

	offsets := o.Connectivity.Offsets()
	for dq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		item := dq.Remove(dq.Front()).(queueItem)
		u := item.cell
		if settled[u] || item.depth > res.Depth[u] {
			continue
		}
		settled[u] = true
		o.OnDequeue(u, item.depth)
		res.Order = append(res.Order, u)
		if err := o.OnVisit(u, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %v: %w", u, err)
		}

		for _, off := range offsets {
			v := u.Offset(off)
			if !g.IsValidCell(v) || settled[v] || !o.FilterNeighbor(u, v) {
				continue
			}
			step := weight(u, v)
			if step != 0 && step != 1 {
				return res, fmt.Errorf("%w: step %v→%v weight=%d", ErrBadWeight, u, v, step)
			}
			nd := item.depth + step
			if o.MaxDepth > 0 && nd > o.MaxDepth {
				continue
			}
			if old, seen := res.Depth[v]; seen && nd >= old {
				continue
			}
			res.Depth[v] = nd
			res.Parent[v] = u
			o.OnEnqueue(v, nd)
			if step == 0 {
				dq.PushFront(queueItem{cell: v, depth: nd})
			} else {
				dq.PushBack(queueItem{cell: v, depth: nd})
			}
		}
	}

	return res, nil
}
