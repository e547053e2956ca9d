// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/puzzlekit/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a cell the search never reached.
	ErrUnreachable = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Connectivity selects 4- or 8-neighbour moves. Default is grid.Conn4.
	Connectivity grid.Connectivity

	// OnEnqueue is called when a cell is enqueued, before visiting.
	OnEnqueue func(c grid.Cell, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c grid.Cell, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c grid.Cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth (inclusive).
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can forbid a step by returning false.
	// Called for each in-bounds move from→to.
	FilterNeighbor func(from, to grid.Cell) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - grid.Conn4 moves
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all in-bounds steps allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		Connectivity:   grid.Conn4,
		OnEnqueue:      func(grid.Cell, int) {},
		OnDequeue:      func(grid.Cell, int) {},
		OnVisit:        func(grid.Cell, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ grid.Cell) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity selects the neighbourhood used for each step.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *BFSOptions) {
		switch conn {
		case grid.Conn4, grid.Conn8:
			o.Connectivity = conn
		default:
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(conn))
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Cell, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Cell, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c grid.Cell, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search after depth d.
//
//	d > 0: cells up to depth d are reached
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips a step when fn returns false. Walls are the
// usual case:
//
//	bfs.WithFilterNeighbor(func(_, to grid.Cell) bool {
//		v, _ := g.Element(to)
//		return v != '#'
//	})
func WithFilterNeighbor(fn func(from, to grid.Cell) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []grid.Cell
	Depth  map[grid.Cell]int
	Parent map[grid.Cell]grid.Cell
}

// Reached reports whether c was discovered by the search.
func (r *BFSResult) Reached(c grid.Cell) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo reconstructs the path from the start cell to dest, both included.
// Returns ErrUnreachable if dest was not reached.
func (r *BFSResult) PathTo(dest grid.Cell) ([]grid.Cell, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: no path to %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []grid.Cell{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
