// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlekit/grid"
)

// Visitation states of a cell during path counting.
const (
	White = iota // White: the cell has not been visited yet.
	Gray         // Gray: the cell is on the recursion stack (visiting).
	Black        // Black: the cell and all cells after it have been fully explored.
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to DFS or CountPaths.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrStartOutOfBounds indicates that the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("dfs: start cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNilEnd is returned when CountPaths is given a nil end predicate.
	ErrNilEnd = errors.New("dfs: end predicate is nil")

	// ErrCycleDetected indicates that the allowed steps loop back on
	// themselves, so the number of paths is unbounded.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...) or CountPaths(g, start, isEnd, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-grid mode, and diagnostics.
// Complexity remains O(N·d) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// Connectivity selects 4- or 8-neighbour steps. Default grid.Conn4.
	Connectivity grid.Connectivity

	// OnVisit, if non-nil, is invoked immediately upon discovering a cell (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(c grid.Cell, depth int) error

	// OnExit, if non-nil, is invoked after all cells reachable from c
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(c grid.Cell) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start cell. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each in-bounds step before recursing.
	// Return true to step from→to, false to skip it.
	FilterNeighbor func(from, to grid.Cell) bool

	// FullTraversal, if true, runs DFS from every unvisited cell in row-major
	// order, covering disconnected areas (forest traversal). Default is false.
	FullTraversal bool

	// SkippedNeighbors tracks how many steps were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int

	err error // first invalid option, surfaced by DFS and CountPaths
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - grid.Conn4 steps
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No step filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:              context.Background(),
		Connectivity:     grid.Conn4,
		OnVisit:          nil,
		OnExit:           nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		FullTraversal:    false,
		SkippedNeighbors: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity returns an Option that selects the step neighbourhood.
// Values other than grid.Conn4 and grid.Conn8 are reported as ErrOptionViolation.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *DFSOptions) {
		switch conn {
		case grid.Conn4, grid.Conn8:
			o.Connectivity = conn
		default:
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(conn))
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a cell is first discovered.
func WithOnVisit(fn func(c grid.Cell, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after everything reachable from a cell has been explored.
func WithOnExit(fn func(c grid.Cell) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start cell is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters steps.
// If fn(from, to) == false, that step is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(from, to grid.Cell) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-grid traversal.
// When set, DFS will restart from each unvisited cell, covering disconnected areas.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports post-order, discovery depths, parent links, and visited flags,
// as well as diagnostics like SkippedNeighbors.
type DFSResult struct {
	// Order records cells in the sequence they finished (post-order).
	Order []grid.Cell

	// Depth maps each cell to its depth in the DFS tree (not a shortest distance).
	Depth map[grid.Cell]int

	// Parent maps each cell to the cell from which it was first discovered.
	// The root of each DFS tree does not appear in this map.
	Parent map[grid.Cell]grid.Cell

	// Visited flags which cells were reached during the traversal.
	Visited map[grid.Cell]bool

	// SkippedNeighbors reports how many steps were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
