// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/puzzlekit/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrSourceOutOfBounds indicates that the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell out of bounds")

	// ErrNegativeCost indicates that the cost function priced a step below zero.
	ErrNegativeCost = errors.New("dijkstra: negative step cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfCostThreshold was set to zero or negative,
	// which would treat every step (including free ones) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfCostThreshold must be positive")

	// ErrNoPath is returned by PathTo for a cell that was not reached, or
	// when the predecessor map was not requested.
	ErrNoPath = errors.New("dijkstra: no path to cell")
)

// CostFunc prices a single step from one cell into an adjacent one.
type CostFunc func(from, to grid.Cell) int

// Options configures the behavior of the Dijkstra algorithm.
//
// Connectivity     – 4- or 8-neighbour moves. Default grid.Conn4.
// ReturnPath       – if true, fill Result.Prev; otherwise it stays nil.
// MaxDistance      – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
//
// InfCostThreshold – treat steps costing ≥ this threshold as walls.
//
//	Must be > 0. Default is math.MaxInt (no walls).
//
// Target           – stop as soon as this cell's distance is final.
type Options struct {
	Connectivity     grid.Connectivity
	ReturnPath       bool
	MaxDistance      int
	InfCostThreshold int
	Target           grid.Cell
	HasTarget        bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithConnectivity selects the neighbourhood used for each step.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = conn
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, Result.Prev is nil and PathTo fails with ErrNoPath.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// A negative value is a programmer error: it panics with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(fmt.Errorf("%w: got %d", ErrBadMaxDistance, max))
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfCostThreshold defines a step cost at or above which a move is
// treated as impassable. Zero or negative values panic with ErrBadInfThreshold.
func WithInfCostThreshold(threshold int) Option {
	if threshold <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold))
	}

	return func(o *Options) {
		o.InfCostThreshold = threshold
	}
}

// WithTarget stops the search once target has been settled. Distances to
// other cells are then only partial.
func WithTarget(target grid.Cell) Option {
	return func(o *Options) {
		o.Target = target
		o.HasTarget = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Connectivity:     grid.Conn4.
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      math.MaxInt (no distance limit; explore all reachable).
//   - InfCostThreshold: math.MaxInt (no steps treated as impassable).
//   - no target.
func DefaultOptions() Options {
	return Options{
		Connectivity:     grid.Conn4,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt,
		InfCostThreshold: math.MaxInt,
	}
}

// Result holds the outcome of a Dijkstra run.
//
// Dist maps every settled or tentatively reached cell to its best-known
// distance from the source; cells never reached are absent.
// Prev is non-nil only with WithReturnPath: Prev[v] == u means the best
// path to v steps from u. The source has no entry.
type Result struct {
	Source grid.Cell
	Dist   map[grid.Cell]int
	Prev   map[grid.Cell]grid.Cell
}

// Distance returns the distance to c, or ok == false when c was not reached.
func (r *Result) Distance(c grid.Cell) (int, bool) {
	d, ok := r.Dist[c]
	return d, ok
}

// PathTo reconstructs the cheapest path from the source to dest, both included.
func (r *Result) PathTo(dest grid.Cell) ([]grid.Cell, error) {
	if r.Prev == nil {
		return nil, fmt.Errorf("%w: predecessor map not recorded (use WithReturnPath)", ErrNoPath)
	}
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v not reached", ErrNoPath, dest)
	}
	path := []grid.Cell{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// ValueCost prices a step by the value of the cell stepped into, the usual
// rule for risk-level and heat-loss grids.
func ValueCost(g *grid.Grid[int]) CostFunc {
	return func(_, to grid.Cell) int {
		v, _ := g.Element(to)
		return v
	}
}
