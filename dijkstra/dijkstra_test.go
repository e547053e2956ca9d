// Package dijkstra_test contains unit tests for the grid Dijkstra
// implementation: validation, basic distances and paths, walls,
// MaxDistance, targets and agreement with breadth-first search.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/bfs"
	"github.com/katalvlaran/puzzlekit/dijkstra"
	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/parsing"
)

func unit(_, _ grid.Cell) int { return 1 }

// risk is the 10×10 example cave from the chiton puzzle; the lowest total
// risk from the top left to the bottom right is 40.
const risk = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
`

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := grid.MustNew([][]int{{1, 2}, {3, 4}})

	_, err := dijkstra.Dijkstra[int](nil, grid.Origin, unit)
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	_, err = dijkstra.Dijkstra(g, grid.Origin, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilCost)

	_, err = dijkstra.Dijkstra(g, grid.NewCell(2, 0), unit)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfBounds)

	_, err = dijkstra.Dijkstra(g, grid.Origin, func(_, _ grid.Cell) int { return -1 })
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assertPanicsWith := func(t *testing.T, target error, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, target))
		}()
		fn()
	}
	assertPanicsWith(t, dijkstra.ErrBadMaxDistance, func() { dijkstra.WithMaxDistance(-1) })
	assertPanicsWith(t, dijkstra.ErrBadInfThreshold, func() { dijkstra.WithInfCostThreshold(0) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: distances and paths.
// ------------------------------------------------------------------------

func TestDijkstra_RiskCave(t *testing.T) {
	g := parsing.Must(parsing.SingleDigitGrid().Parse(risk))
	goal := grid.NewCell(9, 9)

	res, err := dijkstra.Dijkstra(g, grid.Origin, dijkstra.ValueCost(g), dijkstra.WithReturnPath())
	require.NoError(t, err)

	d, ok := res.Distance(goal)
	require.True(t, ok)
	assert.Equal(t, 40, d)

	path, err := res.PathTo(goal)
	require.NoError(t, err)
	assert.Equal(t, grid.Origin, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	total := 0
	for i := 1; i < len(path); i++ {
		require.Equal(t, 1, path[i-1].ManhattanDistance(path[i]))
		v, _ := g.Element(path[i])
		total += v
	}
	assert.Equal(t, 40, total, "path cost matches distance")
}

func TestDijkstra_PathWithoutReturnPath(t *testing.T) {
	g := grid.MustNew([][]int{{1, 1}})
	res, err := dijkstra.Dijkstra(g, grid.Origin, unit)
	require.NoError(t, err)
	assert.Nil(t, res.Prev)
	_, err = res.PathTo(grid.NewCell(0, 1))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_SourcePath(t *testing.T) {
	g := grid.MustNew([][]int{{5}})
	res, err := dijkstra.Dijkstra(g, grid.Origin, unit, dijkstra.WithReturnPath())
	require.NoError(t, err)
	path, err := res.PathTo(grid.Origin)
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{grid.Origin}, path)
}

// TestDijkstra_UnitCostMatchesBFS checks that with unit prices the
// distances are exactly the BFS depths.
func TestDijkstra_UnitCostMatchesBFS(t *testing.T) {
	g := parsing.Must(parsing.CharacterGrid().Parse("..#.....\n.##.###.\n....#...\n###.#.#.\n......#.\n"))
	wall := func(c grid.Cell) bool { v, _ := g.Element(c); return v == '#' }

	cost := func(_, to grid.Cell) int {
		if wall(to) {
			return 1000
		}
		return 1
	}
	res, err := dijkstra.Dijkstra(g, grid.Origin, cost, dijkstra.WithInfCostThreshold(1000))
	require.NoError(t, err)

	walk, err := bfs.BFS(g, grid.Origin, bfs.WithFilterNeighbor(func(_, to grid.Cell) bool { return !wall(to) }))
	require.NoError(t, err)

	assert.Equal(t, walk.Depth, res.Dist)
}

// ------------------------------------------------------------------------
// 3. Limits: walls, MaxDistance, target, connectivity.
// ------------------------------------------------------------------------

func TestDijkstra_InfCostThreshold(t *testing.T) {
	g := grid.MustNew([][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	})
	res, err := dijkstra.Dijkstra(g, grid.Origin, dijkstra.ValueCost(g), dijkstra.WithInfCostThreshold(9))
	require.NoError(t, err)

	d, ok := res.Distance(grid.NewCell(0, 2))
	require.True(t, ok)
	assert.Equal(t, 6, d, "detour around the 9s")
	_, ok = res.Distance(grid.NewCell(0, 1))
	assert.False(t, ok)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := grid.MustNew([][]int{{0, 0, 0, 0, 0, 0}})
	res, err := dijkstra.Dijkstra(g, grid.Origin, unit, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Len(t, res.Dist, 4)
	_, ok := res.Distance(grid.NewCell(0, 4))
	assert.False(t, ok)
}

func TestDijkstra_Target(t *testing.T) {
	g := parsing.Must(parsing.SingleDigitGrid().Parse(risk))
	goal := grid.NewCell(9, 9)
	full, err := dijkstra.Dijkstra(g, grid.Origin, dijkstra.ValueCost(g))
	require.NoError(t, err)
	early, err := dijkstra.Dijkstra(g, grid.Origin, dijkstra.ValueCost(g), dijkstra.WithTarget(goal))
	require.NoError(t, err)

	want, _ := full.Distance(goal)
	got, ok := early.Distance(goal)
	require.True(t, ok)
	assert.Equal(t, want, got)

	near, err := dijkstra.Dijkstra(g, grid.Origin, dijkstra.ValueCost(g), dijkstra.WithTarget(grid.NewCell(0, 1)))
	require.NoError(t, err)
	assert.Less(t, len(near.Dist), len(full.Dist))
}

func TestDijkstra_Conn8(t *testing.T) {
	g := grid.MustNew([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	res, err := dijkstra.Dijkstra(g, grid.Origin, unit, dijkstra.WithConnectivity(grid.Conn8))
	require.NoError(t, err)
	d, _ := res.Distance(grid.NewCell(2, 2))
	assert.Equal(t, 2, d)
}
