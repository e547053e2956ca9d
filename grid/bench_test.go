package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlekit/grid"
)

// sinks to defeat dead-code elimination
var (
	sinkSet     grid.CellSet
	sinkRegions [][]grid.Cell
	sinkGrid    *grid.Grid[int]
)

// randomGrid builds an n×n grid of values in [0, k) from a fixed seed.
func randomGrid(b *testing.B, n, k int) *grid.Grid[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(1337))
	rows := make([][]int, n)
	for r := range rows {
		rows[r] = make([]int, n)
		for c := range rows[r] {
			rows[r][c] = rng.Intn(k)
		}
	}

	return grid.MustNew(rows)
}

func BenchmarkGrid_Neighbours(b *testing.B) {
	g := randomGrid(b, 64, 4)
	c := grid.NewCell(32, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkSet = g.Neighbours(c)
	}
}

func BenchmarkGrid_Regions(b *testing.B) {
	g := randomGrid(b, 128, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkRegions = g.Regions(grid.Conn4)
	}
}

func BenchmarkMap(b *testing.B) {
	g := randomGrid(b, 128, 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkGrid = grid.Map(g, func(v int) int { return v + 1 })
	}
}
