package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// benchGrid builds a 50×50 grid with a staggered wall pattern that forces
// every search to weave.
func benchGrid(b *testing.B) (*grid.Grid, *grid.Cell, *grid.Cell) {
	b.Helper()
	g, err := grid.New(50, 500)
	if err != nil {
		b.Fatalf("grid.New: %v", err)
	}
	for r := 5; r < 50; r += 5 {
		gap := (r / 5) % 2 * 48 // alternate the gap between left and right edges
		for c := 0; c < 50; c++ {
			if c == gap {
				continue
			}
			cell, _ := g.CellAt(r, c)
			cell.MakeBarrier()
		}
	}
	start, _ := g.CellAt(0, 0)
	end, _ := g.CellAt(49, 49)
	start.MakeStart()
	end.MakeEnd()
	g.RefreshAllNeighbors()

	return g, start, end
}

func BenchmarkBFS(b *testing.B) {
	g, start, end := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.BFS(g, start, end); err != nil {
			b.Fatal(err)
		}
		b.StopTimer()
		g.ClearPath(start, end)
		b.StartTimer()
	}
}

func BenchmarkDijkstra(b *testing.B) {
	g, start, end := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Dijkstra(g, start, end); err != nil {
			b.Fatal(err)
		}
		b.StopTimer()
		g.ClearPath(start, end)
		b.StartTimer()
	}
}

func BenchmarkAStar(b *testing.B) {
	g, start, end := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.AStar(g, start, end); err != nil {
			b.Fatal(err)
		}
		b.StopTimer()
		g.ClearPath(start, end)
		b.StartTimer()
	}
}
