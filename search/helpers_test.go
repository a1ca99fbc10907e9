package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// fixture builds a ready-to-search grid: barriers applied, start/end tagged,
// neighbor caches refreshed.
type fixture struct {
	g          *grid.Grid
	start, end *grid.Cell
}

// newFixture allocates a rows×rows grid with the given barrier coordinates
// and endpoints, and refreshes the neighbor caches.
func newFixture(t *testing.T, rows int, barriers [][2]int, start, end [2]int) fixture {
	t.Helper()
	g, err := grid.New(rows, rows*10)
	if err != nil {
		t.Fatalf("grid.New(%d): %v", rows, err)
	}
	for _, b := range barriers {
		c, cerr := g.CellAt(b[0], b[1])
		if cerr != nil {
			t.Fatalf("barrier (%d,%d): %v", b[0], b[1], cerr)
		}
		c.MakeBarrier()
	}
	s, err := g.CellAt(start[0], start[1])
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	e, err := g.CellAt(end[0], end[1])
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	s.MakeStart()
	e.MakeEnd()
	g.RefreshAllNeighbors()

	return fixture{g: g, start: s, end: e}
}

// fullRowBarrier returns barrier coordinates sealing an entire row.
func fullRowBarrier(row, cols int) [][2]int {
	bs := make([][2]int, 0, cols)
	for c := 0; c < cols; c++ {
		bs = append(bs, [2]int{row, c})
	}

	return bs
}
