package grid

import "strings"

// Grid owns a square rows×rows lattice of cells. The pixel size of the
// drawing area is logical geometry only: the grid maps clicks to cells and
// cells to pixel origins, but never draws.
type Grid struct {
	rows  int
	size  int // pixel width of the square drawing area
	gap   int // pixel size of one cell, size/rows
	cells [][]*Cell
}

// New allocates a rows×rows grid of Empty cells with pixel geometry derived
// from size. Returns ErrBadDimensions when rows or size is non-positive or
// when size/rows rounds down to zero pixels per cell.
// Complexity: O(rows²) time and memory.
func New(rows, size int) (*Grid, error) {
	if rows <= 0 || size <= 0 || size/rows < 1 {
		return nil, ErrBadDimensions
	}
	g := &Grid{rows: rows, size: size, gap: size / rows}
	g.cells = g.build()

	return g, nil
}

// build allocates a fresh cell matrix with derived pixel origins.
func (g *Grid) build() [][]*Cell {
	cells := make([][]*Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]*Cell, g.rows)
		for c := 0; c < g.rows; c++ {
			cells[r][c] = &Cell{Row: r, Col: c, x: c * g.gap, y: r * g.gap}
		}
	}

	return cells
}

// Rows returns the row (and column) count.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the derived pixel size of one cell.
func (g *Grid) CellSize() int { return g.gap }

// InBounds reports whether (row, col) lies within the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.rows
}

// CellAt returns the cell at (row, col), or ErrOutOfBounds.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, ErrOutOfBounds
	}

	return g.cells[row][col], nil
}

// Location maps a pixel position inside the drawing area to grid
// coordinates, for click handling. Returns ErrOutOfBounds for positions
// outside the rows×rows cell region.
func (g *Grid) Location(x, y int) (row, col int, err error) {
	if x < 0 || y < 0 {
		return 0, 0, ErrOutOfBounds
	}
	row, col = y/g.gap, x/g.gap
	if !g.InBounds(row, col) {
		return 0, 0, ErrOutOfBounds
	}

	return row, col, nil
}

// EachCell invokes fn for every cell in row-major order.
func (g *Grid) EachCell(fn func(*Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// RefreshAllNeighbors rebuilds every cell's neighbor cache against the
// current barrier layout. Must be called after any barrier mutation and
// before a search run starts. Neighbor order is down, up, right, left;
// barriers and out-of-bounds positions are excluded.
// Complexity: O(rows²).
func (g *Grid) RefreshAllNeighbors() {
	g.EachCell(func(c *Cell) {
		c.neighbors = c.neighbors[:0]
		// down
		if c.Row+1 < g.rows && !g.cells[c.Row+1][c.Col].IsBarrier() {
			c.neighbors = append(c.neighbors, g.cells[c.Row+1][c.Col])
		}
		// up
		if c.Row > 0 && !g.cells[c.Row-1][c.Col].IsBarrier() {
			c.neighbors = append(c.neighbors, g.cells[c.Row-1][c.Col])
		}
		// right
		if c.Col+1 < g.rows && !g.cells[c.Row][c.Col+1].IsBarrier() {
			c.neighbors = append(c.neighbors, g.cells[c.Row][c.Col+1])
		}
		// left
		if c.Col > 0 && !g.cells[c.Row][c.Col-1].IsBarrier() {
			c.neighbors = append(c.neighbors, g.cells[c.Row][c.Col-1])
		}
	})
}

// ClearPath reverts every cell outside {Start, End, Barrier} to Empty and
// reasserts the start and end tags defensively. Either reference may be nil.
func (g *Grid) ClearPath(start, end *Cell) {
	g.EachCell(func(c *Cell) {
		if !c.IsStart() && !c.IsEnd() && !c.IsBarrier() {
			c.Reset()
		}
	})
	if start != nil {
		start.MakeStart()
	}
	if end != nil {
		end.MakeEnd()
	}
}

// ClearAll discards all cells and rebuilds the lattice fresh, losing
// barriers, start and end. Cell references obtained before ClearAll are
// detached from the grid afterwards.
func (g *Grid) ClearAll() {
	g.cells = g.build()
}

// String renders an ASCII snapshot, one glyph per cell:
// '.' Empty, '#' Barrier, 'S' Start, 'E' End, 'o' Frontier, 'x' Visited,
// '*' Path. Rows are newline-separated.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.rows + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.rows; c++ {
			b.WriteByte(stateRunes[g.cells[r][c].state])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
