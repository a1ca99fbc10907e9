// Package grid defines the cell state taxonomy and sentinel errors for the
// gridpath lattice model.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates non-positive row count or a pixel size too
	// small to give every cell at least one pixel.
	ErrBadDimensions = errors.New("grid: rows and size must be positive, with size >= rows")

	// ErrOutOfBounds indicates a coordinate or pixel position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// State is the semantic tag of a cell. It carries no visual meaning; a
// renderer owns the state→presentation mapping.
type State uint8

const (
	// Empty marks an untouched, traversable cell.
	Empty State = iota
	// Barrier marks an impassable cell, excluded from neighbor caches.
	Barrier
	// Start marks the single search origin.
	Start
	// End marks the single search target.
	End
	// Frontier marks a discovered cell awaiting expansion.
	Frontier
	// Visited marks an expanded cell.
	Visited
	// Path marks a cell on the reconstructed start→end path.
	Path
)

// stateNames indexes State values for String.
var stateNames = [...]string{"Empty", "Barrier", "Start", "End", "Frontier", "Visited", "Path"}

// String returns the state name, or "Unknown" for out-of-range values.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "Unknown"
}

// stateRunes maps states to single-rune glyphs for Grid.String snapshots.
var stateRunes = [...]byte{'.', '#', 'S', 'E', 'o', 'x', '*'}

// Cell is one grid position. Row and Col are 0-based indices; the neighbor
// cache is owned by the grid and rebuilt by RefreshAllNeighbors.
type Cell struct {
	Row, Col  int
	state     State
	neighbors []*Cell
	x, y      int // pixel origin, derived from the grid cell size
}

// Pos returns the (row, col) coordinate pair.
func (c *Cell) Pos() (row, col int) { return c.Row, c.Col }

// X returns the pixel x-origin of the cell (column axis).
func (c *Cell) X() int { return c.x }

// Y returns the pixel y-origin of the cell (row axis).
func (c *Cell) Y() int { return c.y }

// State returns the current semantic tag.
func (c *Cell) State() State { return c.state }

// Neighbors returns the cached adjacency list in down, up, right, left
// order. The slice is valid until the next RefreshAllNeighbors call.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// IsBarrier reports whether the cell is impassable.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// IsStart reports whether the cell is the search origin.
func (c *Cell) IsStart() bool { return c.state == Start }

// IsEnd reports whether the cell is the search target.
func (c *Cell) IsEnd() bool { return c.state == End }

// Reset reverts the cell to Empty.
func (c *Cell) Reset() { c.state = Empty }

// MakeBarrier tags the cell impassable. Callers must refresh neighbor
// caches before the next run.
func (c *Cell) MakeBarrier() { c.state = Barrier }

// MakeStart tags the cell as the search origin.
func (c *Cell) MakeStart() { c.state = Start }

// MakeEnd tags the cell as the search target.
func (c *Cell) MakeEnd() { c.state = End }

// MakeFrontier tags the cell as discovered but not yet expanded.
func (c *Cell) MakeFrontier() { c.state = Frontier }

// MakeVisited tags the cell as expanded.
func (c *Cell) MakeVisited() { c.state = Visited }

// MakePath tags the cell as part of the reconstructed path.
func (c *Cell) MakePath() { c.state = Path }
