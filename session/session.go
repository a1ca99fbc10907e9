package session

import (
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Session owns one grid, the current start/end designations, the shared
// control handle, and the last run's statistics.
type Session struct {
	grid       *grid.Grid
	start, end *grid.Cell
	ctrl       *search.Control
	last       *RunResult
}

// New creates a session over a fresh rows×rows grid with pixel size as
// logical geometry (see grid.New for dimension validation).
func New(rows, size int) (*Session, error) {
	g, err := grid.New(rows, size)
	if err != nil {
		return nil, err
	}

	return &Session{grid: g, ctrl: search.NewControl()}, nil
}

// Grid exposes the owned lattice for rendering and inspection.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Start returns the current start cell, or nil when unset.
func (s *Session) Start() *grid.Cell { return s.start }

// End returns the current end cell, or nil when unset.
func (s *Session) End() *grid.Cell { return s.end }

// Control returns the shared pause/cancel handle.
func (s *Session) Control() *search.Control { return s.ctrl }

// Last returns the statistics of the most recent run, or nil before the
// first run (and after ClearPath or Reset, which drop stale stats).
func (s *Session) Last() *RunResult { return s.last }

// SetStart designates the start cell, reverting any previous holder to
// Empty. Barrier cells and the current end cell are rejected with
// ErrCellOccupied; exactly one cell holds the Start tag at any time.
func (s *Session) SetStart(row, col int) error {
	c, err := s.grid.CellAt(row, col)
	if err != nil {
		return err
	}
	if c.IsBarrier() || c == s.end {
		return ErrCellOccupied
	}
	if s.start != nil && s.start != c {
		s.start.Reset()
	}
	c.MakeStart()
	s.start = c

	return nil
}

// ClearStart reverts the start cell, if any, to Empty.
func (s *Session) ClearStart() {
	if s.start != nil {
		s.start.Reset()
		s.start = nil
	}
}

// SetEnd designates the end cell, reverting any previous holder to Empty.
// Barrier cells and the current start cell are rejected with
// ErrCellOccupied; exactly one cell holds the End tag at any time.
func (s *Session) SetEnd(row, col int) error {
	c, err := s.grid.CellAt(row, col)
	if err != nil {
		return err
	}
	if c.IsBarrier() || c == s.start {
		return ErrCellOccupied
	}
	if s.end != nil && s.end != c {
		s.end.Reset()
	}
	c.MakeEnd()
	s.end = c

	return nil
}

// ClearEnd reverts the end cell, if any, to Empty.
func (s *Session) ClearEnd() {
	if s.end != nil {
		s.end.Reset()
		s.end = nil
	}
}

// ToggleBarrier flips the barrier tag of the addressed cell. Start and end
// cells are rejected with ErrCellOccupied. Neighbor caches are refreshed at
// the next Run, not here, so rapid paint strokes stay cheap.
func (s *Session) ToggleBarrier(row, col int) error {
	c, err := s.grid.CellAt(row, col)
	if err != nil {
		return err
	}
	if c == s.start || c == s.end {
		return ErrCellOccupied
	}
	if c.IsBarrier() {
		c.Reset()
	} else {
		c.MakeBarrier()
	}

	return nil
}

// ClearPath wipes search residue (Frontier, Visited, Path tags) while
// preserving start, end and barriers, and drops stale statistics.
func (s *Session) ClearPath() {
	s.grid.ClearPath(s.start, s.end)
	s.last = nil
}

// Reset rebuilds the grid from scratch, dropping barriers, endpoints and
// statistics.
func (s *Session) Reset() {
	s.grid.ClearAll()
	s.start, s.end = nil, nil
	s.last = nil
}

// Pause requests the active run to hold at its next checkpoint.
func (s *Session) Pause() { s.ctrl.Pause() }

// Resume releases a pending pause.
func (s *Session) Resume() { s.ctrl.Resume() }

// TogglePause flips the pause flag and reports the new state.
func (s *Session) TogglePause() bool { return s.ctrl.TogglePause() }

// Cancel aborts the active run within one iteration.
func (s *Session) Cancel() { s.ctrl.Cancel() }

// Run validates prerequisites, refreshes every neighbor cache so barrier
// edits take effect, dispatches the named algorithm and records wall-clock
// time around the call. Cancellation yields Found=false with partial
// statistics and a nil error; the session stays usable after any outcome.
func (s *Session) Run(algorithm string, opts ...RunOption) (*RunResult, error) {
	if s.start == nil {
		return nil, ErrNoStart
	}
	if s.end == nil {
		return nil, ErrNoEnd
	}
	algo, name, err := dispatch(algorithm)
	if err != nil {
		return nil, err
	}

	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	onStep := func(search.StepEvent) {}
	if cfg.reporter != nil {
		rep, delay := cfg.reporter, cfg.delayHint
		onStep = func(ev search.StepEvent) { rep(ev, delay) }
	}

	// barrier edits since the last run take effect here
	s.grid.RefreshAllNeighbors()
	s.ctrl.Rearm()

	began := time.Now()
	res, err := algo(s.grid, s.start, s.end,
		search.WithControl(s.ctrl),
		search.WithOnStep(onStep),
		search.WithHeuristic(cfg.heuristic),
	)
	elapsed := time.Since(began)
	if err != nil {
		return nil, err
	}

	s.last = &RunResult{Result: *res, Algorithm: name, Elapsed: elapsed}

	return s.last, nil
}

// algoFunc is the common algorithm signature dispatched by Run.
type algoFunc func(*grid.Grid, *grid.Cell, *grid.Cell, ...search.Option) (*search.Result, error)

// dispatch resolves an algorithm name, case-insensitively, to its
// implementation and canonical name.
func dispatch(name string) (algoFunc, string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return search.BFS, AlgoBFS, nil
	case "dfs":
		return search.DFS, AlgoDFS, nil
	case "dijkstra":
		return search.Dijkstra, AlgoDijkstra, nil
	case "a*", "astar":
		return search.AStar, AlgoAStar, nil
	default:
		return nil, "", ErrUnknownAlgorithm
	}
}
