package search

import (
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates the state every algorithm shares: validated inputs,
// parsed options, the predecessor map and the visited counter.
type walker struct {
	grid       *grid.Grid
	start, end *grid.Cell
	opts       Options
	cameFrom   map[*grid.Cell]*grid.Cell
	visited    int
}

// newWalker validates inputs, applies options, and prepares per-run state.
func newWalker(g *grid.Grid, start, end *grid.Cell, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if start == nil || end == nil {
		return nil, ErrCellNil
	}
	if start == end {
		return nil, ErrSameCell
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker{
		grid:     g,
		start:    start,
		end:      end,
		opts:     o,
		cameFrom: make(map[*grid.Cell]*grid.Cell, g.Rows()*g.Rows()),
	}, nil
}

// checkpoint polls the control handle and context at the top of an
// iteration. While paused it sleeps the poll interval between checks so the
// hosting application stays responsive without a busy loop. stop=true means
// the run must end now; err is non-nil only for context cancellation.
func (w *walker) checkpoint() (stop bool, err error) {
	for {
		select {
		case <-w.opts.Ctx.Done():
			return true, w.opts.Ctx.Err()
		default:
		}
		if w.opts.Control == nil {
			return false, nil
		}
		if w.opts.Control.Cancelled() {
			return true, nil
		}
		if !w.opts.Control.Paused() {
			return false, nil
		}
		time.Sleep(w.opts.PollInterval)
	}
}

// report emits one StepEvent for c's current state.
func (w *walker) report(c *grid.Cell) {
	w.opts.OnStep(StepEvent{Row: c.Row, Col: c.Col, State: c.State()})
}

// markFrontier tags a newly discovered cell and reports it. Start and end
// keep their tags so a renderer never loses the endpoints.
func (w *walker) markFrontier(c *grid.Cell) {
	if c == w.start || c == w.end {
		return
	}
	c.MakeFrontier()
	w.report(c)
}

// markVisited tags an expanded cell, reports it, and bumps the counter.
// Start and end are excluded from both the tag and the count.
func (w *walker) markVisited(c *grid.Cell) {
	if c == w.start || c == w.end {
		return
	}
	c.MakeVisited()
	w.report(c)
	w.visited++
}

// success reconstructs the path, reasserts the endpoint tags, and returns
// the found Result.
func (w *walker) success() (*Result, error) {
	pathLen := w.reconstruct()
	w.end.MakeEnd()
	w.start.MakeStart()
	w.report(w.end)
	w.report(w.start)

	return &Result{Found: true, Visited: w.visited, PathLen: pathLen}, nil
}

// reconstruct walks the predecessor map from end back toward start, tagging
// each intermediate cell as Path and reporting every step so playback is
// visibly animated. Returns the path length in cells, start and end
// inclusive.
func (w *walker) reconstruct() int {
	intermediate := 0
	cur := w.end
	for {
		prev, ok := w.cameFrom[cur]
		if !ok {
			break
		}
		cur = prev
		if cur == w.start {
			continue
		}
		cur.MakePath()
		w.report(cur)
		intermediate++
	}

	return intermediate + 2
}

// exhausted returns the frontier-empty outcome: no path exists.
func (w *walker) exhausted() (*Result, error) {
	return &Result{Found: false, Visited: w.visited, PathLen: 0}, nil
}

// interrupted returns the partial outcome after a cancel or context abort.
// Control cancellation is a defined terminal state (err == nil); a context
// abort carries ctx.Err() through.
func (w *walker) interrupted(err error) (*Result, error) {
	return &Result{Found: false, Visited: w.visited, PathLen: 0}, err
}
