// Package search defines options, control signals, sentinel errors and
// result types shared by the four pathfinding algorithms.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned when a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrCellNil is returned when the start or end cell reference is nil.
	ErrCellNil = errors.New("search: start and end cells must be non-nil")

	// ErrSameCell is returned when start and end refer to the same cell.
	ErrSameCell = errors.New("search: start and end must differ")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// StepEvent is one outbound report: the coordinate that changed and its new
// semantic state, sufficient for a renderer to redraw the cell.
type StepEvent struct {
	Row, Col int
	State    grid.State
}

// Report observes step events. Purely observational: no return value is
// consumed and the engine never blocks on its result beyond the call itself.
type Report func(StepEvent)

// Result is the outcome of one algorithm invocation.
//
//   - Found: whether the end cell was reached.
//   - Visited: cells actually expanded (popped and processed), excluding
//     start and end.
//   - PathLen: cells on the reconstructed path from start to end inclusive;
//     0 when not found.
type Result struct {
	Found   bool
	Visited int
	PathLen int
}

// defaultPollInterval paces the pause spin-wait so a paused run keeps
// servicing cancel signals without burning a core.
const defaultPollInterval = 10 * time.Millisecond

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a negative poll interval), it is recorded
// internally and surfaced as ErrOptionViolation when the algorithm runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search run.
type Options struct {
	// Ctx allows cancellation and deadlines alongside the Control handle.
	Ctx context.Context

	// OnStep is called for every reportable state change.
	OnStep Report

	// Control is the shared pause/cancel handle polled at the top of each
	// iteration. Nil means the run cannot be paused or cancelled externally.
	Control *Control

	// Heuristic names the distance estimate for A* (see package heuristic).
	// Unrecognized names fall back to Manhattan. Ignored by BFS, DFS and
	// Dijkstra.
	Heuristic string

	// PollInterval paces the pause spin-wait.
	PollInterval time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnStep
//   - no Control handle (uncontrolled run)
//   - Manhattan heuristic
//   - 10ms pause poll interval.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnStep:       func(StepEvent) {},
		Control:      nil,
		Heuristic:    "manhattan",
		PollInterval: defaultPollInterval,
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the per-step report callback.
func WithOnStep(fn Report) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithControl attaches the shared pause/cancel handle.
func WithControl(c *Control) Option {
	return func(o *Options) {
		if c != nil {
			o.Control = c
		}
	}
}

// WithHeuristic selects the A* heuristic by method name
// ("manhattan", "euclidean", "chebyshev"/"diagonal").
// Unrecognized names fall back to Manhattan.
func WithHeuristic(name string) Option {
	return func(o *Options) {
		o.Heuristic = name
	}
}

// WithPollInterval overrides the pause poll pacing.
//
//	d > 0:  poll every d
//	d == 0: explicit default
//	d < 0:  invalid option → ErrOptionViolation
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: PollInterval cannot be negative (%v)", ErrOptionViolation, d)
		case d == 0:
			o.PollInterval = defaultPollInterval
		default:
			o.PollInterval = d
		}
	}
}
