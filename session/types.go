// Package session defines run configuration, result and sentinel error
// types for the control layer.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for session operations.
var (
	// ErrNoStart is returned by Run when no start cell is designated.
	ErrNoStart = errors.New("session: start cell not set")

	// ErrNoEnd is returned by Run when no end cell is designated.
	ErrNoEnd = errors.New("session: end cell not set")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("session: unknown algorithm")

	// ErrCellOccupied rejects a mutation that would collide with the start,
	// end, or a barrier already holding the target cell.
	ErrCellOccupied = errors.New("session: cell already occupied")
)

// Canonical algorithm names accepted by Run.
const (
	AlgoBFS      = "BFS"
	AlgoDFS      = "DFS"
	AlgoDijkstra = "Dijkstra"
	AlgoAStar    = "A*"
)

// Algorithms lists the canonical algorithm names, suitable for populating a
// selection widget.
func Algorithms() []string {
	return []string{AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoAStar}
}

// Reporter observes step events together with the advisory pacing hint
// supplied via WithDelayHint. The hint is forwarded verbatim; the engine
// never interprets it.
type Reporter func(ev search.StepEvent, delay time.Duration)

// RunResult is the recorded outcome of one Run invocation.
type RunResult struct {
	search.Result
	Algorithm string
	Elapsed   time.Duration
}

// ElapsedSeconds returns the wall-clock duration in seconds.
func (r RunResult) ElapsedSeconds() float64 { return r.Elapsed.Seconds() }

// String renders a one-line status suitable for a stats overlay.
func (r RunResult) String() string {
	if !r.Found {
		return fmt.Sprintf("%s: no path (visited %d, %.4fs)", r.Algorithm, r.Visited, r.ElapsedSeconds())
	}

	return fmt.Sprintf("%s: path of %d cells (visited %d, %.4fs)",
		r.Algorithm, r.PathLen, r.Visited, r.ElapsedSeconds())
}

// RunOption configures a single Run invocation.
type RunOption func(*runConfig)

// runConfig holds per-run settings assembled from RunOptions.
type runConfig struct {
	reporter  Reporter
	delayHint time.Duration
	heuristic string
}

// defaultRunConfig returns the per-run defaults: no reporter, no pacing
// hint, Manhattan heuristic.
func defaultRunConfig() runConfig {
	return runConfig{heuristic: "manhattan"}
}

// WithReporter registers the step observer for this run.
func WithReporter(fn Reporter) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.reporter = fn
		}
	}
}

// WithDelayHint sets the advisory pacing hint forwarded to the reporter.
// Negative hints are clamped to zero.
func WithDelayHint(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d < 0 {
			d = 0
		}
		c.delayHint = d
	}
}

// WithHeuristic selects the A* heuristic by method name for this run.
// Ignored by the other algorithms.
func WithHeuristic(name string) RunOption {
	return func(c *runConfig) {
		if name != "" {
			c.heuristic = name
		}
	}
}
