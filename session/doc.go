// Package session orchestrates pathfinding runs over a single grid: it
// owns the lattice, the start/end designations, the shared pause/cancel
// handle, and the statistics of the last run.
//
// What
//
//   - Grid editing: SetStart/SetEnd (exactly one of each; setting a new one
//     reverts the previous holder), ClearStart/ClearEnd, ToggleBarrier,
//     ClearPath, Reset.
//   - Run dispatch: Run(algorithm, opts...) validates that both endpoints
//     are set, refreshes every neighbor cache so barrier edits take effect,
//     selects the algorithm by name (BFS, DFS, Dijkstra, A*), measures wall
//     clock around the call, and records the RunResult.
//   - Control: Pause, Resume, TogglePause and Cancel forward to the shared
//     search.Control handle observed by the running algorithm.
//   - Reporting: WithReporter receives every StepEvent together with the
//     advisory delay hint (WithDelayHint) so the renderer, not the engine,
//     owns pacing.
//
// Error handling
//
//	All validation failures (no start, no end, unknown algorithm, occupied
//	or out-of-bounds cells) are surfaced as sentinel errors before any state
//	is mutated; no failure is fatal and the session remains fully usable
//	afterwards — cancellation in particular is a defined outcome, not an
//	error.
//
// A session is single-threaded by contract: one run at a time, executing
// synchronously inside Run. Only the control handle may be touched from
// other goroutines.
package session
