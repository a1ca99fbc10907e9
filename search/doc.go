// Package search implements four step-wise pathfinding algorithms — BFS,
// DFS, Dijkstra and A* — over a gridpath grid, sharing one exploration
// protocol built for live visualization.
//
// What
//
//   - One call signature for all algorithms:
//     BFS/DFS/Dijkstra/AStar(g, start, end, opts...) (*Result, error).
//   - A per-step report hook (WithOnStep) fired for every state change a
//     renderer would need to redraw: frontier discovery, cell expansion,
//     and each path-reconstruction step.
//   - A shared Control handle (WithControl) polled at the top of every
//     iteration: pause blocks cooperatively without busy-spinning, cancel
//     aborts within one iteration and yields a well-formed partial Result.
//   - Context support (WithContext) in addition to the Control handle.
//
// Semantics
//
//   - BFS: FIFO frontier, each cell discovered at most once, first
//     discovery wins; optimal for unit edge costs.
//   - DFS: LIFO frontier, neighbors pushed in reverse so the first
//     neighbor is expanded first; finds a path, not necessarily shortest.
//   - Dijkstra: min-heap keyed by accumulated cost g, lazy deletion of
//     stale entries, deterministic tie-break by insertion sequence number.
//   - A*: min-heap keyed by f = g + heuristic(cell, end), same lazy
//     deletion and tie-break discipline; heuristic chosen by name via
//     WithHeuristic, Manhattan by default.
//
// Determinism
//
//	Neighbor order is fixed by the grid (down, up, right, left) and heap
//	ties are broken by strictly increasing sequence numbers, so repeated
//	runs on an unchanged grid reproduce identical visit counts and paths.
//
// Results
//
//   - Found: whether the end cell was reached.
//   - Visited: cells actually expanded, excluding start and end.
//   - PathLen: cells on the path from start to end inclusive; 0 when no
//     path was found or the run was cancelled.
//
// Cancellation via the Control handle is a defined terminal outcome, not an
// error: the algorithm returns Found=false with the statistics accumulated
// so far and a nil error. Context cancellation propagates ctx.Err(), as the
// caller asked for an abort through the context contract.
//
// Concurrency
//
//	A run executes synchronously on the calling goroutine and yields only
//	at its reporting and polling points. Only one run per grid may be
//	active at a time; the Control handle is safe to toggle from other
//	goroutines.
package search
