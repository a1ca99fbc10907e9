// Package gridpath is a step-wise grid pathfinding engine built for live
// visualization: paint barriers on a square lattice, pick start and end
// cells, and watch BFS, DFS, Dijkstra or A* explore the board one reported
// step at a time.
//
// 🚀 What is gridpath?
//
//	A small, renderer-agnostic core that brings together:
//		• Grid model: semantic cell states (Empty, Barrier, Start, End,
//		  Frontier, Visited, Path) with cached 4-neighbor adjacency
//		• Search engine: BFS, DFS, Dijkstra and A* behind one call shape,
//		  with per-step report callbacks and deterministic tie-breaking
//		• Heuristics: Manhattan, Euclidean and Chebyshev estimates for A*
//		• Session layer: start/end bookkeeping, pause/resume/cancel,
//		  run statistics (visited count, path length, elapsed time)
//
// ✨ Why choose gridpath?
//
//   - Renderer-agnostic – the core emits coordinates and state tags, never
//     colors or pixels; plug in any UI, terminal or test harness
//   - Deterministic – fixed neighbor order and sequence-numbered heap ties
//     make every run reproducible
//   - Cooperative – pause, resume and cancel are polled at every step, so a
//     hosting application stays responsive without threads
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	grid/      — Cell, State and the square lattice with neighbor caches
//	heuristic/ — admissible distance estimates and name dispatch
//	search/    — the four algorithms, Control handle, step reports
//	session/   — run orchestration, validation and statistics
//
// Quick ASCII example:
//
//	S * . . .
//	# * # # #
//	. * * * *
//	# # # # *
//	. . . E *
//
//	shows a finished A* run: '*' the reconstructed path, '#' barriers.
//
// See examples/ for a runnable terminal playback.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
