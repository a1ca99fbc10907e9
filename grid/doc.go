// Package grid models a square 2D lattice of cells for step-wise
// pathfinding, decoupled from any rendering technology.
//
// What
//
//   - Cell: one grid position with a semantic State tag (Empty, Barrier,
//     Start, End, Frontier, Visited, Path) and a cached list of up to four
//     orthogonal non-barrier neighbors.
//   - Grid: owns rows×rows cells, exposes coordinate lookup, pixel→cell
//     mapping for click handling, neighbor recomputation, and the
//     clear-path / clear-all lifecycle operations.
//
// Why
//
//   - Search algorithms need a stable adjacency view: neighbor lists are
//     computed once per run via RefreshAllNeighbors, never during traversal,
//     so barrier edits cannot corrupt an in-flight search.
//   - State tags are purely semantic; a renderer owns the state→color
//     mapping. Grid.String renders an ASCII snapshot for debugging.
//
// Invariants
//
//   - Neighbor caches must be refreshed after any barrier mutation and
//     before a search run; traversing a stale cache is a correctness bug.
//   - Neighbor order is fixed (down, up, right, left) so depth-first
//     traversal is deterministic.
//
// Complexity: all per-cell operations are O(1); RefreshAllNeighbors and the
// clear operations are O(rows²).
package grid
