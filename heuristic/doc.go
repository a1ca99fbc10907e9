// Package heuristic provides admissible distance estimates between grid
// coordinates, used to rank the A* frontier.
//
// What
//
//   - Manhattan: |Δrow| + |Δcol| — exact lower bound for 4-directional
//     unit-cost movement.
//   - Euclidean: straight-line distance — admissible but looser.
//   - Chebyshev: max(|Δrow|, |Δcol|) — admissible but looser; exact for
//     8-directional movement (also known as the diagonal distance).
//   - For(name): dispatch by method name with a Manhattan fallback.
//
// Why
//
//   - A* optimality requires an admissible heuristic: the estimate must never
//     overestimate the true remaining cost. All three functions here satisfy
//     that for 4-directional unit-cost grids; Manhattan is the tightest and
//     therefore the default.
//
// All functions are pure: no shared state, no side effects, safe for
// concurrent use.
package heuristic
