package heuristic

import (
	"math"
	"strings"
)

// Func estimates the remaining cost between two grid coordinates.
// Arguments are (row, col) pairs; the result is non-negative.
type Func func(aRow, aCol, bRow, bCol int) float64

// Canonical method names accepted by For.
const (
	MethodManhattan = "manhattan"
	MethodEuclidean = "euclidean"
	MethodChebyshev = "chebyshev"
	// MethodDiagonal is an alias for Chebyshev kept for UI compatibility.
	MethodDiagonal = "diagonal"
)

// Manhattan returns |Δrow| + |Δcol|, the exact unweighted distance under
// 4-directional movement with no obstacles.
func Manhattan(aRow, aCol, bRow, bCol int) float64 {
	return float64(abs(aRow-bRow) + abs(aCol-bCol))
}

// Euclidean returns the straight-line distance sqrt(Δrow² + Δcol²).
func Euclidean(aRow, aCol, bRow, bCol int) float64 {
	dr := float64(aRow - bRow)
	dc := float64(aCol - bCol)

	return math.Sqrt(dr*dr + dc*dc)
}

// Chebyshev returns max(|Δrow|, |Δcol|), the diagonal distance.
func Chebyshev(aRow, aCol, bRow, bCol int) float64 {
	dr := abs(aRow - bRow)
	dc := abs(aCol - bCol)
	if dr > dc {
		return float64(dr)
	}

	return float64(dc)
}

// For selects a heuristic by method name, case-insensitively.
// Unrecognized names fall back to Manhattan, which is always a safe
// (admissible) choice for 4-directional unit-cost movement.
func For(name string) Func {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MethodEuclidean:
		return Euclidean
	case MethodChebyshev, MethodDiagonal:
		return Chebyshev
	default:
		return Manhattan
	}
}

// Names lists the canonical method names, suitable for populating a
// selection widget.
func Names() []string {
	return []string{MethodManhattan, MethodEuclidean, MethodChebyshev}
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
