package astar

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Heuristic computes the estimated remaining cost between two planar
// points under the given metric. It is a pure function: no state, no
// allocation.
// Complexity: O(1).
func Heuristic(a, b orb.Point, kind HeuristicKind) float64 {
	switch kind {
	case Euclidean:
		return planar.Distance(a, b)
	case Manhattan:
		return math.Abs(b.X()-a.X()) + math.Abs(b.Y()-a.Y())
	case Chebyshev:
		return math.Max(math.Abs(b.X()-a.X()), math.Abs(b.Y()-a.Y()))
	case Zero:
		return 0
	default:
		return 0
	}
}
