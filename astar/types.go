// Package astar defines configuration, result types, and sentinel
// errors for A* shortest-path search over a core.Graph.
//
// A* explores nodes in order of f = g + w·h, where g is the best known
// cost from the start, h a heuristic estimate of the remaining cost,
// and w a configurable heuristic weight. With w = 1 and an admissible
// heuristic (one that never overestimates), the returned path is
// optimal. With the Zero heuristic the search degrades into Dijkstra's
// algorithm, which is optimal regardless of geometry. With w > 1 the
// search is greedier and usually faster, but the optimality guarantee
// is gone: inflating an admissible heuristic can make it overestimate.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each node is finalized at most once,
//     each relaxation touches the open-set heap.
//   - Space: O(V) working arrays plus O(V) heap, allocated fresh per
//     call and released when the call returns.
//
// Errors (sentinel):
//
//	ErrNilGraph    - the graph pointer is nil.
//	ErrInvalidNode - start or goal id is out of range or inactive.
//
// A search that terminates without reaching the goal is not an error:
// it returns PathResult{Found: false} with a nil error.
package astar

import (
	"errors"
	"time"

	"github.com/routecraft/rcgraph/core"
)

// Sentinel errors returned by Search and ExplorationOrder.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrInvalidNode indicates the start or goal id does not reference
	// an active node.
	ErrInvalidNode = errors.New("astar: start or goal node is invalid")

	// ErrBadHeuristicWeight indicates a negative heuristic weight.
	ErrBadHeuristicWeight = errors.New("astar: heuristic weight must be non-negative")
)

// HeuristicKind selects the distance metric used to estimate remaining
// cost to the goal.
type HeuristicKind int

const (
	// Euclidean is the straight-line distance. Admissible whenever edge
	// weights are at least the Euclidean distance between endpoints.
	Euclidean HeuristicKind = iota

	// Manhattan is |dx| + |dy|. Suited to 4-connected grid movement;
	// it can overestimate on graphs with straight-line weights.
	Manhattan

	// Chebyshev is max(|dx|, |dy|). Suited to 8-connected grids.
	Chebyshev

	// Zero disables the heuristic, turning A* into Dijkstra's
	// algorithm: guaranteed optimal irrespective of geometry, useful
	// when edge weights do not correlate with planar distance.
	Zero
)

// Options configures a search.
//
// Heuristic       – metric used for the remaining-cost estimate.
// HeuristicWeight – multiplier applied to the estimate. 1.0 is standard
// A*; > 1.0 trades optimality for speed. Must be ≥ 0.
// AllowDiagonal   – reserved for grid-shaped graphs; the planar engine
// carries it but does not consult it.
type Options struct {
	Heuristic       HeuristicKind
	HeuristicWeight float64
	AllowDiagonal   bool
}

// Option is a functional option for configuring a search.
type Option func(*Options)

// WithHeuristic selects the heuristic metric.
func WithHeuristic(kind HeuristicKind) Option {
	return func(o *Options) { o.Heuristic = kind }
}

// WithHeuristicWeight sets the heuristic multiplier. Values above 1.0
// give a greedier, non-optimal search. Panics on negative weights.
func WithHeuristicWeight(w float64) Option {
	if w < 0 {
		panic(ErrBadHeuristicWeight.Error())
	}

	return func(o *Options) { o.HeuristicWeight = w }
}

// WithDiagonal sets the reserved diagonal-movement flag.
func WithDiagonal(allow bool) Option {
	return func(o *Options) { o.AllowDiagonal = allow }
}

// DefaultOptions returns the standard configuration: Euclidean
// heuristic at weight 1.0, diagonal movement allowed.
func DefaultOptions() Options {
	return Options{
		Heuristic:       Euclidean,
		HeuristicWeight: 1.0,
		AllowDiagonal:   true,
	}
}

// PathResult is the outcome of a search. When Found is true, Nodes
// lists the node ids from start to goal inclusive and TotalCost is the
// summed edge weight along them. When Found is false, Nodes is nil and
// TotalCost is 0.
type PathResult struct {
	Nodes     []core.NodeID
	TotalCost float64
	Found     bool
}

// Stats describes one search run. Purely observational; it never
// affects the result.
//
// NodesExplored  – nodes popped from the open set.
// OpenSetSize    – open-set size at termination.
// MaxOpenSetSize – peak open-set size during the run.
// Duration       – wall-clock time of the call.
type Stats struct {
	NodesExplored  int
	OpenSetSize    int
	MaxOpenSetSize int
	Duration       time.Duration
}
