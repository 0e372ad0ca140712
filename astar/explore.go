package astar

import (
	"github.com/routecraft/rcgraph/core"
)

// ExplorationOrder runs the search and records each node id in the
// order it was finalized (popped from the open set and closed), for
// diagnostics and visualization. Recording stops when the goal is
// finalized or when limit ids have been recorded, whichever comes
// first; a non-positive limit yields an empty trace.
//
// The trace is advisory only. It takes the same Options as Search and
// defaults to the Euclidean heuristic at weight 1.0, so a caller that
// wants the trace to mirror a differently-configured search must pass
// the same options to both calls — with differing options the
// visitation orders will diverge.
//
// Complexity: O((V + E) log V) time, O(V) space.
func ExplorationOrder(g *core.Graph, start, goal core.NodeID, limit int, opts ...Option) ([]core.NodeID, error) {
	// 1) Validate exactly as Search does.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) || !g.HasNode(goal) {
		return nil, ErrInvalidNode
	}

	order := make([]core.NodeID, 0, max(limit, 0))
	if limit <= 0 {
		return order, nil
	}

	// 2) Same engine, but every open→closed transition is recorded.
	r := newRunner(g, cfg)
	goalNode, _ := g.Node(goal)
	r.goalPos = goalNode.Pos

	r.gScore[start] = 0
	r.pq.push(start, r.estimate(start))
	r.open[start] = true

	for {
		current, _, ok := r.pq.pop()
		if !ok {
			break
		}
		r.open[current] = false
		if r.closed[current] {
			continue
		}
		r.closed[current] = true

		order = append(order, current)
		if current == goal || len(order) >= limit {
			break
		}

		r.relax(current)
	}

	return order, nil
}
