// Package astar: the search engine.
//
// Search drives a capacity-bounded open-set heap over per-node score
// arrays. The engine uses lazy deletion: a node may sit in the heap
// with a stale score after a better path was recorded, and such
// entries are discarded on pop instead of being removed eagerly. The
// goal terminates the search the first time it is popped — not merely
// discovered — which is what guarantees optimality under an
// admissible, non-inflated heuristic.
package astar

import (
	"math"
	"time"

	"github.com/paulmach/orb"

	"github.com/routecraft/rcgraph/core"
	"github.com/routecraft/rcgraph/metrics"
)

// Search computes the cheapest path between two active nodes.
//
// Validation (in order): g must be non-nil (ErrNilGraph); start and
// goal must reference active nodes (ErrInvalidNode). A failed
// validation returns an empty, not-found result immediately.
//
// Exhausting the frontier without reaching the goal is not an error:
// the result carries Found=false, a nil path, and cost 0, and the
// returned Stats still describe the exhausted run.
//
// The graph must not be mutated for the duration of the call; see the
// core package doc for the single-threaded contract. All working
// storage is allocated fresh per call and owned by it exclusively.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Search(g *core.Graph, start, goal core.NodeID, opts ...Option) (PathResult, Stats, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph and endpoints.
	if g == nil {
		return PathResult{}, Stats{}, ErrNilGraph
	}
	if !g.HasNode(start) || !g.HasNode(goal) {
		return PathResult{}, Stats{}, ErrInvalidNode
	}

	// 3) Run the engine and time it.
	began := time.Now()
	r := newRunner(g, cfg)
	result := r.run(start, goal)
	r.stats.Duration = time.Since(began)

	metrics.ObserveSearch(r.stats.Duration, r.stats.NodesExplored, r.stats.MaxOpenSetSize, result.Found)

	return result, r.stats, nil
}

// runner holds the working state of a single search. Every field is
// allocated by newRunner and garbage-collected when the call returns;
// nothing is cached across searches.
type runner struct {
	g   *core.Graph
	cfg Options

	gScore   []float64     // best known cost from start, +Inf when undiscovered
	cameFrom []core.NodeID // predecessor on the best known path, InvalidNode when none
	open     []bool        // open-set membership flags
	closed   []bool        // finalized nodes, never re-examined
	pq       *openSet

	goalPos orb.Point
	stats   Stats
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NodeCount()
	r := &runner{
		g:        g,
		cfg:      cfg,
		gScore:   make([]float64, n),
		cameFrom: make([]core.NodeID, n),
		open:     make([]bool, n),
		closed:   make([]bool, n),
		pq:       newOpenSet(n),
	}
	for i := range r.gScore {
		r.gScore[i] = math.Inf(1)
		r.cameFrom[i] = core.InvalidNode
	}

	return r
}

// estimate returns the weighted heuristic from id to the goal.
func (r *runner) estimate(id core.NodeID) float64 {
	n, err := r.g.Node(id)
	if err != nil {
		return 0
	}

	return r.cfg.HeuristicWeight * Heuristic(n.Pos, r.goalPos, r.cfg.Heuristic)
}

// run executes the main loop from start until the goal is popped or
// the frontier empties.
func (r *runner) run(start, goal core.NodeID) PathResult {
	goalNode, _ := r.g.Node(goal)
	r.goalPos = goalNode.Pos

	// 1) Seed the frontier with the start node.
	r.gScore[start] = 0
	r.pq.push(start, r.estimate(start))
	r.open[start] = true
	r.stats.MaxOpenSetSize = 1

	// 2) Pop the cheapest frontier node until none remain.
	for {
		current, _, ok := r.pq.pop()
		if !ok {
			break
		}
		r.open[current] = false

		// 2a) Lazy deletion: a stale entry for an already-finalized
		//     node is discarded, not an error.
		if r.closed[current] {
			continue
		}
		r.closed[current] = true
		r.stats.NodesExplored++

		// 2b) Goal reached: the first pop finalizes its cost.
		if current == goal {
			r.stats.OpenSetSize = r.pq.size()

			return r.reconstruct(start, goal)
		}

		r.relax(current)
	}

	// 3) Frontier exhausted: no path.
	r.stats.OpenSetSize = r.pq.size()

	return PathResult{}
}

// relax attempts to improve the score of every active neighbor of the
// finalized node u.
func (r *runner) relax(u core.NodeID) {
	edges, err := r.g.OutEdges(u)
	if err != nil {
		return
	}

	for _, e := range edges {
		v := e.To
		if r.closed[v] {
			continue
		}

		// Strict improvement only; equal-cost rediscoveries are skipped.
		tentative := r.gScore[u] + e.Weight
		if tentative >= r.gScore[v] {
			continue
		}

		r.cameFrom[v] = u
		r.gScore[v] = tentative
		f := tentative + r.estimate(v)

		if !r.open[v] {
			// A full queue means this frontier extension is skipped;
			// the node stays reachable through later relaxations.
			if r.pq.push(v, f) {
				r.open[v] = true
				if r.pq.size() > r.stats.MaxOpenSetSize {
					r.stats.MaxOpenSetSize = r.pq.size()
				}
			}
		} else {
			r.pq.decreaseOrInsert(v, f)
		}
	}
}

// reconstruct walks the predecessor chain backward from goal to start
// and materializes the forward path.
//
// The walk is bounded by the slot count: a chain that runs longer, or
// breaks before reaching start, reports not-found instead of looping —
// a guard against an inconsistent predecessor graph, which a correct
// search never produces.
func (r *runner) reconstruct(start, goal core.NodeID) PathResult {
	// start == goal is a single-element path of cost 0.
	if start == goal {
		return PathResult{Nodes: []core.NodeID{start}, TotalCost: 0, Found: true}
	}

	// 1) Measure the chain, bounded by the arena size.
	length := 1 // goal itself
	limit := r.g.NodeCount()
	for cur := goal; cur != start; {
		cur = r.cameFrom[cur]
		if cur == core.InvalidNode || length >= limit {
			return PathResult{}
		}
		length++
	}

	// 2) Fill the path back to front.
	nodes := make([]core.NodeID, length)
	cur := goal
	for i := length - 1; i >= 0; i-- {
		nodes[i] = cur
		cur = r.cameFrom[cur]
	}

	return PathResult{Nodes: nodes, TotalCost: r.gScore[goal], Found: true}
}
