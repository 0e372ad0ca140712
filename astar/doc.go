// Package astar implements A* shortest-path search over a core.Graph.
//
// What you get:
//
//   - Search       — one-shot shortest path between two active nodes,
//     with per-run statistics (nodes explored, open-set sizes, wall
//     time) and Prometheus observation of every run
//   - Heuristic    — pure planar metrics: Euclidean, Manhattan,
//     Chebyshev, and Zero (which turns the search into Dijkstra)
//   - ExplorationOrder — the finalization-order trace of a search,
//     capped at a caller-supplied length, for visualization
//
// The engine is a pure, one-shot, terminating computation: it takes no
// locks, never blocks, holds no state between calls, and is bounded by
// O(V) finalizations and O(E) relaxations. Callers must not mutate the
// graph while a search runs.
//
//	g := core.NewGraph()
//	a, _ := g.AddNode("A", 0, 0)
//	b, _ := g.AddNode("B", 10, 0)
//	c, _ := g.AddNode("C", 10, 10)
//	_ = g.AddEdge(a, b, 10)
//	_ = g.AddEdge(b, c, 10)
//	_ = g.AddEdge(a, c, 30)
//
//	result, stats, err := astar.Search(g, a, c)
//	// result.Nodes == [A B C], result.TotalCost == 20
//
// See types.go for the full option and error catalogue.
package astar
