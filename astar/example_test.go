package astar_test

import (
	"fmt"

	"github.com/routecraft/rcgraph/astar"
	"github.com/routecraft/rcgraph/core"
)

// ExampleSearch builds the canonical triangle map and routes around the
// expensive direct edge.
func ExampleSearch() {
	g := core.NewGraph()
	a, _ := g.AddNode("A", 0, 0)
	b, _ := g.AddNode("B", 10, 0)
	c, _ := g.AddNode("C", 10, 10)
	_ = g.AddEdge(a, b, 10)
	_ = g.AddEdge(b, c, 10)
	_ = g.AddEdge(a, c, 30)

	result, _, err := astar.Search(g, a, c)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Printf("path %v, cost %.0f\n", result.Nodes, result.TotalCost)
	// Output:
	// path [0 1 2], cost 20
}

// ExampleSearch_dijkstra shows the Zero heuristic, which searches like
// Dijkstra's algorithm and stays optimal regardless of node positions.
func ExampleSearch_dijkstra() {
	g := core.NewGraph()
	// Positions deliberately uncorrelated with edge weights.
	a, _ := g.AddNode("warehouse", 0, 0)
	b, _ := g.AddNode("harbor", 1, 1)
	c, _ := g.AddNode("depot", 2, 2)
	_ = g.AddEdge(a, b, 100)
	_ = g.AddEdge(b, c, 100)
	_ = g.AddEdge(a, c, 350)

	result, _, _ := astar.Search(g, a, c, astar.WithHeuristic(astar.Zero))
	fmt.Printf("cost %.0f via %d stops\n", result.TotalCost, len(result.Nodes))
	// Output:
	// cost 200 via 3 stops
}
