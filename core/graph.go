// Package core: mutating operations on the Graph slot arena.
//
// Every mutation validates first and returns a sentinel error on
// rejection, leaving the graph untouched. Node removal is the one
// cross-cutting write: it deactivates incoming edges across every
// adjacency list in the graph.
package core

import (
	"github.com/paulmach/orb"
)

// AddNode appends a new active node at the next free slot and returns
// its id. Names longer than the configured maximum are truncated.
// Returns InvalidNode and ErrGraphFull at capacity.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, x, y float64) (NodeID, error) {
	if len(g.nodes) >= g.nodeCap {
		return InvalidNode, ErrGraphFull
	}
	if len(name) > g.maxNameLen {
		name = name[:g.maxNameLen]
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		ID:     id,
		Name:   name,
		Pos:    orb.Point{x, y},
		Active: true,
	})
	g.edges = append(g.edges, nil)

	return id, nil
}

// RemoveNode soft-deletes the node: its Active flag is cleared, its
// outgoing adjacency list is emptied, and every active edge elsewhere
// in the graph pointing at id is deactivated. The slot itself persists
// and the id is never reused. Removing an inactive or out-of-range node
// returns ErrNodeNotFound and changes nothing.
// Complexity: O(V · E_cap) for the incoming-edge sweep.
func (g *Graph) RemoveNode(id NodeID) error {
	if !g.HasNode(id) {
		return ErrNodeNotFound
	}

	// 1) Deactivate the node slot.
	g.nodes[id].Active = false

	// 2) Drop its outgoing list wholesale. The id can never source an
	//    edge again, so its edge slots need not persist.
	g.edges[id] = nil

	// 3) Sweep every other adjacency list for incoming edges.
	for from := range g.edges {
		if NodeID(from) == id {
			continue
		}
		for i := range g.edges[from] {
			if g.edges[from][i].To == id {
				g.edges[from][i].Active = false
			}
		}
	}

	return nil
}

// HasNode reports whether id names an active node.
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes) && g.nodes[id].Active
}

// Node returns a copy of the active node with the given id,
// or ErrNodeNotFound.
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, ErrNodeNotFound
	}

	return g.nodes[id], nil
}

// AddEdge inserts a directed edge from→to. It is rejected when either
// endpoint is inactive or out of range (ErrNodeNotFound), the weight is
// negative (ErrNegativeWeight), the source's adjacency list is full
// (ErrAdjacencyFull), or an active edge for the ordered pair already
// exists (ErrDuplicateEdge). The list is append-only: a removed edge's
// slot persists and still counts against the capacity.
// Complexity: O(E_cap).
func (g *Graph) AddEdge(from, to NodeID, weight float64) error {
	// 1) Validate endpoints and weight.
	if !g.HasNode(from) || !g.HasNode(to) {
		return ErrNodeNotFound
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	// 2) Reject a duplicate active edge for the ordered pair.
	for i := range g.edges[from] {
		if g.edges[from][i].Active && g.edges[from][i].To == to {
			return ErrDuplicateEdge
		}
	}

	// 3) Append within capacity.
	if len(g.edges[from]) >= g.edgeCap {
		return ErrAdjacencyFull
	}
	g.edges[from] = append(g.edges[from], Edge{From: from, To: to, Weight: weight, Active: true})

	return nil
}

// AddBidirectionalEdge adds the two independent directed edges a→b and
// b→a with the same weight. It succeeds if at least one direction was
// created; when both fail, the error from the a→b attempt is returned.
func (g *Graph) AddBidirectionalEdge(a, b NodeID, weight float64) error {
	errAB := g.AddEdge(a, b, weight)
	errBA := g.AddEdge(b, a, weight)
	if errAB != nil && errBA != nil {
		return errAB
	}

	return nil
}

// RemoveEdge deactivates the single active edge from→to, or returns
// ErrEdgeNotFound. The reverse direction, if any, is untouched.
// Complexity: O(E_cap).
func (g *Graph) RemoveEdge(from, to NodeID) error {
	if from < 0 || int(from) >= len(g.nodes) {
		return ErrEdgeNotFound
	}
	for i := range g.edges[from] {
		if g.edges[from][i].Active && g.edges[from][i].To == to {
			g.edges[from][i].Active = false

			return nil
		}
	}

	return ErrEdgeNotFound
}
