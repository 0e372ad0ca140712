// Package core: read-only queries over active nodes and edges.
//
// All scans run in id order, which makes every first-match and
// tie-break below deterministic for a given graph content.
package core

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// HasEdge reports whether an active edge from→to exists between any
// pair of ids. Inactive edges and out-of-range ids report false.
// Complexity: O(E_cap).
func (g *Graph) HasEdge(from, to NodeID) bool {
	if from < 0 || int(from) >= len(g.nodes) {
		return false
	}
	for i := range g.edges[from] {
		if g.edges[from][i].Active && g.edges[from][i].To == to {
			return true
		}
	}

	return false
}

// EdgeWeight returns the weight of the active edge from→to,
// or ErrEdgeNotFound.
// Complexity: O(E_cap).
func (g *Graph) EdgeWeight(from, to NodeID) (float64, error) {
	if from < 0 || int(from) >= len(g.nodes) {
		return 0, ErrEdgeNotFound
	}
	for i := range g.edges[from] {
		if g.edges[from][i].Active && g.edges[from][i].To == to {
			return g.edges[from][i].Weight, nil
		}
	}

	return 0, ErrEdgeNotFound
}

// Neighbors returns the targets of id's active outgoing edges whose
// destination node is itself active, in adjacency order. A node with no
// such edges yields an empty slice; an invalid id yields
// ErrNodeNotFound.
// Complexity: O(E_cap).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}

	out := make([]NodeID, 0, len(g.edges[id]))
	for i := range g.edges[id] {
		e := g.edges[id][i]
		if e.Active && g.nodes[e.To].Active {
			out = append(out, e.To)
		}
	}

	return out, nil
}

// OutEdges returns copies of id's active outgoing edges whose
// destination node is active, in adjacency order.
// Complexity: O(E_cap).
func (g *Graph) OutEdges(id NodeID) ([]Edge, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}

	out := make([]Edge, 0, len(g.edges[id]))
	for i := range g.edges[id] {
		e := g.edges[id][i]
		if e.Active && g.nodes[e.To].Active {
			out = append(out, e)
		}
	}

	return out, nil
}

// FindNodeByName locates an active node by label. An exact
// case-insensitive match is preferred; failing that, the first active
// node whose name contains the query case-insensitively wins. Both
// passes scan in id order, so the lowest matching id is returned.
// Complexity: O(V · name length).
func (g *Graph) FindNodeByName(name string) (NodeID, error) {
	// 1) Exact case-insensitive pass.
	for i := range g.nodes {
		if g.nodes[i].Active && strings.EqualFold(g.nodes[i].Name, name) {
			return g.nodes[i].ID, nil
		}
	}

	// 2) Case-insensitive substring pass.
	lower := strings.ToLower(name)
	for i := range g.nodes {
		if g.nodes[i].Active && strings.Contains(strings.ToLower(g.nodes[i].Name), lower) {
			return g.nodes[i].ID, nil
		}
	}

	return InvalidNode, ErrNodeNotFound
}

// FindNodeNear returns the active node closest to (x, y) within radius,
// comparing squared Euclidean distances. Ties go to the lowest id,
// because the scan runs in id order and only a strictly smaller
// distance displaces the current best.
// Complexity: O(V).
func (g *Graph) FindNodeNear(x, y, radius float64) (NodeID, error) {
	p := orb.Point{x, y}
	best := InvalidNode
	bestDist := radius * radius

	for i := range g.nodes {
		if !g.nodes[i].Active {
			continue
		}
		if d := planar.DistanceSquared(g.nodes[i].Pos, p); d < bestDist {
			bestDist = d
			best = g.nodes[i].ID
		}
	}

	if best == InvalidNode {
		return InvalidNode, ErrNodeNotFound
	}

	return best, nil
}

// Distance returns the Euclidean distance between two active nodes,
// or 0 when either id is invalid.
func (g *Graph) Distance(a, b NodeID) float64 {
	if !g.HasNode(a) || !g.HasNode(b) {
		return 0
	}

	return planar.Distance(g.nodes[a].Pos, g.nodes[b].Pos)
}

// Nodes returns copies of all active nodes in id order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for i := range g.nodes {
		if g.nodes[i].Active {
			out = append(out, g.nodes[i])
		}
	}

	return out
}

// ActiveNodeCount reports the number of active nodes.
// Complexity: O(V).
func (g *Graph) ActiveNodeCount() int {
	n := 0
	for i := range g.nodes {
		if g.nodes[i].Active {
			n++
		}
	}

	return n
}
