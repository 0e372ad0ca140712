// Package core: central types, sentinel errors, and the Graph
// constructor with its functional options.
package core

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for graph store operations.
var (
	// ErrGraphFull indicates AddNode was called with the node arena at capacity.
	ErrGraphFull = errors.New("core: graph node capacity reached")

	// ErrAdjacencyFull indicates the source node's adjacency list is at capacity.
	ErrAdjacencyFull = errors.New("core: adjacency list capacity reached")

	// ErrNodeNotFound indicates a node id that is out of range or inactive,
	// or a lookup that matched no active node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates no active edge exists for the ordered pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates an active edge for the ordered pair already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrBadMagic indicates a file that does not begin with MagicV2.
	ErrBadMagic = errors.New("core: bad magic bytes")

	// ErrTruncated indicates a file that ended before the declared records.
	ErrTruncated = errors.New("core: truncated graph file")

	// ErrMalformed indicates a file whose declared counts or indices
	// violate the format's own bounds.
	ErrMalformed = errors.New("core: malformed graph file")
)

// Default capacities, matching the classic rcgraph map limits.
const (
	// DefaultNodeCapacity is the default maximum number of node slots.
	DefaultNodeCapacity = 1000

	// DefaultEdgeCapacity is the default per-node adjacency list bound.
	DefaultEdgeCapacity = 20

	// DefaultMaxNameLength is the default bound on node name length;
	// longer names are silently truncated at AddNode.
	DefaultMaxNameLength = 128
)

// NodeID identifies a node slot within its Graph. Ids are assigned
// sequentially at AddNode (id == insertion index) and are never reused,
// even after the node is removed.
type NodeID int

// InvalidNode is the sentinel returned by lookups that match nothing.
const InvalidNode NodeID = -1

// Node is one slot of the node arena.
//
// Pos holds the planar coordinates as an orb.Point (X, Y). Active is
// the soft-delete flag: an inactive node keeps its slot but is treated
// as absent by every query and by search.
type Node struct {
	ID     NodeID
	Name   string
	Pos    orb.Point
	Active bool
}

// Edge is a weighted directed connection stored in the source node's
// adjacency list. Weight is a non-negative traversal cost, typically
// the Euclidean distance between the endpoints.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight float64
	Active bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(*Graph)

// WithNodeCapacity bounds the node arena to n slots.
// Panics if n is not positive.
func WithNodeCapacity(n int) GraphOption {
	if n <= 0 {
		panic("core: node capacity must be positive")
	}

	return func(g *Graph) { g.nodeCap = n }
}

// WithEdgeCapacity bounds every adjacency list to m edge slots.
// Panics if m is not positive.
func WithEdgeCapacity(m int) GraphOption {
	if m <= 0 {
		panic("core: edge capacity must be positive")
	}

	return func(g *Graph) { g.edgeCap = m }
}

// WithMaxNameLength bounds node names to k bytes; longer names are
// truncated at AddNode. Panics if k is not positive.
func WithMaxNameLength(k int) GraphOption {
	if k <= 0 {
		panic("core: max name length must be positive")
	}

	return func(g *Graph) { g.maxNameLen = k }
}

// Graph is the capacity-bounded node/edge store.
//
// nodes is append-only: len(nodes) only grows, and every edge endpoint
// is an index < len(nodes). edges[i] is node i's adjacency list,
// bounded by edgeCap. Graph carries no locks; see the package doc for
// the single-threaded contract.
type Graph struct {
	nodeCap    int
	edgeCap    int
	maxNameLen int

	nodes []Node
	edges [][]Edge
}

// NewGraph creates an empty Graph. Defaults: 1000 node slots, 20 edges
// per node, 128-byte names.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodeCap:    DefaultNodeCapacity,
		edgeCap:    DefaultEdgeCapacity,
		maxNameLen: DefaultMaxNameLength,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NodeCapacity reports the maximum number of node slots.
func (g *Graph) NodeCapacity() int { return g.nodeCap }

// EdgeCapacity reports the per-node adjacency list bound.
func (g *Graph) EdgeCapacity() int { return g.edgeCap }

// NodeCount reports the number of allocated node slots, active or not.
// It only ever grows.
func (g *Graph) NodeCount() int { return len(g.nodes) }
