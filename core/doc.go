// Package core provides the rcgraph graph store: a capacity-bounded
// collection of planar nodes and weighted directed edges with soft
// deletion and a portable binary file format.
//
// Storage model:
//
//   - Nodes live in an append-only slot arena. A NodeID is the slot
//     index, assigned at AddNode and never reused. RemoveNode flips the
//     slot's Active flag; slots are never freed or compacted, so ids
//     stay stable across any sequence of removals.
//   - Each node owns a bounded adjacency list of directed edges. At most
//     one active edge exists per ordered (from, to) pair. A
//     "bidirectional" connection is two independent directed edges;
//     editing or removing one direction leaves the other untouched.
//   - Every query (HasEdge, Neighbors, FindNodeByName, ...) treats
//     inactive nodes and edges as absent.
//
// Concurrency: a Graph holds no locks and is single-threaded by
// contract. A search over the graph assumes a stable node/edge set for
// its whole duration, so callers must serialize mutations against
// reads/searches externally if they share a Graph across goroutines.
//
// Errors (sentinel):
//
//	ErrGraphFull      - node capacity reached.
//	ErrAdjacencyFull  - per-node edge capacity reached.
//	ErrNodeNotFound   - node id out of range or inactive; name/position
//	                    lookup matched nothing.
//	ErrEdgeNotFound   - no active edge for the ordered pair.
//	ErrDuplicateEdge  - an active edge for the ordered pair exists.
//	ErrNegativeWeight - edge weight below zero.
//	ErrBadMagic       - file does not start with the rcgraph magic.
//	ErrTruncated      - file ended mid-record.
//
// All failures are reported through return values; a failed operation
// leaves the graph in its prior state.
package core
