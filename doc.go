// Package rcgraph is an in-memory toolkit for planar route graphs:
// a capacity-bounded, id-stable graph store and an A* shortest-path
// engine built on top of it.
//
// 🚀 What is rcgraph?
//
//	A small, focused library that brings together:
//		• core/    — bounded Node/Edge store with soft deletion, adjacency
//		  queries, name/position lookup and a portable binary file format
//		• astar/   — A* search with selectable heuristics (Euclidean,
//		  Manhattan, Chebyshev, Zero/Dijkstra), weighted-heuristic mode,
//		  search statistics and an exploration-order trace
//		• metrics/ — Prometheus collectors observing every search
//
// ✨ Design points
//
//   - Id-stable slots – removal deactivates, never compacts; a node id
//     handed out once stays valid as a slot reference forever
//   - Flag-and-sentinel error reporting – every failure is an explicit
//     return value; nothing panics at runtime
//   - Single-threaded by contract – a Graph holds no locks; callers
//     serialize mutations against searches
//
// Quick ASCII example:
//
//	    A(0,0)──10──B(10,0)
//	       │           │
//	       30          10
//	       │           │
//	       └────────C(10,10)
//
//	Search(A, C) with the Euclidean heuristic returns [A B C], cost 20.
//
// See the core and astar package docs for the full API surface.
package rcgraph
