// Package astar: the open-set priority queue.
//
// openSet is a capacity-bounded binary min-heap over (node id, f-score)
// entries, built on container/heap. The heap invariant
// score[parent] ≤ score[children] holds after every mutation; ties are
// broken arbitrarily by heap structure, so callers must not rely on
// the pop order of equal scores.
//
// decreaseOrInsert locates its target by linear scan over the heap
// storage, O(size) per call. That is a deliberate simplicity trade-off
// for the bounded graphs this package targets; an id→heap-index map
// would bring it to O(log n) for large graphs.
package astar

import (
	"container/heap"

	"github.com/routecraft/rcgraph/core"
)

// pqEntry is one open-set entry: a node id keyed by its f-score.
type pqEntry struct {
	id core.NodeID
	f  float64
}

// pqStorage implements heap.Interface; openSet wraps it with the
// capacity and update contracts.
type pqStorage []pqEntry

func (s pqStorage) Len() int           { return len(s) }
func (s pqStorage) Less(i, j int) bool { return s[i].f < s[j].f }
func (s pqStorage) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s *pqStorage) Push(x interface{}) { *s = append(*s, x.(pqEntry)) }

func (s *pqStorage) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]

	return item
}

// openSet is the A* frontier.
type openSet struct {
	items pqStorage
	cap   int
}

// newOpenSet creates an empty frontier bounded to capacity entries.
func newOpenSet(capacity int) *openSet {
	return &openSet{items: make(pqStorage, 0, capacity), cap: capacity}
}

// push inserts the entry, or reports false when the queue is full.
// A full queue is not fatal: the caller simply cannot extend the
// frontier through this node.
func (q *openSet) push(id core.NodeID, f float64) bool {
	if len(q.items) >= q.cap {
		return false
	}
	heap.Push(&q.items, pqEntry{id: id, f: f})

	return true
}

// pop removes and returns the minimum-score entry; ok is false when
// the queue is empty.
func (q *openSet) pop() (id core.NodeID, f float64, ok bool) {
	if len(q.items) == 0 {
		return core.InvalidNode, 0, false
	}
	e := heap.Pop(&q.items).(pqEntry)

	return e.id, e.f, true
}

// decreaseOrInsert lowers the stored score for id when f is strictly
// smaller, restoring the heap order via heap.Fix. Rescoring upward is a
// no-op, matching A*'s monotonic-improvement semantics. When id is not
// present it is pushed instead.
func (q *openSet) decreaseOrInsert(id core.NodeID, f float64) {
	for i := range q.items {
		if q.items[i].id == id {
			if f < q.items[i].f {
				q.items[i].f = f
				heap.Fix(&q.items, i)
			}

			return
		}
	}
	q.push(id, f)
}

// size reports the current number of entries.
func (q *openSet) size() int { return len(q.items) }
