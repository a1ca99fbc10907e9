package search

import "github.com/katalvlaran/gridpath/grid"

// frontierItem is one entry in the cost-ordered frontier. The priority is
// the g-score (Dijkstra) or f-score (A*); seq is a strictly increasing
// insertion sequence number breaking priority ties first-in-first-out.
// Ordering never relies on cell identity.
type frontierItem struct {
	cell     *grid.Cell
	priority float64
	seq      uint64
}

// frontierHeap is a min-heap of frontierItem ordered lexicographically by
// (priority, seq). Stale entries left behind by the lazy-decrease-key
// discipline are filtered by the algorithms on pop.
type frontierHeap []frontierItem

// Len returns the number of pending entries.
func (h frontierHeap) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence for equal priorities.
func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new entry; called by container/heap.
func (h *frontierHeap) Push(x any) { *h = append(*h, x.(frontierItem)) }

// Pop removes and returns the last entry; called by container/heap.
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
