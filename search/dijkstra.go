package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Dijkstra runs Dijkstra's algorithm from start to end with uniform unit
// edge costs. The frontier is a min-heap keyed by accumulated cost g with
// ties broken by insertion sequence number, and the lazy-decrease-key
// discipline: a relaxation pushes a fresh entry only when the cell is not
// already pending, and stale entries (key worse than the current best g)
// are skipped on pop.
//
// Complexity: O(V log V) time for V = rows² cells (degree ≤ 4), O(V) memory.
func Dijkstra(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	n := g.Rows() * g.Rows()
	gScore := make(map[*grid.Cell]float64, n)
	g.EachCell(func(c *grid.Cell) { gScore[c] = math.Inf(1) })
	gScore[start] = 0

	var seq uint64
	frontier := make(frontierHeap, 0, n)
	heap.Init(&frontier)
	heap.Push(&frontier, frontierItem{cell: start, priority: 0, seq: seq})
	pending := map[*grid.Cell]bool{start: true}

	for frontier.Len() > 0 {
		if stop, cerr := w.checkpoint(); stop {
			return w.interrupted(cerr)
		}

		item := heap.Pop(&frontier).(frontierItem)
		cur := item.cell
		delete(pending, cur)

		// stale lazy-deletion entry: a better path was already recorded
		if item.priority > gScore[cur] {
			continue
		}

		if cur == end {
			return w.success()
		}

		for _, nb := range cur.Neighbors() {
			tentative := gScore[cur] + 1
			if tentative >= gScore[nb] {
				continue
			}
			w.cameFrom[nb] = cur
			gScore[nb] = tentative
			if !pending[nb] {
				seq++
				heap.Push(&frontier, frontierItem{cell: nb, priority: tentative, seq: seq})
				pending[nb] = true
				w.markFrontier(nb)
			}
		}

		w.markVisited(cur)
	}

	return w.exhausted()
}
