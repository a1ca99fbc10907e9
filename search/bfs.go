package search

import "github.com/katalvlaran/gridpath/grid"

// BFS runs breadth-first search from start to end over the grid's cached
// adjacency. The frontier is a FIFO queue; every cell is discovered at most
// once and the first discovery wins, which yields a minimal-hop path under
// unit edge costs.
//
// Complexity: O(V) time and memory for V = rows² cells (each cell enqueued
// and dequeued at most once; adjacency is bounded by four).
func BFS(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	queue := make([]*grid.Cell, 0, g.Rows())
	queue = append(queue, start)
	discovered := map[*grid.Cell]bool{start: true}

	for len(queue) > 0 {
		if stop, cerr := w.checkpoint(); stop {
			return w.interrupted(cerr)
		}

		cur := queue[0]
		queue = queue[1:]

		if cur == end {
			return w.success()
		}

		for _, nb := range cur.Neighbors() {
			if discovered[nb] {
				continue
			}
			discovered[nb] = true
			w.cameFrom[nb] = cur
			queue = append(queue, nb)
			w.markFrontier(nb)
		}

		w.markVisited(cur)
	}

	return w.exhausted()
}
