package search

import "github.com/katalvlaran/gridpath/grid"

// DFS runs depth-first search from start to end over the grid's cached
// adjacency. The frontier is a LIFO stack and neighbors are pushed in
// reverse cache order so the first neighbor (down) is expanded first,
// keeping traversal deterministic. DFS finds a path when one exists but
// makes no shortest-path guarantee.
//
// Complexity: O(V) time and memory for V = rows² cells.
func DFS(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}

	stack := []*grid.Cell{start}
	discovered := map[*grid.Cell]bool{start: true}

	for len(stack) > 0 {
		if stop, cerr := w.checkpoint(); stop {
			return w.interrupted(cerr)
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur == end {
			return w.success()
		}

		w.markVisited(cur)

		nbs := cur.Neighbors()
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if discovered[nb] {
				continue
			}
			discovered[nb] = true
			w.cameFrom[nb] = cur
			stack = append(stack, nb)
			w.markFrontier(nb)
		}
	}

	return w.exhausted()
}
