package solver

import "github.com/StickySide/maze/maze"

// DFS finds a path with an iterative depth-first search over an
// explicit stack. It commits to one corridor until boxed in, so the
// returned path is valid but not necessarily the shortest.
type DFS struct{}

// Solve implements the maze.Solver contract.
func (DFS) Solve(g *maze.Grid, start, end maze.Coordinate, emit maze.FrameFunc) []maze.Coordinate {
	if !g.InBound(start) || !g.InBound(end) {
		return nil
	}
	if start == end {
		return []maze.Coordinate{start}
	}

	stack := []maze.Coordinate{start}
	visited := map[maze.Coordinate]struct{}{start: {}}
	parent := make(map[maze.Coordinate]maze.Coordinate)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == end {
			return reconstruct(parent, start, end)
		}

		for _, nbr := range g.OpenNeighbors(current) {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			parent[nbr] = current
			stack = append(stack, nbr)
		}

		if emit != nil {
			emit(maze.Frame{
				Visited:  visited,
				Frontier: stack,
				Start:    &start,
				End:      &end,
			})
		}
	}

	return nil
}
