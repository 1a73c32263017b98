package solver

import "github.com/StickySide/maze/maze"

// RecursiveDFS is the depth-first search expressed as a recursive
// descent with backtracking. Result semantics match DFS: any valid
// path, not necessarily the shortest.
//
// Known limitation: recursion depth is bounded only by the number of
// cells, so a sufficiently large grid can exhaust the goroutine stack.
// Use DFS or BFS for very large mazes.
type RecursiveDFS struct{}

// Solve implements the maze.Solver contract.
func (RecursiveDFS) Solve(g *maze.Grid, start, end maze.Coordinate, emit maze.FrameFunc) []maze.Coordinate {
	if !g.InBound(start) || !g.InBound(end) {
		return nil
	}

	visited := map[maze.Coordinate]struct{}{start: {}}
	var path []maze.Coordinate

	var walk func(c maze.Coordinate) bool
	walk = func(c maze.Coordinate) bool {
		path = append(path, c)

		if emit != nil {
			emit(maze.Frame{
				Visited: visited,
				Path:    path,
				Start:   &start,
				End:     &end,
			})
		}

		if c == end {
			return true
		}

		for _, nbr := range g.OpenNeighbors(c) {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			if walk(nbr) {
				return true
			}
		}

		// Dead end: drop this cell from the candidate path.
		path = path[:len(path)-1]
		return false
	}

	if walk(start) {
		return path
	}
	return nil
}
