/*
Package solver provides path-finding strategies over a carved maze
grid. Every strategy satisfies the maze.Solver contract: it returns one
wall-respecting path from start to end, or nil when the end cell is
unreachable.
*/
package solver

import (
	"slices"

	"github.com/StickySide/maze/maze"
)

// BFS finds a path with a breadth-first level-order search. Because
// every passage has the same cost, the returned path always has the
// minimum number of edges of any start-to-end path. Each cell is
// searched at most once.
type BFS struct{}

// Solve implements the maze.Solver contract.
func (BFS) Solve(g *maze.Grid, start, end maze.Coordinate, emit maze.FrameFunc) []maze.Coordinate {
	if !g.InBound(start) || !g.InBound(end) {
		return nil
	}
	if start == end {
		return []maze.Coordinate{start}
	}

	queue := []maze.Coordinate{start}
	searched := map[maze.Coordinate]struct{}{start: {}}
	parent := make(map[maze.Coordinate]maze.Coordinate)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return reconstruct(parent, start, end)
		}

		for _, nbr := range g.OpenNeighbors(current) {
			if _, seen := searched[nbr]; seen {
				continue
			}
			searched[nbr] = struct{}{}
			parent[nbr] = current
			queue = append(queue, nbr)
		}

		if emit != nil {
			emit(maze.Frame{
				Visited:  searched,
				Frontier: queue,
				Start:    &start,
				End:      &end,
			})
		}
	}

	return nil
}

// reconstruct walks the predecessor map back from end to start and
// returns the path in start-to-end order.
func reconstruct(parent map[maze.Coordinate]maze.Coordinate, start, end maze.Coordinate) []maze.Coordinate {
	path := []maze.Coordinate{end}
	for path[len(path)-1] != start {
		path = append(path, parent[path[len(path)-1]])
	}
	slices.Reverse(path)
	return path
}
