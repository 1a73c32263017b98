/*
Package generator provides maze generation strategies over a grid of
walled cells. Every strategy satisfies the maze.Generator contract and
draws all of its randomness from the caller-supplied source, so a fixed
seed reproduces the same maze.
*/
package generator

import (
	"math/rand"

	"github.com/StickySide/maze/maze"
)

// DFS carves a maze with a randomized depth-first search: walk to a
// random unvisited neighbor, knocking down the wall on the way, and
// backtrack when boxed in. The result is a spanning tree, so exactly
// one path exists between any two cells.
type DFS struct{}

// Generate implements the maze.Generator contract.
func (DFS) Generate(g *maze.Grid, rng *rand.Rand, emit maze.FrameFunc) {
	start := maze.Coordinate{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
	visited := map[maze.Coordinate]struct{}{start: {}}
	stack := []maze.Coordinate{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []maze.Coordinate
		for _, nbr := range g.Neighbors(current) {
			if _, seen := visited[nbr]; !seen {
				candidates = append(candidates, nbr)
			}
		}

		// Dead end: back up to the previous cell on the walk.
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		g.RemoveWall(current, next)
		visited[next] = struct{}{}
		stack = append(stack, next)

		if emit != nil {
			emit(maze.Frame{Visited: visited, Frontier: stack})
		}
	}
}
