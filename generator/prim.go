package generator

import (
	"math/rand"

	"github.com/StickySide/maze/maze"
)

// Prim carves a maze with randomized Prim's algorithm: grow a visited
// region from a random cell by repeatedly picking a random candidate
// wall on its boundary and opening it if the far cell is still outside
// the region. Like DFS, the result is a spanning tree, but with a very
// different texture: many short dead ends instead of long corridors.
type Prim struct{}

// Generate implements the maze.Generator contract.
func (Prim) Generate(g *maze.Grid, rng *rand.Rand, emit maze.FrameFunc) {
	start := maze.Coordinate{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
	visited := map[maze.Coordinate]struct{}{start: {}}

	// Candidate walls on the boundary of the visited region. A is
	// always inside the region, B may or may not be.
	var frontier []maze.Edge
	for _, nbr := range g.Neighbors(start) {
		frontier = append(frontier, maze.Edge{A: start, B: nbr})
	}

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		e := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if _, seen := visited[e.B]; seen {
			continue
		}

		g.RemoveWall(e.A, e.B)
		visited[e.B] = struct{}{}
		for _, nbr := range g.Neighbors(e.B) {
			if _, seen := visited[nbr]; !seen {
				frontier = append(frontier, maze.Edge{A: e.B, B: nbr})
			}
		}

		if emit != nil {
			cells := make([]maze.Coordinate, 0, len(frontier))
			for _, fe := range frontier {
				cells = append(cells, fe.B)
			}
			emit(maze.Frame{Visited: visited, Frontier: cells})
		}
	}
}
