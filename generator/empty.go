package generator

import (
	"math/rand"

	"github.com/StickySide/maze/maze"
)

// Empty removes every internal wall, leaving an open room. Useful as a
// baseline for comparing solvers, since every monotone staircase from
// entrance to exit is then a shortest path.
type Empty struct{}

// Generate implements the maze.Generator contract.
func (Empty) Generate(g *maze.Grid, _ *rand.Rand, emit maze.FrameFunc) {
	visited := make(map[maze.Coordinate]struct{}, g.Width*g.Height)
	for _, c := range g.Coordinates() {
		g.RemoveWall(c, maze.Coordinate{X: c.X + 1, Y: c.Y})
		g.RemoveWall(c, maze.Coordinate{X: c.X, Y: c.Y + 1})
		visited[c] = struct{}{}
	}

	if emit != nil {
		emit(maze.Frame{Visited: visited})
	}
}
