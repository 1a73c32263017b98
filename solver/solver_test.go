package solver

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/StickySide/maze/generator"
	"github.com/StickySide/maze/maze"
	"github.com/stretchr/testify/assert"
)

// assertValidPath checks that path runs from start to end through open
// walls only.
func assertValidPath(t *testing.T, g *maze.Grid, path []maze.Coordinate, start, end maze.Coordinate) {
	t.Helper()

	assert.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.False(t, g.HasWall(path[i-1], path[i]),
			"step %d crosses a wall: %v -> %v", i, path[i-1], path[i])
	}
}

func allSolvers() map[string]maze.Solver {
	return map[string]maze.Solver{
		"bfs":  BFS{},
		"dfs":  DFS{},
		"rdfs": RecursiveDFS{},
	}
}

func TestSolversOnGeneratedMazes(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		g, err := maze.NewGrid(12, 8)
		assert.NoError(t, err)
		generator.DFS{}.Generate(g, rand.New(rand.NewSource(seed)), nil)

		start := maze.Coordinate{X: 0, Y: 0}
		end := maze.Coordinate{X: 11, Y: 7}

		for name, s := range allSolvers() {
			t.Run(fmt.Sprintf("%s seed %d", name, seed), func(t *testing.T) {
				path := s.Solve(g, start, end, nil)
				assertValidPath(t, g, path, start, end)
			})
		}
	}
}

func TestBFSPathIsNeverLonger(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := maze.NewGrid(10, 10)
		assert.NoError(t, err)
		generator.Prim{}.Generate(g, rand.New(rand.NewSource(seed)), nil)

		// Punch a few cycles in so the solvers can disagree.
		rng := rand.New(rand.NewSource(seed))
		edges := g.WalledEdges()
		rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
		for _, e := range edges[:5] {
			g.RemoveWall(e.A, e.B)
		}

		start := maze.Coordinate{X: 0, Y: 0}
		end := maze.Coordinate{X: 9, Y: 9}

		bfsPath := BFS{}.Solve(g, start, end, nil)
		dfsPath := DFS{}.Solve(g, start, end, nil)
		rdfsPath := RecursiveDFS{}.Solve(g, start, end, nil)

		assert.LessOrEqual(t, len(bfsPath), len(dfsPath))
		assert.LessOrEqual(t, len(bfsPath), len(rdfsPath))
	}
}

func TestBFSShortestOnOpenGrid(t *testing.T) {
	g, err := maze.NewGrid(5, 5)
	assert.NoError(t, err)
	generator.Empty{}.Generate(g, rand.New(rand.NewSource(1)), nil)

	start := maze.Coordinate{X: 0, Y: 0}
	end := maze.Coordinate{X: 4, Y: 4}

	// With every wall open the shortest path is a monotone staircase:
	// 8 edges, 9 coordinates.
	path := BFS{}.Solve(g, start, end, nil)
	assertValidPath(t, g, path, start, end)
	assert.Len(t, path, 9)
}

func TestSingleRowPathIsUnique(t *testing.T) {
	g, err := maze.NewGrid(10, 1)
	assert.NoError(t, err)
	generator.DFS{}.Generate(g, rand.New(rand.NewSource(1)), nil)

	start := maze.Coordinate{X: 0, Y: 0}
	end := maze.Coordinate{X: 9, Y: 0}

	for name, s := range allSolvers() {
		t.Run(name, func(t *testing.T) {
			path := s.Solve(g, start, end, nil)
			assertValidPath(t, g, path, start, end)
			assert.Len(t, path, 10)
		})
	}
}

func TestStartEqualsEnd(t *testing.T) {
	g, err := maze.NewGrid(3, 3)
	assert.NoError(t, err)

	c := maze.Coordinate{X: 1, Y: 1}
	for name, s := range allSolvers() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, []maze.Coordinate{c}, s.Solve(g, c, c, nil))
		})
	}
}

func TestUnreachableEndReturnsNil(t *testing.T) {
	// A fresh grid still has every wall, so nothing is reachable.
	g, err := maze.NewGrid(3, 3)
	assert.NoError(t, err)

	start := maze.Coordinate{X: 0, Y: 0}
	end := maze.Coordinate{X: 2, Y: 2}

	for name, s := range allSolvers() {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, s.Solve(g, start, end, nil))
		})
	}
}

func TestSolversEmitSearchFrames(t *testing.T) {
	g, err := maze.NewGrid(6, 6)
	assert.NoError(t, err)
	generator.DFS{}.Generate(g, rand.New(rand.NewSource(2)), nil)

	start := maze.Coordinate{X: 0, Y: 0}
	end := maze.Coordinate{X: 5, Y: 5}

	for name, s := range allSolvers() {
		t.Run(name, func(t *testing.T) {
			frames := 0
			path := s.Solve(g, start, end, func(maze.Frame) { frames++ })
			assertValidPath(t, g, path, start, end)
			assert.Greater(t, frames, 0)
		})
	}
}
