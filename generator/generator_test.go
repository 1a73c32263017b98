package generator

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/StickySide/maze/maze"
	"github.com/stretchr/testify/assert"
)

// internalEdges returns the number of adjacent cell pairs in a
// width x height grid, i.e. the number of removable walls.
func internalEdges(width, height int) int {
	return width*(height-1) + height*(width-1)
}

// reachableFrom flood-fills the grid through open walls and returns
// the number of cells reachable from start, start included.
func reachableFrom(g *maze.Grid, start maze.Coordinate) int {
	seen := map[maze.Coordinate]struct{}{start: {}}
	queue := []maze.Coordinate{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, nbr := range g.OpenNeighbors(current) {
			if _, ok := seen[nbr]; ok {
				continue
			}
			seen[nbr] = struct{}{}
			queue = append(queue, nbr)
		}
	}
	return len(seen)
}

func TestSpanningTreeGenerators(t *testing.T) {
	strategies := map[string]maze.Generator{
		"dfs":  DFS{},
		"prim": Prim{},
	}
	sizes := [][2]int{{5, 5}, {8, 3}, {1, 1}, {10, 1}, {1, 7}}

	for name, strat := range strategies {
		for _, size := range sizes {
			width, height := size[0], size[1]
			t.Run(fmt.Sprintf("%s %dx%d", name, width, height), func(t *testing.T) {
				g, err := maze.NewGrid(width, height)
				assert.NoError(t, err)

				strat.Generate(g, rand.New(rand.NewSource(7)), nil)

				// A spanning tree over n cells removes exactly n-1 walls.
				removed := internalEdges(width, height) - len(g.WalledEdges())
				assert.Equal(t, width*height-1, removed)

				// Every cell is reachable from every other.
				assert.Equal(t, width*height, reachableFrom(g, maze.Coordinate{}))
			})
		}
	}
}

func TestEmptyRemovesEveryWall(t *testing.T) {
	g, err := maze.NewGrid(5, 4)
	assert.NoError(t, err)

	Empty{}.Generate(g, rand.New(rand.NewSource(1)), nil)

	assert.Empty(t, g.WalledEdges())
	assert.Equal(t, 20, reachableFrom(g, maze.Coordinate{}))
}

func TestSingleRowHasUniqueMaze(t *testing.T) {
	// With one row there is no branching choice: the only spanning
	// tree is the full corridor, whatever the seed.
	for seed := int64(1); seed <= 5; seed++ {
		g, err := maze.NewGrid(10, 1)
		assert.NoError(t, err)

		DFS{}.Generate(g, rand.New(rand.NewSource(seed)), nil)

		assert.Empty(t, g.WalledEdges())
	}
}

func TestGenerationIsDeterministicForSeed(t *testing.T) {
	carve := func(seed int64) []maze.Edge {
		g, err := maze.NewGrid(9, 6)
		assert.NoError(t, err)
		DFS{}.Generate(g, rand.New(rand.NewSource(seed)), nil)
		return g.WalledEdges()
	}

	assert.Equal(t, carve(42), carve(42))
}

func TestGeneratorsEmitOneFramePerCarve(t *testing.T) {
	strategies := map[string]maze.Generator{
		"dfs":  DFS{},
		"prim": Prim{},
	}

	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			g, err := maze.NewGrid(4, 4)
			assert.NoError(t, err)

			frames := 0
			strat.Generate(g, rand.New(rand.NewSource(3)), func(maze.Frame) {
				frames++
			})

			assert.Equal(t, 4*4-1, frames)
		})
	}
}
