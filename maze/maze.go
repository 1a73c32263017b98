/*
Package maze models a rectangular grid maze: a lattice of cells
separated by removable walls, plus pluggable strategies for carving the
maze, solving it, and rendering it as text.

The Maze type binds a Grid to one Generator, one Solver, and one
Renderer. Strategies exchange intermediate state through Frame
snapshots, which the facade either discards or renders live at a fixed
frame rate.
*/
package maze

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
)

// cursorHome moves the terminal cursor to the upper-left corner so
// successive live frames redraw in place.
const cursorHome = "\x1b[H"

// Config holds the settings for constructing a Maze.
type Config struct {
	Width     int       // Number of columns, must be positive.
	Height    int       // Number of rows, must be positive.
	Generator Generator // Generation strategy.
	Solver    Solver    // Solving strategy.
	Renderer  Renderer  // Render strategy.
	Seed      int64     // Random seed; 0 seeds from the current time.
	Holes     int       // Extra walls to remove after generation.
	Out       io.Writer // Live frame destination; defaults to os.Stdout.
}

// Maze owns the grid state and delegates to the configured strategies.
// The entrance is the top-left cell and the exit the bottom-right cell.
type Maze struct {
	ID        uuid.UUID // Identifies this maze instance in logs.
	grid      *Grid
	generator Generator
	solver    Solver
	renderer  Renderer
	rng       *rand.Rand
	holes     int
	out       io.Writer

	entrance Coordinate
	exit     Coordinate
	path     []Coordinate
}

// New creates a Maze from the given configuration. Returns
// ErrInvalidDimension if either dimension is not positive and
// ErrMissingStrategy if any of the three strategies is nil.
func New(cfg Config) (*Maze, error) {
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	if cfg.Generator == nil || cfg.Solver == nil || cfg.Renderer == nil {
		return nil, ErrMissingStrategy
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Maze{
		ID:        uuid.New(),
		grid:      grid,
		generator: cfg.Generator,
		solver:    cfg.Solver,
		renderer:  cfg.Renderer,
		rng:       rand.New(rand.NewSource(seed)),
		holes:     cfg.Holes,
		out:       out,
		entrance:  Coordinate{X: 0, Y: 0},
		exit:      Coordinate{X: cfg.Width - 1, Y: cfg.Height - 1},
	}, nil
}

// Generate resets the grid to all-walls and runs the generation
// strategy over it, then punches the configured number of extra holes.
// When live is true every carve step is rendered to the output writer
// at the given frame rate. Calling Generate again discards the
// previous maze and any solution path.
func (m *Maze) Generate(live bool, fps int) {
	m.grid, _ = NewGrid(m.grid.Width, m.grid.Height)
	m.path = nil

	sink := m.frameSink(live, fps)
	m.generator.Generate(m.grid, m.rng, sink)
	m.PunchHoles(m.holes)

	if sink != nil {
		sink(Frame{Start: &m.entrance, End: &m.exit})
	}
}

// Solve runs the solving strategy over the current grid state and
// returns the resulting path from entrance to exit, or nil if the exit
// is unreachable. When live is true every search step is rendered to
// the output writer at the given frame rate.
func (m *Maze) Solve(live bool, fps int) []Coordinate {
	sink := m.frameSink(live, fps)
	m.path = m.solver.Solve(m.grid, m.entrance, m.exit, sink)

	if sink != nil {
		sink(Frame{Path: m.path, Start: &m.entrance, End: &m.exit})
	}
	return m.path
}

// PunchHoles removes up to n extra walls chosen uniformly at random
// from the walls still present, introducing cycles and therefore
// shortcut paths. Requests beyond the number of remaining walls are
// clamped, never an error.
func (m *Maze) PunchHoles(n int) {
	if n <= 0 {
		return
	}

	edges := m.grid.WalledEdges()
	m.rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	if n > len(edges) {
		n = len(edges)
	}
	for _, e := range edges[:n] {
		m.grid.RemoveWall(e.A, e.B)
	}
}

// Grid returns the underlying grid.
func (m *Maze) Grid() *Grid {
	return m.grid
}

// Path returns the solution path computed by the last Solve call, or
// nil if Solve has not run or found no path.
func (m *Maze) Path() []Coordinate {
	return m.path
}

// Entrance returns the entrance coordinate, the top-left cell.
func (m *Maze) Entrance() Coordinate {
	return m.entrance
}

// Exit returns the exit coordinate, the bottom-right cell.
func (m *Maze) Exit() Coordinate {
	return m.exit
}

// String renders the current maze state with the entrance, exit, and
// any solution path overlaid.
func (m *Maze) String() string {
	return m.renderer.Render(m.grid, Frame{
		Path:  m.path,
		Start: &m.entrance,
		End:   &m.exit,
	})
}

// frameSink returns the FrameFunc to hand to a strategy: nil when not
// live, otherwise a closure that redraws the frame in place and sleeps
// out the inter-frame delay.
func (m *Maze) frameSink(live bool, fps int) FrameFunc {
	if !live {
		return nil
	}

	var delay time.Duration
	if fps > 0 {
		delay = time.Second / time.Duration(fps)
	}

	return func(f Frame) {
		fmt.Fprint(m.out, cursorHome+m.renderer.Render(m.grid, f))
		time.Sleep(delay)
	}
}
