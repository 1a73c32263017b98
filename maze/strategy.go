package maze

import "math/rand"

// Frame is a snapshot of algorithm state, emitted once per step during
// generation or solving. Renderers treat it as read-only.
type Frame struct {
	// Visited holds the cells carved out by the generator, or already
	// searched by the solver.
	Visited map[Coordinate]struct{}
	// Frontier holds the cells awaiting processing: the DFS stack, the
	// BFS queue, or the far cells of Prim's candidate wall list.
	Frontier []Coordinate
	// Path is the current partial or final solution path, in order from
	// entrance to exit.
	Path []Coordinate
	// Start and End mark the entrance and exit cells. Nil when the
	// frame has no meaningful endpoints, such as during generation.
	Start *Coordinate
	End   *Coordinate
}

// FrameFunc receives one Frame per algorithm step. A nil FrameFunc
// disables snapshot emission.
type FrameFunc func(Frame)

// Generator defines the contract a maze generation strategy must
// implement. Generate carves passages into a fresh grid by removing
// walls, drawing all randomness from rng. If emit is non-nil it is
// called once per carve step with the intermediate state, ending with
// the final state. The emitted sequence is finite and single-pass.
type Generator interface {
	Generate(g *Grid, rng *rand.Rand, emit FrameFunc)
}

// Solver defines the contract a maze solving strategy must implement.
// Solve returns one path from start to end as an ordered slice of
// coordinates, where each consecutive pair is separated by no wall.
// It returns a single-element path when start == end and nil when no
// path exists. If emit is non-nil it is called once per search step.
type Solver interface {
	Solve(g *Grid, start, end Coordinate, emit FrameFunc) []Coordinate
}

// Renderer defines the contract a render strategy must implement.
// Render converts the grid plus one overlay frame into a text block.
// It must be a pure function of its inputs: rendering the same grid
// and frame twice produces identical output.
type Renderer interface {
	Render(g *Grid, f Frame) string
}
