package maze

import "errors"

// Maze-related errors.
var (
	ErrInvalidDimension = errors.New("maze dimensions must be positive")
	ErrMissingStrategy  = errors.New("missing required strategy")
)

// Coordinate identifies a single cell in the grid by its column (X) and
// row (Y). It is a comparable value and is used directly as a map key
// and set member.
type Coordinate struct {
	X int // Column index, 0 at the left edge.
	Y int // Row index, 0 at the top edge.
}

// Edge is an unordered pair of adjacent coordinates sharing a wall.
type Edge struct {
	A Coordinate // One side of the shared wall.
	B Coordinate // The other side of the shared wall.
}

// cell holds the wall state of a single grid cell. Walls are kept on
// both cells that share them, and every mutation goes through the Grid
// so the two sides never disagree.
type cell struct {
	northWall bool
	southWall bool
	eastWall  bool
	westWall  bool
}

// directions lists the four cardinal neighbor offsets in a fixed order.
// The order matters: neighbor enumeration must be deterministic so that
// a seeded random source reproduces the same maze.
var directions = []Coordinate{
	{X: 0, Y: -1}, // North
	{X: 1, Y: 0},  // East
	{X: 0, Y: 1},  // South
	{X: -1, Y: 0}, // West
}

// Grid represents a rectangular lattice of cells and the walls between
// adjacent cells. A fresh grid has every wall present.
type Grid struct {
	Width  int // Number of columns.
	Height int // Number of rows.
	cells  [][]cell
}

// NewGrid creates a Grid of the given dimensions with all walls
// present. Returns ErrInvalidDimension if either dimension is not
// positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{
				northWall: true,
				southWall: true,
				eastWall:  true,
				westWall:  true,
			}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}, nil
}

// InBound reports whether the coordinate lies inside the grid.
func (g *Grid) InBound(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Neighbors returns the in-bounds coordinates adjacent to c, in the
// fixed order north, east, south, west.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	var result []Coordinate
	for _, d := range directions {
		nbr := Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
		if g.InBound(nbr) {
			result = append(result, nbr)
		}
	}
	return result
}

// OpenNeighbors returns the adjacent coordinates reachable from c, that
// is, the in-bounds neighbors with no wall between them and c.
func (g *Grid) OpenNeighbors(c Coordinate) []Coordinate {
	var result []Coordinate
	for _, nbr := range g.Neighbors(c) {
		if !g.HasWall(c, nbr) {
			result = append(result, nbr)
		}
	}
	return result
}

// HasWall reports whether a wall separates a and b. Both sides of a
// shared wall always agree, so HasWall(a, b) == HasWall(b, a).
// Non-adjacent or out-of-bounds pairs are always separated.
func (g *Grid) HasWall(a, b Coordinate) bool {
	if !g.InBound(a) || !g.InBound(b) {
		return true
	}
	switch {
	case b.X == a.X && b.Y == a.Y-1:
		return g.cells[a.Y][a.X].northWall
	case b.X == a.X && b.Y == a.Y+1:
		return g.cells[a.Y][a.X].southWall
	case b.X == a.X+1 && b.Y == a.Y:
		return g.cells[a.Y][a.X].eastWall
	case b.X == a.X-1 && b.Y == a.Y:
		return g.cells[a.Y][a.X].westWall
	}
	return true
}

// RemoveWall clears the wall between a and b on both sides. Removing a
// wall that is already absent, or between a non-adjacent pair, is a
// no-op.
func (g *Grid) RemoveWall(a, b Coordinate) {
	if !g.InBound(a) || !g.InBound(b) {
		return
	}
	switch {
	case b.X == a.X && b.Y == a.Y-1:
		g.cells[a.Y][a.X].northWall = false
		g.cells[b.Y][b.X].southWall = false
	case b.X == a.X && b.Y == a.Y+1:
		g.cells[a.Y][a.X].southWall = false
		g.cells[b.Y][b.X].northWall = false
	case b.X == a.X+1 && b.Y == a.Y:
		g.cells[a.Y][a.X].eastWall = false
		g.cells[b.Y][b.X].westWall = false
	case b.X == a.X-1 && b.Y == a.Y:
		g.cells[a.Y][a.X].westWall = false
		g.cells[b.Y][b.X].eastWall = false
	}
}

// Coordinates returns every coordinate of the grid in row-major order.
func (g *Grid) Coordinates() []Coordinate {
	result := make([]Coordinate, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			result = append(result, Coordinate{X: x, Y: y})
		}
	}
	return result
}

// WalledEdges returns every adjacent pair of in-bounds coordinates that
// still has a wall between them. Each shared wall is reported once,
// with the east or south cell as B.
func (g *Grid) WalledEdges() []Edge {
	var result []Edge
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coordinate{X: x, Y: y}
			east := Coordinate{X: x + 1, Y: y}
			if g.InBound(east) && g.HasWall(c, east) {
				result = append(result, Edge{A: c, B: east})
			}
			south := Coordinate{X: x, Y: y + 1}
			if g.InBound(south) && g.HasWall(c, south) {
				result = append(result, Edge{A: c, B: south})
			}
		}
	}
	return result
}
