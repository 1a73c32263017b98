/*
Package render converts a maze grid plus one overlay frame into a
fixed-width ASCII text block. Cells are drawn three characters wide
with a marker glyph in the middle; wall segments are drawn or omitted
from the current wall state.
*/
package render

import (
	"strings"

	"github.com/StickySide/maze/config"
	"github.com/StickySide/maze/maze"
)

// Overlay glyphs, highest priority first: entrance, exit, solution
// path, search frontier, visited cells.
const (
	glyphStart    = config.ColorRed + "S" + config.ColorReset
	glyphEnd      = config.ColorBlue + "E" + config.ColorReset
	glyphPath     = config.ColorGreen + "*" + config.ColorReset
	glyphFrontier = "@"
	glyphVisited  = config.ColorYellow + "." + config.ColorReset
	glyphNone     = " "
)

// ASCII renders the maze as a box grid: "+" at every corner, "---" and
// "|" for present walls, blanks for removed ones. Rendering is a pure
// function of the grid and frame, so unchanged inputs produce
// byte-identical output.
type ASCII struct{}

// Render implements the maze.Renderer contract.
func (ASCII) Render(g *maze.Grid, f maze.Frame) string {
	path := make(map[maze.Coordinate]struct{}, len(f.Path))
	for _, c := range f.Path {
		path[c] = struct{}{}
	}
	frontier := make(map[maze.Coordinate]struct{}, len(f.Frontier))
	for _, c := range f.Frontier {
		frontier[c] = struct{}{}
	}

	// Top boundary
	output := "+" + strings.Repeat("---+", g.Width) + "\n"

	for y := 0; y < g.Height; y++ {
		// Cell rows
		cellRow := "|"
		for x := 0; x < g.Width; x++ {
			c := maze.Coordinate{X: x, Y: y}
			cellRow += " " + glyph(c, f, path, frontier) + " "

			// Add east wall or space; out-of-bounds queries report a
			// wall, which draws the right border.
			if g.HasWall(c, maze.Coordinate{X: x + 1, Y: y}) {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for x := 0; x < g.Width; x++ {
			c := maze.Coordinate{X: x, Y: y}
			if g.HasWall(c, maze.Coordinate{X: x, Y: y + 1}) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}

// glyph picks the overlay marker for one cell.
func glyph(c maze.Coordinate, f maze.Frame, path, frontier map[maze.Coordinate]struct{}) string {
	if f.Start != nil && *f.Start == c {
		return glyphStart
	}
	if f.End != nil && *f.End == c {
		return glyphEnd
	}
	if _, ok := path[c]; ok {
		return glyphPath
	}
	if _, ok := frontier[c]; ok {
		return glyphFrontier
	}
	if _, ok := f.Visited[c]; ok {
		return glyphVisited
	}
	return glyphNone
}
