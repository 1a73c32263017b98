package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/StickySide/maze/config"
	"github.com/StickySide/maze/generator"
	"github.com/StickySide/maze/maze"
	"github.com/StickySide/maze/render"
	"github.com/StickySide/maze/solver"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// clearScreen wipes the terminal before a live run so frame redraws
// start from a clean screen.
const clearScreen = "\x1b[2J\x1b[H"

// Strategy registries backing the CLI enums. Library callers are not
// limited to these; any maze.Generator or maze.Solver plugs in.
var (
	generators = map[string]maze.Generator{
		"dfs":   generator.DFS{},
		"prim":  generator.Prim{},
		"empty": generator.Empty{},
	}
	solvers = map[string]maze.Solver{
		"bfs":  solver.BFS{},
		"dfs":  solver.DFS{},
		"rdfs": solver.RecursiveDFS{},
	}
)

// options holds the parsed command-line flags.
type options struct {
	width     int
	height    int
	generator string
	solver    string
	live      bool
	holes     int
	fps       int
	seed      int64
}

// parseFlags reads the command line. Each flag has a short and a long
// name, and defaults come from the environment-backed config.
func parseFlags() options {
	var o options

	flag.IntVar(&o.width, "x", config.Envs.Width, "maze width in cells")
	flag.IntVar(&o.width, "width", config.Envs.Width, "maze width in cells")
	flag.IntVar(&o.height, "y", config.Envs.Height, "maze height in cells")
	flag.IntVar(&o.height, "height", config.Envs.Height, "maze height in cells")
	flag.StringVar(&o.generator, "g", config.Envs.Generator, "generation strategy: dfs, prim, or empty")
	flag.StringVar(&o.generator, "generator", config.Envs.Generator, "generation strategy: dfs, prim, or empty")
	flag.StringVar(&o.solver, "s", config.Envs.Solver, "solving strategy: bfs, dfs, or rdfs")
	flag.StringVar(&o.solver, "solver", config.Envs.Solver, "solving strategy: bfs, dfs, or rdfs")
	flag.BoolVar(&o.live, "l", false, "animate generation and solving in the terminal")
	flag.BoolVar(&o.live, "live", false, "animate generation and solving in the terminal")
	flag.IntVar(&o.holes, "o", config.Envs.Holes, "extra walls to remove after generation")
	flag.IntVar(&o.holes, "holes", config.Envs.Holes, "extra walls to remove after generation")
	flag.IntVar(&o.fps, "f", config.Envs.FPS, "live animation frame rate")
	flag.IntVar(&o.fps, "fps", config.Envs.FPS, "live animation frame rate")
	flag.Int64Var(&o.seed, "seed", config.Envs.Seed, "random seed; 0 seeds from the current time")
	flag.Parse()

	return o
}

// usageError prints a message plus usage and exits non-zero. Used for
// argument problems detected before the maze is constructed.
func usageError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	flag.Usage()
	os.Exit(2)
}

func main() {
	o := parseFlags()

	gen, ok := generators[o.generator]
	if !ok {
		usageError("unknown generator %q (choose dfs, prim, or empty)", o.generator)
	}
	sol, ok := solvers[o.solver]
	if !ok {
		usageError("unknown solver %q (choose bfs, dfs, or rdfs)", o.solver)
	}

	m, err := maze.New(maze.Config{
		Width:     o.width,
		Height:    o.height,
		Generator: gen,
		Solver:    sol,
		Renderer:  render.ASCII{},
		Seed:      o.seed,
		Holes:     o.holes,
		Out:       os.Stdout,
	})
	if err != nil {
		usageError("invalid maze configuration: %v", err)
	}

	if o.live {
		fmt.Print(clearScreen)
	}

	started := time.Now()
	m.Generate(o.live, o.fps)
	path := m.Solve(o.live, o.fps)

	if !o.live {
		fmt.Printf("Generator: %s | Solver: %s\n", o.generator, o.solver)
		fmt.Print(m)
	} else {
		fmt.Println()
	}

	entry := log.WithFields(logrus.Fields{
		"maze_id":   m.ID,
		"width":     o.width,
		"height":    o.height,
		"generator": o.generator,
		"solver":    o.solver,
		"elapsed":   time.Since(started).Round(time.Millisecond),
	})
	if path == nil {
		entry.Warn("no path from entrance to exit")
		os.Exit(1)
	}
	entry.WithField("path_len", len(path)).Info("maze solved")
}
