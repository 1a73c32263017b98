package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the CLI's default settings. Every knob has a built-in
// default, can be overridden with an environment variable (optionally
// from a .env file), and is overridden in turn by a command-line flag.
type Config struct {
	Width     int    // Default maze width in cells
	Height    int    // Default maze height in cells
	Generator string // Default generation strategy name
	Solver    string // Default solving strategy name
	FPS       int    // Default live animation frame rate
	Holes     int    // Default number of extra walls to remove
	Seed      int64  // Default random seed; 0 seeds from the current time
}

// Envs holds the default configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the default configuration.
// It loads environment variables from a .env file when one exists.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[MAZE] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		Width:     getEnvAsInt("MAZE_WIDTH", 40),
		Height:    getEnvAsInt("MAZE_HEIGHT", 20),
		Generator: getEnvWithDefault("MAZE_GENERATOR", "dfs"),
		Solver:    getEnvWithDefault("MAZE_SOLVER", "bfs"),
		FPS:       getEnvAsInt("MAZE_FPS", 30),
		Holes:     getEnvAsInt("MAZE_HOLES", 0),
		Seed:      getEnvAsInt64("MAZE_SEED", 0),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or
// returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves the value of an environment variable as an
// integer or logs a fatal error if it cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[MAZE] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsInt64 retrieves the value of an environment variable as a
// 64-bit integer or logs a fatal error if it cannot be parsed.
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[MAZE] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
