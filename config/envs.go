package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the REST server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	MazeHeight      int    // Maze rows for the terminal game
	MazeWidth       int    // Maze columns for the terminal game
	MazeAlgorithm   string // Generator to use: "dfs" or "kruskal"
	MazeMaxAttempts int    // Generation retries before giving up on a solvable maze
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file. Every setting has a
// default so the game runs with no environment at all.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		MazeHeight:      getEnvAsIntWithDefault("MAZE_HEIGHT", 10),
		MazeWidth:       getEnvAsIntWithDefault("MAZE_WIDTH", 14),
		MazeAlgorithm:   getEnvWithDefault("MAZE_ALGORITHM", "dfs"),
		MazeMaxAttempts: getEnvAsIntWithDefault("MAZE_MAX_ATTEMPTS", 25),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// or returns a default value if not set. A set but unparsable value is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
