package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP   string // Host IP the gRPC server binds to
	GrpcPort int    // Port for the gRPC server

	SessionIdleTimeout int // Seconds a session may sit without actions before it is closed

	DefaultRows    int // Board rows used when a client does not choose
	DefaultCols    int // Board columns used when a client does not choose
	DefaultHazards int // Hazard count used when a client does not choose
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file when one exists.
func initConfig() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[APP] [WARN] .env file could not be loaded: %v", err)
	}

	return Config{
		HostIP:   getEnv("HOST_IP", "0.0.0.0"),
		GrpcPort: getEnvAsInt("GRPC_PORT", 50051),

		SessionIdleTimeout: getEnvAsInt("SESSION_IDLE_TIMEOUT", 600),

		DefaultRows:    getEnvAsInt("DEFAULT_ROWS", 9),
		DefaultCols:    getEnvAsInt("DEFAULT_COLS", 9),
		DefaultHazards: getEnvAsInt("DEFAULT_HAZARDS", 10),
	}
}

// getEnv retrieves the value of an environment variable or fallback if not set.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if it cannot be parsed.
func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("%s[APP]%s %s[FATAL]%s Environment variable %s must be an integer: %v", ColorGreen, ColorReset, ColorRed, ColorReset, key, err)
	}
	return value
}
