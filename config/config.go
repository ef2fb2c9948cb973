package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the run configuration. Values come from defaults, then the
// environment (optionally seeded from .env), then command-line flags.
type Config struct {
	SourcePath string
	Threshold  int
	OutputPath string
	LogLevel   string
}

// Load reads the .env file if present and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] Ignoring unreadable .env file: %v", err)
	}

	return &Config{
		SourcePath: getEnv("INVENTORY_FILE", "inventory.xml"),
		Threshold:  getEnvInt("LOW_STOCK_THRESHOLD", 10),
		OutputPath: getEnv("LOW_STOCK_OUTPUT", "low_stock.csv"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
