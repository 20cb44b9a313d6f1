package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// a missing .env is fine
	_ = godotenv.Load()
}

// Config captures environment driven defaults for the openhours command.
// Command line flags take precedence.
type Config struct {
	Workers     int
	Format      string
	HTTPTimeout time.Duration
}

// Load parses configuration values from the current process environment,
// after an optional .env file in the working directory has been applied.
//
// Invalid values are collected and reported together.
func Load() (Config, error) {
	cfg := Config{
		Workers:     runtime.NumCPU(),
		Format:      "text",
		HTTPTimeout: 30 * time.Second,
	}

	invalid := make([]string, 0, 3)

	if workersValue := strings.TrimSpace(os.Getenv("OPENHOURS_WORKERS")); workersValue != "" {
		workers, err := strconv.Atoi(workersValue)
		if err != nil || workers <= 0 {
			invalid = append(invalid, "OPENHOURS_WORKERS")
		} else {
			cfg.Workers = workers
		}
	}

	if format := strings.ToLower(strings.TrimSpace(os.Getenv("OPENHOURS_FORMAT"))); format != "" {
		switch format {
		case "text", "json", "yaml":
			cfg.Format = format
		default:
			invalid = append(invalid, "OPENHOURS_FORMAT")
		}
	}

	if timeoutValue := strings.TrimSpace(os.Getenv("OPENHOURS_HTTP_TIMEOUT")); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil || timeout <= 0 {
			invalid = append(invalid, "OPENHOURS_HTTP_TIMEOUT")
		} else {
			cfg.HTTPTimeout = timeout
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
