package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists in the working directory.
//
// Recognized variables:
//
//	ANUNCIA_API_URL  — backend base URL
//	ANUNCIA_TIMEOUT  — request timeout in seconds
//	ANUNCIA_DB       — local database path
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("ANUNCIA_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("ANUNCIA_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("ANUNCIA_DB"); v != "" {
		cfg.LocalDBPath = v
	}
}
