// Package config holds runtime settings for the Anuncia client and the
// layered loader that populates them.
package config

import "time"

// Config holds runtime settings for the Anuncia CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api
//     prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - LocalDBPath: path of the local SQLite database holding the
//     persisted session.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	LocalDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3003/api"
	c.RequestTimeout = 10 * time.Second
	c.LocalDBPath = "anuncia.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if given via -c/-config), and finally command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
