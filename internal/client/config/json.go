package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/anunciabr/anuncia/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is given in seconds.
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	RequestTimeout int    `json:"request_timeout"`
	LocalDBPath    string `json:"local_db_path"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON stage. Read or unmarshal
// errors panic; config is resolved once at startup and a broken file
// should stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
}
