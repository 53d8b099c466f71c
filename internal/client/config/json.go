package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/badriyvp/musegen/internal/flagx"
	"github.com/badriyvp/musegen/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify timeouts either as strings like "10s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerURL         string         `json:"server_url"`
	DatabasePath      string         `json:"database_path"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	GenerationTimeout timex.Duration `json:"generation_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. Omitted keys keep their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.GenerationTimeout.Duration != 0 {
		cfg.GenerationTimeout = time.Duration(jc.GenerationTimeout.Duration)
	}
}
