package config

import "time"

// Config holds runtime settings for the CLI client.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - DatabasePath: path of the local SQLite file holding session metadata.
//   - RequestTimeout: timeout for control calls (auth, profile, history).
//   - GenerationTimeout: timeout for image generation, which takes minutes.
type Config struct {
	ServerURL         string
	DatabasePath      string
	RequestTimeout    time.Duration
	GenerationTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5001"
	c.DatabasePath = "musegen.db"
	c.RequestTimeout = 10 * time.Second
	c.GenerationTimeout = 3 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
