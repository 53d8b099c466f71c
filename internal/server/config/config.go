// Package config handles configuration for the server component,
// including defaults, environment overrides, JSON overlay, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the Musegen server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: SQLite path or postgres:// DSN.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required and
//     confidential; do not use the development default in prod.
//   - TokenValidityDuration: bearer token lifetime.
//   - OpenAIAPIKey: key for the image-generation provider.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings. When the
//     bucket is empty, generated images are not mirrored.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	OpenAIAPIKey          string
	S3RootUser            string
	S3RootPassword        string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5001"
	c.DatabaseDSN = "musegen.db"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 1 * time.Hour
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
