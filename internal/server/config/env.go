package config

import "os"

// parseEnv overlays the confidential settings from environment variables.
// These are the values that should never end up in config files on disk.
//
//	JWT_SECRET      — token signing secret
//	OPENAI_API_KEY  — image-generation provider key
//	DATABASE_DSN    — storage DSN
func parseEnv(config *Config) {
	setIfNotEmpty(&config.SecretKey, os.Getenv("JWT_SECRET"))
	setIfNotEmpty(&config.OpenAIAPIKey, os.Getenv("OPENAI_API_KEY"))
	setIfNotEmpty(&config.DatabaseDSN, os.Getenv("DATABASE_DSN"))
}
