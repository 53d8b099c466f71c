package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"server_url": "http://example.com:8080",
		"database_path": "other.db",
		"request_timeout": "5s",
		"generation_timeout": "2m"
	}`)

	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://example.com:8080", cfg.ServerURL)
	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.GenerationTimeout)
}

func TestParseJson_OmittedKeysKeepDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"server_url": "http://example.com:8080"}`)

	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://example.com:8080", cfg.ServerURL)
	assert.Equal(t, "musegen.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://localhost:5001", cfg.ServerURL)
}
