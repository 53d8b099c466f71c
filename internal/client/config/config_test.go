package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5001", c.ServerURL)
	assert.Equal(t, "musegen.db", c.DatabasePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Minute, c.GenerationTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	os.Args = []string{"cmd"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:5001", cfg.ServerURL)
	assert.Equal(t, 3*time.Minute, cfg.GenerationTimeout)
}
