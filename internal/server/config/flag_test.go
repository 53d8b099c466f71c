package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd",
		"-a", "127.0.0.1:9090", "-d", "test.db", "-s", "secret",
		"-t", "30", "-k", "sk-flag", "-u", "user", "-p", "password",
		"-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
	}

	config := &Config{}
	require.NotPanics(t, func() { parseFlags(config) })

	assert.Equal(t, "127.0.0.1:9090", config.EndpointAddr)
	assert.Equal(t, "test.db", config.DatabaseDSN)
	assert.Equal(t, "secret", config.SecretKey)
	assert.Equal(t, 30*time.Minute, config.TokenValidityDuration)
	assert.Equal(t, "sk-flag", config.OpenAIAPIKey)
	assert.Equal(t, "user", config.S3RootUser)
	assert.Equal(t, "password", config.S3RootPassword)
	assert.Equal(t, "bucket", config.S3Bucket)
	assert.Equal(t, "us-west-1", config.S3Region)
	assert.Equal(t, "http://endpoint", config.S3BaseEndpoint)
}

func TestParseFlags_DefaultsPreserved(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, ":5001", config.EndpointAddr)
	assert.Equal(t, 1*time.Hour, config.TokenValidityDuration)
}
