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

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerEndpointAddr)
	assert.Equal(t, "streetbite.db", c.StoragePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointAddr)
	assert.Equal(t, "streetbite.db", cfg.StoragePath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_OverlaysOnlySetVariables(t *testing.T) {
	t.Setenv("STREETBITE_SERVER_ADDR", "http://api.example.com")
	t.Setenv("STREETBITE_REQUEST_TIMEOUT", "3s")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "http://api.example.com", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	// Unset variable leaves the default.
	assert.Equal(t, "streetbite.db", cfg.StoragePath)
}
