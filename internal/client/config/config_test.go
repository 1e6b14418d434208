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

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerBaseURL)
	assert.Equal(t, "reflecta.db", c.DatabasePath)
	assert.Equal(t, 3*time.Second, c.ProbeTimeout)
	assert.Equal(t, 15*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 5*time.Minute, c.StalenessThreshold)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
	assert.Equal(t, 5*time.Minute, cfg.StalenessThreshold)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-a", "http://example.com:9999", "-i", "30", "-s", "600"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://example.com:9999", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, 10*time.Minute, cfg.StalenessThreshold)
	// Untouched flag keeps its default.
	assert.Equal(t, "reflecta.db", cfg.DatabasePath)
}
