package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8088", cfg.Addr)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.DashboardPath)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SVCDASH_ADDR", ":9000")
	t.Setenv("SVCDASH_DASHBOARD", "/srv/index.html")
	t.Setenv("SVCDASH_SERVICES", "/etc/svcdash.toml")
	t.Setenv("SVCDASH_WATCH", "false")
	t.Setenv("SVCDASH_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/srv/index.html", cfg.DashboardPath)
	assert.Equal(t, "/etc/svcdash.toml", cfg.ServicesFile)
	assert.False(t, cfg.Watch)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_BadBool(t *testing.T) {
	t.Setenv("SVCDASH_WATCH", "maybe")
	_, err := Load()
	assert.Error(t, err)
}
