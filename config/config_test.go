package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "hospitaldesk.db", cfg.DB.Path)
	assert.True(t, cfg.Dashboard.Enabled)
	assert.Equal(t, []string{"index", "patients", "appointments", "billing"}, cfg.Dashboard.Pages)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9191")
	t.Setenv("DASHBOARD_PAGES", "index , patients,,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.App.Port)
	assert.Equal(t, []string{"index", "patients"}, cfg.Dashboard.Pages)
}
