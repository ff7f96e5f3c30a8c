package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from a temp dir so a developer's config.yaml is not picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "data.csv", cfg.Paths.DataFile)
	assert.Equal(t, "output.json", cfg.Paths.OutputFile)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Server.RateLimit.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TAB_LOGGING_LEVEL", "debug")
	t.Setenv("TAB_PATHS_DATA_FILE", "incoming.xlsx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "incoming.xlsx", cfg.Paths.DataFile)
}

func TestLoad_InvalidLevelRejected(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TAB_LOGGING_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data.csv", cfg.Paths.DataFile)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.EqualValues(t, 100, cfg.Server.RateLimit.RPS)
}
