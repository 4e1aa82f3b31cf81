package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.True(t, cfg.SeedSample)
	assert.Equal(t, "unicode", cfg.Glyphs)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, "json", cfg.Format)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PHOTOLICENSE_SEED_SAMPLE", "false")
	t.Setenv("PHOTOLICENSE_LOG_FORMAT", "Console")
	t.Setenv("PHOTOLICENSE_GLYPHS", "ASCII")
	t.Setenv("PHOTOLICENSE_FORMAT", "edn")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.SeedSample)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "ascii", cfg.Glyphs)
	assert.Equal(t, "edn", cfg.Format)
}

func TestFromEnv_RejectsUnknownFormat(t *testing.T) {
	t.Setenv("PHOTOLICENSE_FORMAT", "yaml")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_RejectsBadBool(t *testing.T) {
	t.Setenv("PHOTOLICENSE_SEED_SAMPLE", "sometimes")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PHOTOLICENSE_THEME=dark\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("PHOTOLICENSE_THEME", "")
	require.NoError(t, os.Unsetenv("PHOTOLICENSE_THEME"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
}
