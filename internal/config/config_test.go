package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionfind/internal/config"
)

// TestLoad_Defaults applies built-in defaults on an empty viper.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, config.Config{Format: config.FormatJSON}, cfg)
}

// TestLoad_File reads values from a YAML config file.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dsu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: text\nverbose: true\n"), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Watch)
}

// TestLoad_Env honours DSU_* environment overrides.
func TestLoad_Env(t *testing.T) {
	t.Setenv("DSU_WATCH", "true")

	v := viper.New()
	v.SetEnvPrefix("DSU")
	v.AutomaticEnv()

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Watch)
}

// TestLoad_BadFormat rejects unknown output formats.
func TestLoad_BadFormat(t *testing.T) {
	v := viper.New()
	v.Set("format", "xml")
	_, err := config.Load(v)
	assert.ErrorIs(t, err, config.ErrBadFormat)
}
