package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so no stray .env is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(envOutput, "")
	t.Setenv(envLogLevel, "")
	t.Setenv(envNoColor, "")
	os.Unsetenv(envNoColor)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(envOutput, " JSON ")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envNoColor, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(envOutput+"=yaml\n"), 0o644))
	chdir(t, dir)
	t.Setenv(envOutput, "")
	os.Unsetenv(envOutput)
	t.Setenv(envLogLevel, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestLoad_InvalidOutput(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(envOutput, "xml")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported output format: xml")
}
