package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Log.Level, cfg.Log.Level)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, "지도", cfg.Label("map"))
	assert.Equal(t, "travelshell", cfg.Telemetry.ServiceName)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log:
  level: debug
ui:
  alt_screen: false
  labels:
    home: Home
profile:
  name: minji
  preferences: [sea, cafe]
map:
  regions_file: /tmp/regions.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, "Home", cfg.Label("home"))
	assert.Equal(t, "minji", cfg.Profile.Name)
	assert.Equal(t, []string{"sea", "cafe"}, cfg.Profile.Preferences)
	assert.Equal(t, "/tmp/regions.yaml", cfg.Map.RegionsFile)
	assert.NotEmpty(t, cfg.Log.Path, "unset fields keep defaults")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(LogPathEnv, "/var/log/ts.log")
	t.Setenv(LogLevelEnv, "warn")
	t.Setenv(ServiceNameEnv, "shell-dev")
	t.Setenv(OTLPEndpointEnv, "localhost:4318")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/var/log/ts.log", cfg.Log.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "shell-dev", cfg.Telemetry.ServiceName)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.OTLPEndpoint)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Profile.Name = "saved"

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "saved", loaded.Profile.Name)
}

func TestLabel_Fallback(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "journey", cfg.Label("journey"))
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv(PathEnv, "/etc/travelshell.yaml")
	assert.Equal(t, "/etc/travelshell.yaml", DefaultPath())
}
