package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "console", cfg.Input.Kind)
	assert.Equal(t, "console", cfg.Output.Kind)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Session.KeepGoing)
	assert.Equal(t, 10*time.Second, cfg.GetLoadTimeout())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcdebug.yaml")
	data := `
input:
  kind: file
  path: cases.txt
logging:
  level: debug
session:
  keep_going: true
  load_timeout: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, IOConfig{Kind: "file", Path: "cases.txt"}, cfg.Input)
	assert.Equal(t, "console", cfg.Output.Kind)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Session.KeepGoing)
	assert.Equal(t, 2*time.Second, cfg.GetLoadTimeout())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvInput, "file:in.txt")
	t.Setenv(EnvOutput, "file:out/result.txt")
	t.Setenv(EnvKeepGoing, "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "file:in.txt", cfg.Input.Locator())
	assert.Equal(t, IOConfig{Kind: "file", Path: "out/result.txt"}, cfg.Output)
	assert.True(t, cfg.Session.KeepGoing)
}

func TestLoad_EnvOverrideInvalid(t *testing.T) {
	t.Setenv(EnvKeepGoing, "perhaps")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvKeepGoing)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lcdebug.yaml")
	cfg := DefaultConfig()
	cfg.Output = IOConfig{Kind: "file", Path: "out.txt"}
	cfg.Session.NormalizeWidth = true

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown input kind", func(c *Config) { c.Input.Kind = "socket" }, "invalid input kind"},
		{"file output without path", func(c *Config) { c.Output = IOConfig{Kind: "file"} }, "requires a path"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
		{"bad timeout", func(c *Config) { c.Session.LoadTimeout = "soon" }, "invalid load timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConsoleLocator(t *testing.T) {
	assert.Equal(t, "console", IOConfig{Kind: "console"}.Locator())
	io, err := ParseIO("console")
	require.NoError(t, err)
	assert.Equal(t, IOConfig{Kind: "console"}, io)
}
