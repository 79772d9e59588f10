package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadArgsDefaultsWithoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, cfg.Settings.API.Endpoint)
	assert.Equal(t, 30, cfg.Settings.API.TimeoutSeconds)
	assert.Equal(t, 12, cfg.Settings.UI.PageSize)
	assert.True(t, cfg.Settings.UI.ShowHints)
	assert.Equal(t, "default", cfg.Settings.UI.Theme)
	assert.True(t, cfg.Settings.Cache.EnableCache)
	assert.Equal(t, 300, cfg.Settings.Cache.TTLSeconds)
	assert.Equal(t, path, cfg.SettingsPath)
	assert.NoError(t, Validate(cfg))
}

func TestPrecedenceFileEnvFlag(t *testing.T) {
	path := writeSettings(t, `
api:
  endpoint: https://file.example
  timeout_seconds: 10
auth:
  token: file-token
ui:
  page_size: 20
  theme: dark
`)
	environ := []string{
		"BIZRAY_CONFIG=" + path,
		"BIZRAY_API_ENDPOINT=https://env.example",
		"BIZRAY_UI_PAGE_SIZE=25",
		"BIZRAY_TRACE=true",
		"UNRELATED=1",
	}
	cfg, err := LoadArgs([]string{"--page-size", "30", "--no-hints", "extra"}, environ)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.Settings.API.Endpoint)
	assert.Equal(t, 10, cfg.Settings.API.TimeoutSeconds)
	assert.Equal(t, 30, cfg.Settings.UI.PageSize)
	assert.Equal(t, "dark", cfg.Settings.UI.Theme)
	assert.Equal(t, "file-token", cfg.Settings.Auth.Token)
	assert.False(t, cfg.Settings.UI.ShowHints)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, []string{"extra"}, cfg.Args)

	assert.Equal(t, "https://file.example", cfg.File.API.Endpoint, "file view keeps file values")
	assert.Equal(t, "30", cfg.Flags["page-size"])
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")
	cfg, err := LoadArgs(nil, []string{"BIZRAY_CONFIG=" + path, "BIZRAY_UI_PAGE_SIZE=lots", "BIZRAY_UI_SHOW_HINTS=maybe"})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Settings.UI.PageSize)
	assert.True(t, cfg.Settings.UI.ShowHints)
}

func TestUnknownFlagFails(t *testing.T) {
	_, err := LoadArgs([]string{"--bogus"}, nil)
	assert.Error(t, err)
}

func TestMalformedFileFails(t *testing.T) {
	path := writeSettings(t, "api: [not a map")
	_, err := LoadArgs([]string{"--config", path}, nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Settings: Defaults()}
	require.NoError(t, Validate(base))

	cases := map[string]func(*Settings){
		"endpoint": func(s *Settings) { s.API.Endpoint = "ftp://x" },
		"empty":    func(s *Settings) { s.API.Endpoint = "" },
		"timeout":  func(s *Settings) { s.API.TimeoutSeconds = 0 },
		"page":     func(s *Settings) { s.UI.PageSize = 101 },
		"theme":    func(s *Settings) { s.UI.Theme = "neon" },
	}
	for name, mutate := range cases {
		cfg := Config{Settings: Defaults()}
		mutate(&cfg.Settings)
		err := Validate(cfg)
		assert.Truef(t, errors.Is(err, ErrInvalid), "%s: expected ErrInvalid, got %v", name, err)
	}
}

func TestPrefixedEnvKeys(t *testing.T) {
	keys := PrefixedEnvKeys([]string{"BIZRAY_TRACE=1", "HOME=/root", "BIZRAY_UI_THEME=dark"})
	assert.ElementsMatch(t, []string{"BIZRAY_TRACE", "BIZRAY_UI_THEME"}, keys)
}
