package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveTokenPersistsOnlyFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	file := Defaults()
	file.UI.Theme = "light"
	store := NewStore(path, file)

	require.NoError(t, store.SaveToken("secret-token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", loaded.Auth.Token)
	assert.Equal(t, "light", loaded.UI.Theme)

	require.NoError(t, store.ClearToken())
	loaded, err = LoadSettings(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Auth.Token)
	assert.Empty(t, store.Settings().Auth.Token)
}

func TestStoreSaveFailureReturnsError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	store := NewStore(filepath.Join(blocker, "config.yaml"), Defaults())
	assert.Error(t, store.SaveToken("x"))
	assert.Equal(t, "x", store.Settings().Auth.Token, "in-memory value is kept")
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: dark\n"), 0o600))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", s.UI.Theme)
	assert.Equal(t, DefaultPageSize, s.UI.PageSize)
	assert.Equal(t, DefaultEndpoint, s.API.Endpoint)
}
