package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/atomicstack/bizray-tui/internal/logging/events"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint       = "https://apibizray.bnbdevelopment.hu"
	DefaultTimeoutSeconds = 30
	DefaultPageSize       = 12
	DefaultTheme          = "default"
	DefaultCacheTTL       = 300
)

// Settings is the persisted user configuration.
type Settings struct {
	API   APISettings   `yaml:"api"`
	Auth  AuthSettings  `yaml:"auth"`
	UI    UISettings    `yaml:"ui"`
	Cache CacheSettings `yaml:"cache"`
}

type APISettings struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type AuthSettings struct {
	Token string `yaml:"token,omitempty"`
}

type UISettings struct {
	PageSize  int    `yaml:"page_size"`
	ShowHints bool   `yaml:"show_hints"`
	Theme     string `yaml:"theme"`
}

// CacheSettings is carried for compatibility with existing config files.
type CacheSettings struct {
	EnableCache bool `yaml:"enable_cache"`
	TTLSeconds  int  `yaml:"ttl_seconds"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		API:   APISettings{Endpoint: DefaultEndpoint, TimeoutSeconds: DefaultTimeoutSeconds},
		UI:    UISettings{PageSize: DefaultPageSize, ShowHints: true, Theme: DefaultTheme},
		Cache: CacheSettings{EnableCache: true, TTLSeconds: DefaultCacheTTL},
	}
}

// DefaultSettingsPath returns $XDG_CONFIG_HOME/bizray-tui/config.yaml or the
// platform equivalent.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "config.yaml"
	}
	return filepath.Join(dir, "bizray-tui", "config.yaml")
}

// LoadSettings reads path on top of Defaults. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	settings := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Defaults(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return settings, nil
}

// SaveSettings writes settings to path with owner-only permissions.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace settings: %w", err)
	}
	return os.Chmod(path, 0o600)
}

// Store persists the credential into the settings file. Only the file-backed
// values are written back; environment and flag overrides never are.
type Store struct {
	mu   sync.Mutex
	path string
	file Settings
}

// NewStore wraps the settings that were read from path.
func NewStore(path string, file Settings) *Store {
	return &Store{path: path, file: file}
}

// Path returns the settings file location.
func (s *Store) Path() string { return s.path }

// Settings returns a copy of the file-backed settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file
}

// SaveToken stores token and writes the file.
func (s *Store) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file.Auth.Token = token
	if err := SaveSettings(s.path, s.file); err != nil {
		events.Settings.SaveFailed(s.path, err)
		return err
	}
	events.Settings.Saved(s.path)
	return nil
}

// ClearToken removes the stored token and writes the file.
func (s *Store) ClearToken() error {
	return s.SaveToken("")
}
