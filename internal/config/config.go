package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	Settings     Settings
	SettingsPath string
	File         Settings
	Logging      Logging
	Flags        map[string]string
	Args         []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	EnvPrefix    = "BIZRAY_"
	envConfig    = "BIZRAY_CONFIG"
	envEndpoint  = "BIZRAY_API_ENDPOINT"
	envTimeout   = "BIZRAY_API_TIMEOUT_SECONDS"
	envToken     = "BIZRAY_AUTH_TOKEN"
	envPageSize  = "BIZRAY_UI_PAGE_SIZE"
	envShowHints = "BIZRAY_UI_SHOW_HINTS"
	envTheme     = "BIZRAY_UI_THEME"
	envLogFile   = "BIZRAY_LOG_FILE"
	envTrace     = "BIZRAY_TRACE"
	maxPageSize  = 100
	flagConfig   = "config"
	flagEndpoint = "endpoint"
	flagTimeout  = "timeout"
	flagPageSize = "page-size"
	flagTheme    = "theme"
	flagNoHints  = "no-hints"
	flagLogFile  = "log-file"
	flagTrace    = "trace"
)

// Themes lists the accepted theme names.
var Themes = []string{"default", "dark", "light"}

// Options holds raw flag values registered by BindFlags.
type Options struct {
	ConfigPath string
	Endpoint   string
	Timeout    int
	PageSize   int
	Theme      string
	NoHints    bool
	LogFile    string
	Trace      bool
}

// BindFlags registers the application flags on fs.
func BindFlags(fs *pflag.FlagSet) *Options {
	opts := &Options{}
	fs.StringVar(&opts.ConfigPath, flagConfig, "", "path to the settings file (default "+DefaultSettingsPath()+")")
	fs.StringVar(&opts.Endpoint, flagEndpoint, "", "BizRay API base URL")
	fs.IntVar(&opts.Timeout, flagTimeout, 0, "request timeout in seconds")
	fs.IntVar(&opts.PageSize, flagPageSize, 0, "results per page")
	fs.StringVar(&opts.Theme, flagTheme, "", "colour theme ("+strings.Join(Themes, ", ")+")")
	fs.BoolVar(&opts.NoHints, flagNoHints, false, "hide key hints in the status bar")
	fs.StringVar(&opts.LogFile, flagLogFile, "", "path to the log file")
	fs.BoolVar(&opts.Trace, flagTrace, false, "enable verbose JSON trace logging")
	return opts
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("bizray", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	opts := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := Resolve(fs, opts, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), fs.Args()...)
	return cfg, nil
}

// Resolve layers defaults, the settings file, BIZRAY_* variables and the
// flags that were set explicitly, in that order.
func Resolve(fs *pflag.FlagSet, opts *Options, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := envOrDefault(env, envConfig, DefaultSettingsPath())
	if fs.Changed(flagConfig) {
		path = opts.ConfigPath
	}
	file, err := LoadSettings(path)
	if err != nil {
		return Config{}, err
	}

	s := file
	s.API.Endpoint = envOrDefault(env, envEndpoint, s.API.Endpoint)
	s.API.TimeoutSeconds = envOrInt(env, envTimeout, s.API.TimeoutSeconds)
	s.Auth.Token = envOrDefault(env, envToken, s.Auth.Token)
	s.UI.PageSize = envOrInt(env, envPageSize, s.UI.PageSize)
	s.UI.ShowHints = envOrBool(env, envShowHints, s.UI.ShowHints)
	s.UI.Theme = envOrDefault(env, envTheme, s.UI.Theme)
	logging := Logging{
		FilePath: envOrDefault(env, envLogFile, ""),
		Trace:    envOrBool(env, envTrace, false),
	}

	if fs.Changed(flagEndpoint) {
		s.API.Endpoint = opts.Endpoint
	}
	if fs.Changed(flagTimeout) {
		s.API.TimeoutSeconds = opts.Timeout
	}
	if fs.Changed(flagPageSize) {
		s.UI.PageSize = opts.PageSize
	}
	if fs.Changed(flagTheme) {
		s.UI.Theme = opts.Theme
	}
	if fs.Changed(flagNoHints) {
		s.UI.ShowHints = !opts.NoHints
	}
	if fs.Changed(flagLogFile) {
		logging.FilePath = opts.LogFile
	}
	if fs.Changed(flagTrace) {
		logging.Trace = opts.Trace
	}

	cfg := Config{
		Settings:     s,
		SettingsPath: path,
		File:         file,
		Logging:      logging,
		Flags: map[string]string{
			flagConfig:   path,
			flagEndpoint: s.API.Endpoint,
			flagTimeout:  strconv.Itoa(s.API.TimeoutSeconds),
			flagPageSize: strconv.Itoa(s.UI.PageSize),
			flagTheme:    s.UI.Theme,
			flagNoHints:  strconv.FormatBool(!s.UI.ShowHints),
			flagLogFile:  logging.FilePath,
			flagTrace:    strconv.FormatBool(logging.Trace),
		},
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// PrefixedEnvKeys returns the names of BIZRAY_* variables present in environ.
func PrefixedEnvKeys(environ []string) []string {
	var keys []string
	for key := range parseEnv(environ) {
		if strings.HasPrefix(key, EnvPrefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures the resolved settings are usable.
func Validate(cfg Config) error {
	s := cfg.Settings
	u, err := url.Parse(s.API.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint must be an http(s) URL (got %q)", ErrInvalid, s.API.Endpoint)
	}
	if s.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: timeout must be > 0 (got %d)", ErrInvalid, s.API.TimeoutSeconds)
	}
	if s.UI.PageSize < 1 || s.UI.PageSize > maxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d (got %d)", ErrInvalid, maxPageSize, s.UI.PageSize)
	}
	for _, name := range Themes {
		if s.UI.Theme == name {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown theme %q", ErrInvalid, s.UI.Theme)
}
