// Package config handles persistent user configuration for svrmgr.
//
// Configuration is stored as JSON at ~/.config/svrmgr/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). Environment
// variables, optionally loaded from a .env file, override stored values
// when settings are resolved.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	appDir   = "svrmgr"
	fileName = "config.json"
)

// Defaults applied when neither the file nor the environment set a value.
const (
	DefaultAPIURL   = "http://localhost:8080"
	DefaultTimeout  = 60 * time.Second
	DefaultLogLevel = "warn"
)

// Environment variables that override stored configuration.
const (
	EnvAPIURL   = "SVRMGR_API_URL"
	EnvTimeout  = "SVRMGR_TIMEOUT"
	EnvLogLevel = "SVRMGR_LOG_LEVEL"
	EnvLogFile  = "SVRMGR_LOG_FILE"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	APIURL   string `json:"api_url,omitempty"`
	Timeout  string `json:"timeout,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
	LogFile  string `json:"log_file,omitempty"`
}

// Settings are the effective values after applying the environment and
// defaults on top of the stored Config.
type Settings struct {
	APIURL   string
	Timeout  time.Duration
	LogLevel string
	LogFile  string
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
// Otherwise it uses os.UserConfigDir which resolves to
// ~/Library/Application Support on macOS, ~/.config on Linux, and
// %AppData% on Windows.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

// loadFrom reads the config from the given path. If path is empty, the
// default Path() is used. Exported only for testing via LoadFrom.
func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

// saveTo writes the config to the given path. If path is empty, the
// default Path() is used.
func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}

// LoadDotEnv loads variables from a .env file in the working directory
// into the process environment. Variables already set win. A missing
// file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: failed to load .env: %w", err)
	}
	return nil
}

// Resolve computes the effective settings: environment first, then the
// stored value, then the default.
func (c *Config) Resolve() (Settings, error) {
	s := Settings{
		APIURL:   firstNonEmpty(os.Getenv(EnvAPIURL), c.APIURL, DefaultAPIURL),
		LogLevel: strings.ToLower(firstNonEmpty(os.Getenv(EnvLogLevel), c.LogLevel, DefaultLogLevel)),
		LogFile:  firstNonEmpty(os.Getenv(EnvLogFile), c.LogFile),
		Timeout:  DefaultTimeout,
	}

	if raw := firstNonEmpty(os.Getenv(EnvTimeout), c.Timeout); raw != "" {
		d, err := ParseTimeout(raw)
		if err != nil {
			return Settings{}, err
		}
		s.Timeout = d
	}

	return s, nil
}

// ParseTimeout parses a positive duration such as "30s" or "2m".
func ParseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("config: invalid timeout %q: %w", raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: timeout must be positive, got %q", raw)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
