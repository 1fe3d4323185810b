package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/svrmgr/internal/config"
)

// setupTestConfig points the config package at a temp file and clears
// environment overrides.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvTimeout, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFile, "")
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_APIURL(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "api-url", "https://panel.example.com/")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"https://panel.example.com"`) {
		t.Errorf("expected confirmation without trailing slash, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.APIURL != "https://panel.example.com" {
		t.Errorf("expected APIURL %q, got %q", "https://panel.example.com", cfg.APIURL)
	}
}

func TestSet_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"url without scheme", "api-url", "panel.example.com", "invalid api-url"},
		{"ftp url", "api-url", "ftp://panel.example.com", "invalid api-url"},
		{"bad timeout", "timeout", "soon", "invalid timeout"},
		{"negative timeout", "timeout", "-5s", "timeout must be positive"},
		{"bad level", "log-level", "verbose", "invalid log-level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := setupTestConfig(t)

			_, stderr := execConfig(t, "set", tt.key, tt.value)
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("expected %q error, got: %s", tt.want, stderr)
			}
			if strings.Contains(stderr, "unknown shorthand flag") {
				t.Errorf("value parsed as a flag: %s", stderr)
			}

			cfg, _ := config.LoadFrom(path)
			if spec := config.Lookup(tt.key); spec.Get(cfg) != "" {
				t.Errorf("expected invalid value not to be saved, got %q", spec.Get(cfg))
			}
		})
	}
}

func TestSet_LogLevelNormalized(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "log-level", "DEBUG")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"debug"`) {
		t.Errorf("expected normalized level, got: %s", stdout)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
