package config

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/svrmgr/internal/config"
)

func TestGet_APIURL_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "api-url")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_APIURL_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{APIURL: "https://panel.example.com"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "API-URL")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "https://panel.example.com") {
		t.Errorf("expected stored URL, got: %s", stdout)
	}
}

func TestGet_All_ShowsEffectiveValues(t *testing.T) {
	path := setupTestConfig(t)
	t.Setenv(config.EnvTimeout, "15s")

	cfg := &config.Config{LogLevel: "debug"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{"api-url", config.DefaultAPIURL, "15s", "debug", "(not set)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
