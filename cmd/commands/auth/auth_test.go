package auth

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/svrmgr/internal/config"
	"nathanbeddoewebdev/svrmgr/internal/database"
	"nathanbeddoewebdev/svrmgr/internal/services/auth"
)

func setup(t *testing.T) *auth.MockStore {
	t.Helper()
	dir := t.TempDir()
	config.SetPath(filepath.Join(dir, "config.json"))
	database.SetPath(filepath.Join(dir, "svrmgr.db"))
	store := auth.NewMockStore()
	auth.SetDefaultStore(store)
	t.Cleanup(func() {
		config.ResetPath()
		database.ResetPath()
		auth.ResetDefaultStore()
	})
	t.Setenv(config.EnvAPIURL, "http://panel.example.com:8080")
	t.Setenv(config.EnvLogLevel, "error")
	return store
}

func execAuth(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return outBuf.String(), err
}

func TestLogin_WithTokenFlag(t *testing.T) {
	store := setup(t)

	stdout, err := execAuth(t, "login", "--token", "  secret-token  ")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !strings.Contains(stdout, "Saved token for panel.example.com:8080") {
		t.Errorf("unexpected output: %s", stdout)
	}

	got, err := store.GetToken("panel.example.com:8080")
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if got != "secret-token" {
		t.Errorf("expected trimmed token, got %q", got)
	}
}

func TestStatus(t *testing.T) {
	setup(t)

	stdout, err := execAuth(t, "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	for _, want := range []string{"http://panel.example.com:8080", "not logged in", "(none)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}

	if _, err := execAuth(t, "login", "--token", "abc"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	stdout, _ = execAuth(t, "status")
	if !strings.Contains(stdout, "logged in") || strings.Contains(stdout, "not logged in") {
		t.Errorf("expected logged in status, got:\n%s", stdout)
	}
}

func TestLogout(t *testing.T) {
	store := setup(t)
	store.SetToken("panel.example.com:8080", "abc")

	stdout, err := execAuth(t, "logout")
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if !strings.Contains(stdout, "Removed token") {
		t.Errorf("unexpected output: %s", stdout)
	}
	if _, err := store.GetToken("panel.example.com:8080"); !errors.Is(err, auth.ErrTokenNotFound) {
		t.Errorf("expected token removed, got %v", err)
	}

	stdout, err = execAuth(t, "logout")
	if err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
	if !strings.Contains(stdout, "No token stored") {
		t.Errorf("unexpected output: %s", stdout)
	}
}
