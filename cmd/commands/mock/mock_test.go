package mock

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/config"
	"nathanbeddoewebdev/svrmgr/internal/database"
	"nathanbeddoewebdev/svrmgr/internal/mockserver"
	"nathanbeddoewebdev/svrmgr/internal/services/auth"

	"github.com/gin-gonic/gin"
)

func execMock(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return outBuf.String(), err
}

func TestToken_AcceptedBySecuredBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv(mockserver.EnvPrefix+"_SECRET", "")

	stdout, err := execMock(t, "token", "--secret", "dev-secret", "--ttl", "1h")
	if err != nil {
		t.Fatalf("token failed: %v", err)
	}
	token := strings.TrimSpace(stdout)

	backend := mockserver.New(mockserver.Config{Servers: 2, Seed: 1, Secret: "dev-secret"})
	req := httptest.NewRequest(http.MethodGet, "/api/servers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	backend.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with issued token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestToken_RequiresSecret(t *testing.T) {
	t.Setenv(mockserver.EnvPrefix+"_SECRET", "")

	if _, err := execMock(t, "token"); err == nil {
		t.Fatal("expected error without secret")
	}
}

func TestToken_SecretFromEnvironmentAndSave(t *testing.T) {
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
	t.Setenv(config.EnvAPIURL, "http://localhost:9090")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(mockserver.EnvPrefix+"_SECRET", "env-secret")

	stdout, err := execMock(t, "token", "--save")
	if err != nil {
		t.Fatalf("token --save failed: %v", err)
	}
	if !strings.Contains(stdout, "Saved token for localhost:9090") {
		t.Errorf("unexpected output: %s", stdout)
	}
	if tok, err := store.GetToken("localhost:9090"); err != nil || tok == "" {
		t.Errorf("expected saved token, got %q, %v", tok, err)
	}
}

func TestApplyFlags(t *testing.T) {
	cmd := ServeCommand()
	if err := cmd.ParseFlags([]string{"--addr", ":9999", "--servers", "3", "--latency", "50ms"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	cfg := mockserver.Config{Addr: ":8080", Servers: 100, Seed: 7}
	if err := applyFlags(cmd, &cfg); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.Servers != 3 || cfg.Latency != 50*time.Millisecond {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Seed != 7 {
		t.Errorf("expected unset flag to keep env value, got seed %d", cfg.Seed)
	}

	bad := ServeCommand()
	_ = bad.ParseFlags([]string{"--servers", "-1"})
	if err := applyFlags(bad, &mockserver.Config{}); err == nil {
		t.Error("expected validation error for negative servers")
	}
}
