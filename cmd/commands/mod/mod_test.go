package mod

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/config"
	"nathanbeddoewebdev/svrmgr/internal/database"
	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/mockserver"
	"nathanbeddoewebdev/svrmgr/internal/services/auth"

	"github.com/gin-gonic/gin"
)

func setupBackend(t *testing.T) *mockserver.Backend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	config.SetPath(filepath.Join(dir, "config.json"))
	database.SetPath(filepath.Join(dir, "svrmgr.db"))
	auth.SetDefaultStore(auth.NewMockStore())
	t.Cleanup(func() {
		config.ResetPath()
		database.ResetPath()
		auth.ResetDefaultStore()
	})

	ms := time.Now().UnixMilli()
	fleet := mockserver.NewFleet([]domain.Server{
		{ID: "srv-001", Name: "EU Production Server 1", Address: "eu-1.gameserver.com:2456", Status: domain.StatusOnline, LastPing: &ms, MaxPlayers: 10, Version: "1.3.0"},
	})
	backend := mockserver.New(mockserver.Config{}, mockserver.WithFleet(fleet))
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	t.Setenv(config.EnvAPIURL, srv.URL)
	t.Setenv(config.EnvTimeout, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFile, "")
	return backend
}

func execMod(t *testing.T, stdin string, args ...string) (stdout string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), err
}

func TestList_RequiresServer(t *testing.T) {
	setupBackend(t)

	_, err := execMod(t, "", "list")
	if !errors.Is(err, app.ErrNoServerSelected) {
		t.Fatalf("expected ErrNoServerSelected, got %v", err)
	}
}

func TestList_Table(t *testing.T) {
	setupBackend(t)

	stdout, err := execMod(t, "", "list", "--server", "srv-001")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"mod-001", "Creature Level and Loot Control", "Epic Loot", "2.0.0"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestList_UnknownServer(t *testing.T) {
	setupBackend(t)

	_, err := execMod(t, "", "list", "--server", "does-not-exist")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "Server not found") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestConfigs_JSON(t *testing.T) {
	setupBackend(t)

	stdout, err := execMod(t, "", "configs", "--server", "srv-001", "-o", "json")
	if err != nil {
		t.Fatalf("configs failed: %v", err)
	}
	var configs []domain.ModConfig
	if err := json.Unmarshal([]byte(stdout), &configs); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("expected 2 configs, got %d", len(configs))
	}
}

func TestConfigShow(t *testing.T) {
	setupBackend(t)

	stdout, err := execMod(t, "", "config", "show", "mod-001", "--server", "srv-001")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout, "bossLevelMultiplier=2") {
		t.Errorf("expected config content, got:\n%s", stdout)
	}

	_, err = execMod(t, "", "config", "show", "mod-999", "--server", "srv-001")
	if !errors.Is(err, domain.ErrNotFound) || !strings.Contains(err.Error(), "Config not found") {
		t.Fatalf("expected Config not found, got %v", err)
	}
}

func TestConfigSet_Content(t *testing.T) {
	backend := setupBackend(t)
	before, _ := backend.Fleet().Config("srv-001", "mod-002")

	stdout, err := execMod(t, "", "config", "set", "mod-002", "--server", "srv-001", "--content", "[General]\nenabled=false")
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if !strings.Contains(stdout, "Saved Epic Loot config (2 lines") {
		t.Errorf("unexpected output: %s", stdout)
	}

	after, _ := backend.Fleet().Config("srv-001", "mod-002")
	if after.Content != "[General]\nenabled=false" {
		t.Errorf("content not stored: %q", after.Content)
	}
	if !after.LastModified.After(before.LastModified) {
		t.Error("expected lastModified to advance")
	}
}

func TestConfigSet_FileAndStdin(t *testing.T) {
	backend := setupBackend(t)

	path := filepath.Join(t.TempDir(), "cllc.cfg")
	if err := os.WriteFile(path, []byte("levelMax=20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execMod(t, "", "config", "set", "mod-001", "--server", "srv-001", "--file", path); err != nil {
		t.Fatalf("config set --file failed: %v", err)
	}
	got, _ := backend.Fleet().Config("srv-001", "mod-001")
	if got.Content != "levelMax=20\n" {
		t.Errorf("file content not stored: %q", got.Content)
	}

	if _, err := execMod(t, "levelMax=30", "config", "set", "mod-001", "--server", "srv-001"); err != nil {
		t.Fatalf("config set from stdin failed: %v", err)
	}
	got, _ = backend.Fleet().Config("srv-001", "mod-001")
	if got.Content != "levelMax=30" {
		t.Errorf("stdin content not stored: %q", got.Content)
	}
}

func TestConfigSet_ContentAndFileExclusive(t *testing.T) {
	setupBackend(t)

	_, err := execMod(t, "", "config", "set", "mod-001", "--server", "srv-001", "--content", "x", "--file", "y")
	if err == nil {
		t.Fatal("expected error when both --content and --file are given")
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{{"", 0}, {"a", 1}, {"a\nb", 2}, {"a\nb\n", 3}}
	for _, tt := range tests {
		if got := countLines(tt.in); got != tt.want {
			t.Errorf("countLines(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
