package server

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/config"
	"nathanbeddoewebdev/svrmgr/internal/database"
	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/mockserver"
	"nathanbeddoewebdev/svrmgr/internal/services/auth"

	"github.com/gin-gonic/gin"
)

func ping() *int64 {
	ms := time.Now().Add(-30 * time.Second).UnixMilli()
	return &ms
}

// setupBackend points config, credentials and the selection database at
// temp locations and serves a three-server fleet over HTTP.
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

	fleet := mockserver.NewFleet([]domain.Server{
		{ID: "srv-001", Name: "EU Production Server 1", Address: "eu-1.gameserver.com:2456", Status: domain.StatusOffline, MaxPlayers: 10, Version: "1.3.0"},
		{ID: "srv-002", Name: "US QA Server 2", Address: "us-2.gameserver.com:2457", Status: domain.StatusOnline, LastPing: ping(), Players: 4, MaxPlayers: 20, Version: "1.2.4"},
		{ID: "srv-003", Name: "AS Staging Server 3", Address: "as-3.gameserver.com:2458", Status: domain.StatusOnline, LastPing: ping(), Players: 1, MaxPlayers: 8, Version: "1.3.0"},
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

// execServer runs the server command with args and returns its output.
func execServer(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// assertContainsAll verifies that output contains every expected substring.
func assertContainsAll(t *testing.T, output string, label string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in %s output:\n%s", want, label, output)
		}
	}
}
