package server

import (
	"encoding/json"
	"strings"
	"testing"

	"nathanbeddoewebdev/svrmgr/internal/domain"
)

func TestListCommand_DisplaysServers(t *testing.T) {
	setupBackend(t)

	stdout, _, err := execServer(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	assertContainsAll(t, stdout, "list", []string{
		"ID", "NAME", "STATUS", "PLAYERS",
		"srv-001", "srv-002", "srv-003",
		"US QA Server 2", "4/20", "offline",
	})
}

func TestListCommand_AutoSelectsFirstOnlineAndRemembers(t *testing.T) {
	setupBackend(t)

	stdout, _, err := execServer(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var marked string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "*") {
			marked = line
		}
	}
	if !strings.Contains(marked, "srv-002") {
		t.Fatalf("expected srv-002 to be marked as selected, got line %q", marked)
	}

	show, _, err := execServer(t, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContainsAll(t, show, "show", []string{"srv-002", "US QA Server 2"})
}

func TestListCommand_JSON(t *testing.T) {
	setupBackend(t)

	stdout, _, err := execServer(t, "list", "-o", "json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var servers []domain.Server
	if err := json.Unmarshal([]byte(stdout), &servers); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	if len(servers) != 3 {
		t.Fatalf("expected 3 servers, got %d", len(servers))
	}
	if servers[0].LastPing != nil {
		t.Error("expected offline server to have no lastPing")
	}
}

func TestListCommand_UnsupportedOutput(t *testing.T) {
	setupBackend(t)

	_, _, err := execServer(t, "list", "-o", "yaml")
	if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
		t.Fatalf("expected unsupported output format error, got %v", err)
	}
}
