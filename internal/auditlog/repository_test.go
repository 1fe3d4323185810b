package auditlog

import (
	"path/filepath"
	"testing"
	"time"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svrmgr.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Command:    "svrmgr server select",
		Outcome:    OutcomeSuccess,
		DurationMs: 12,
	}

	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList_NewestFirstWithLimit(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &AuditEntry{
			Command:   "svrmgr console exec",
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(Filter{Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestList_Filters(t *testing.T) {
	r := tempRepo(t)

	entries := []*AuditEntry{
		{Command: "svrmgr server update", ResourceType: ResourceServer, ResourceID: "srv-001", Outcome: OutcomeSuccess},
		{Command: "svrmgr mod config set", ResourceType: ResourceModConfig, ResourceID: "config-2", Outcome: OutcomeSuccess},
		{Command: "svrmgr server update", ResourceType: ResourceServer, ResourceID: "srv-002", Outcome: OutcomeError},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 3},
		{"by command", Filter{Command: "svrmgr server update"}, 2},
		{"by resource", Filter{ResourceType: ResourceServer, ResourceID: "srv-002"}, 1},
		{"by outcome", Filter{Outcome: OutcomeSuccess}, 2},
		{"no match", Filter{Command: "svrmgr server update", Outcome: OutcomeSuccess, ResourceID: "srv-002"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.List(tt.filter)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("expected %d entries, got %d", tt.want, len(got))
			}
		})
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	oldEntry := &AuditEntry{
		Command:   "svrmgr server flush",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recentEntry := &AuditEntry{
		Command:   "svrmgr server flush",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-1 * time.Hour),
	}

	if err := r.Save(oldEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(recentEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	stale, err := r.CountOlderThan(24 * time.Hour)
	if err != nil {
		t.Fatalf("CountOlderThan failed: %v", err)
	}
	if stale != 1 {
		t.Fatalf("expected 1 stale entry, got %d", stale)
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}
