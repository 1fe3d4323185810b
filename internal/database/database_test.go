package database

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPathOverride(t *testing.T) {
	t.Cleanup(ResetPath)

	path := filepath.Join(t.TempDir(), "svrmgr.db")
	SetPath(path)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if got != path {
		t.Fatalf("DefaultPath = %q, want %q", got, path)
	}
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "svrmgr.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := db.Ping(); err != nil {
		t.Fatalf("Ping error: %v", err)
	}

	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode query: %v", err)
	}
	if mode != "wal" {
		t.Errorf("expected WAL journal mode, got %q", mode)
	}
}

func TestOpenSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svrmgr.db")
	const ddl = `CREATE TABLE IF NOT EXISTS things (id INTEGER PRIMARY KEY);`

	for i := 0; i < 2; i++ {
		db, err := OpenSchema(path, "things", ddl)
		if err != nil {
			t.Fatalf("OpenSchema #%d error: %v", i+1, err)
		}
		if _, err := db.Exec("INSERT INTO things DEFAULT VALUES"); err != nil {
			t.Fatalf("insert: %v", err)
		}
		_ = db.Close()
	}
}

func TestOpenSchema_MigrationErrorNamesOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svrmgr.db")

	_, err := OpenSchema(path, "things", "CREATE TABLE (")
	if err == nil {
		t.Fatal("expected migration error")
	}
	if !strings.HasPrefix(err.Error(), "things: migration failed") {
		t.Errorf("unexpected error: %v", err)
	}
}
