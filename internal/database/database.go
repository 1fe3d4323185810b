// Package database opens the local SQLite file that holds svrmgr's
// client-side state (selected servers and the audit log).
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	appDir = "svrmgr"
	dbFile = "svrmgr.db"

	// pragmas enables WAL and waits for locks held by a concurrent
	// svrmgr process instead of failing immediately.
	pragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
)

var pathOverride string

// SetPath overrides the default database path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override. Intended for testing.
func ResetPath() { pathOverride = "" }

// DefaultPath returns the default database path.
func DefaultPath() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("database: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, dbFile), nil
}

// Open opens a SQLite database at the provided path, creating the
// parent directory if needed.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("database: failed to create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path+pragmas)
	if err != nil {
		return nil, fmt.Errorf("database: failed to open database: %w", err)
	}
	return db, nil
}

// OpenSchema opens the database at path and applies ddl, which must be
// idempotent. owner prefixes migration errors so callers sharing the
// file can tell whose tables failed.
func OpenSchema(path, owner, ddl string) (*sql.DB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", owner, err)
	}
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: migration failed: %w", owner, err)
	}
	return db, nil
}
