// Package selection persists the selected server per backend profile so
// that consecutive CLI invocations operate on the same server.
//
// Storage is the shared SQLite database at ~/.config/svrmgr/svrmgr.db
// (shared with auditlog, separate table).
package selection

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/database"
)

// Repository defines the persistence interface for server selections.
type Repository interface {
	// Get returns the selection for profile, or nil if none was saved.
	Get(profile string) (*Selection, error)

	// Save upserts the selection for its profile.
	Save(sel *Selection) error

	// Clear removes the selection for profile.
	Clear(profile string) error

	// Close releases database resources.
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.OpenSchema(path, "selection", schema)
	if err != nil {
		return nil, err
	}
	return &SQLiteRepository{db: db}, nil
}

const schema = `
		CREATE TABLE IF NOT EXISTS server_selection (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			profile    TEXT NOT NULL UNIQUE,
			server_id  TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`

// Get returns the selection for profile, or nil if none was saved.
func (r *SQLiteRepository) Get(profile string) (*Selection, error) {
	row := r.db.QueryRow(`
		SELECT id, profile, server_id, updated_at
		FROM server_selection WHERE profile = ?`,
		profile)

	var sel Selection
	var updatedStr string
	err := row.Scan(&sel.ID, &sel.Profile, &sel.ServerID, &updatedStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("selection: query failed: %w", err)
	}
	sel.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return &sel, nil
}

// Save upserts the selection for its profile.
func (r *SQLiteRepository) Save(sel *Selection) error {
	sel.UpdatedAt = time.Now().UTC()

	result, err := r.db.Exec(`
		INSERT INTO server_selection (profile, server_id, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET
			server_id = excluded.server_id,
			updated_at = excluded.updated_at`,
		sel.Profile, sel.ServerID, sel.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("selection: upsert failed: %w", err)
	}

	if sel.ID == 0 {
		id, err := result.LastInsertId()
		if err == nil {
			sel.ID = id
		}
	}
	return nil
}

// Clear removes the selection for profile.
func (r *SQLiteRepository) Clear(profile string) error {
	if _, err := r.db.Exec(`DELETE FROM server_selection WHERE profile = ?`, profile); err != nil {
		return fmt.Errorf("selection: delete failed: %w", err)
	}
	return nil
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
