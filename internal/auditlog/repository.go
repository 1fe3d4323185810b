package auditlog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/database"
)

// DefaultLimit is used when a Filter has no positive Limit.
const DefaultLimit = 50

// Repository defines the persistence interface for audit entries.
type Repository interface {
	Save(entry *AuditEntry) error
	List(filter Filter) ([]AuditEntry, error)
	Prune(olderThan time.Duration) (int64, error)
	CountOlderThan(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the audit repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.OpenSchema(path, "auditlog", schema)
	if err != nil {
		return nil, err
	}
	return &SQLiteRepository{db: db}, nil
}

const schema = `
        CREATE TABLE IF NOT EXISTS audit_log (
            id            INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp     TEXT    NOT NULL,
            command       TEXT    NOT NULL,
            args          TEXT    NOT NULL DEFAULT '',
            profile       TEXT    NOT NULL DEFAULT '',
            resource_type TEXT    NOT NULL DEFAULT '',
            resource_id   TEXT    NOT NULL DEFAULT '',
            resource_name TEXT    NOT NULL DEFAULT '',
            outcome       TEXT    NOT NULL DEFAULT '',
            detail        TEXT    NOT NULL DEFAULT '',
            duration_ms   INTEGER NOT NULL DEFAULT 0
        );
        CREATE INDEX IF NOT EXISTS idx_audit_log_timestamp ON audit_log(timestamp);
        CREATE INDEX IF NOT EXISTS idx_audit_log_command ON audit_log(command);
        CREATE INDEX IF NOT EXISTS idx_audit_log_resource ON audit_log(resource_type, resource_id);
    `

// Save inserts a new audit entry.
func (r *SQLiteRepository) Save(entry *AuditEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.Exec(`
        INSERT INTO audit_log (timestamp, command, args, profile, resource_type, resource_id, resource_name, outcome, detail, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.UTC().Format(time.RFC3339Nano), entry.Command, entry.Args, entry.Profile,
		entry.ResourceType, entry.ResourceID, entry.ResourceName, entry.Outcome, entry.Detail, entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("auditlog: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("auditlog: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent entries matching filter, newest first.
func (r *SQLiteRepository) List(filter Filter) ([]AuditEntry, error) {
	var (
		where []string
		args  []any
	)
	add := func(column, value string) {
		if value != "" {
			where = append(where, column+" = ?")
			args = append(args, value)
		}
	}
	add("command", filter.Command)
	add("profile", filter.Profile)
	add("resource_type", filter.ResourceType)
	add("resource_id", filter.ResourceID)
	add("outcome", filter.Outcome)

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var q strings.Builder
	q.WriteString(`SELECT id, timestamp, command, args, profile, resource_type, resource_id, resource_name,
               outcome, detail, duration_ms FROM audit_log`)
	if len(where) > 0 {
		q.WriteString(" WHERE ")
		q.WriteString(strings.Join(where, " AND "))
	}
	q.WriteString(" ORDER BY timestamp DESC, id DESC LIMIT ?")
	args = append(args, limit)

	rows, err := r.db.Query(q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("auditlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes entries older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)
	result, err := r.db.Exec(`DELETE FROM audit_log WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("auditlog: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// CountOlderThan reports how many entries Prune would delete.
func (r *SQLiteRepository) CountOlderThan(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM audit_log WHERE timestamp < ?`, cutoff).Scan(&n); err != nil {
		return 0, fmt.Errorf("auditlog: count failed: %w", err)
	}
	return n, nil
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]AuditEntry, error) {
	var entries []AuditEntry
	for rows.Next() {
		var entry AuditEntry
		var timestampStr string
		err := rows.Scan(
			&entry.ID, &timestampStr, &entry.Command, &entry.Args, &entry.Profile,
			&entry.ResourceType, &entry.ResourceID, &entry.ResourceName,
			&entry.Outcome, &entry.Detail, &entry.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("auditlog: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
