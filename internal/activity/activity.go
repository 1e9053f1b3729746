// Package activity provides a SQLite-backed log of admin actions, shown on
// the dashboard and exposed to MCP clients.
package activity

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS activity (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	actor      TEXT NOT NULL,
	action     TEXT NOT NULL,
	resource   TEXT NOT NULL,
	entity_id  TEXT NOT NULL DEFAULT '',
	title      TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_activity_created ON activity(created_at);
`

// Actions recorded in the log.
const (
	ActionSaved   = "saved"
	ActionDeleted = "deleted"
)

// Entry is one logged admin action.
type Entry struct {
	ID        int64
	Actor     string
	Action    string
	Resource  string
	EntityID  string
	Title     string
	CreatedAt time.Time
}

// DB wraps a sql.DB with activity-log operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("activity: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("activity: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("activity: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Record appends one entry. A zero CreatedAt defaults to now.
func (db *DB) Record(e Entry) error {
	when := e.CreatedAt
	if when.IsZero() {
		when = time.Now().UTC()
	}
	_, err := db.conn.Exec(`
		INSERT INTO activity (actor, action, resource, entity_id, title, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.Actor, e.Action, e.Resource, e.EntityID, e.Title, when)
	if err != nil {
		return fmt.Errorf("activity: record: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (db *DB) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT id, actor, action, resource, entity_id, title, created_at
		FROM activity ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("activity: recent: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Resource, &e.EntityID, &e.Title, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
