package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS invites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL UNIQUE,
		message TEXT NOT NULL DEFAULT '',
		image_path TEXT NOT NULL DEFAULT '',
		event_date TEXT NOT NULL DEFAULT '',
		event_time TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS responses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		invite_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		number_of_attendees INTEGER NOT NULL,
		created_at INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY(invite_id) REFERENCES invites(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_responses_invite_id ON responses(invite_id)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		subject TEXT NOT NULL,
		expires_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL DEFAULT 0
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS invites (
		id BIGSERIAL PRIMARY KEY,
		uuid TEXT NOT NULL UNIQUE,
		message TEXT NOT NULL DEFAULT '',
		image_path TEXT NOT NULL DEFAULT '',
		event_date TEXT NOT NULL DEFAULT '',
		event_time TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS responses (
		id BIGSERIAL PRIMARY KEY,
		invite_id BIGINT NOT NULL REFERENCES invites(id),
		name TEXT NOT NULL,
		number_of_attendees INTEGER NOT NULL,
		created_at BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_responses_invite_id ON responses(invite_id)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		subject TEXT NOT NULL,
		expires_at BIGINT NOT NULL,
		created_at BIGINT NOT NULL DEFAULT 0
	)`,
}

// CreateSchema ensures the invites, responses and sessions tables exist. It is safe to
// call on every process start.
func CreateSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	stmts := sqliteSchema
	if dialect == DialectPostgres {
		stmts = postgresSchema
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
