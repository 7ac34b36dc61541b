package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// saved_video has no uniqueness on (owner_id, video_id): saving the same
	// video twice creates two rows. liked_video carries the UNIQUE constraint
	// so two concurrent duplicate likes cannot both succeed.
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS saved_video (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		video_id TEXT NOT NULL,
		title TEXT NOT NULL,
		thumbnail TEXT NOT NULL,
		channel TEXT NOT NULL,
		saved_at TEXT NOT NULL,
		FOREIGN KEY (owner_id) REFERENCES account(id)
	);

	CREATE TABLE IF NOT EXISTS liked_video (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		video_id TEXT NOT NULL,
		liked_at TEXT NOT NULL,
		UNIQUE (owner_id, video_id),
		FOREIGN KEY (owner_id) REFERENCES account(id)
	);

	CREATE INDEX IF NOT EXISTS idx_saved_video_owner ON saved_video(owner_id, saved_at);
	CREATE INDEX IF NOT EXISTS idx_liked_video_owner ON liked_video(owner_id, liked_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
