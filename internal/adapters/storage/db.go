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

	// Specialties are stored as a JSON array; timestamps as RFC3339 TEXT.
	schema := `
	CREATE TABLE IF NOT EXISTS access_request (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		company TEXT NOT NULL,
		job_title TEXT NOT NULL,
		industry TEXT NOT NULL,
		company_size TEXT NOT NULL,
		current_system TEXT NOT NULL,
		budget TEXT NOT NULL,
		timeline TEXT NOT NULL,
		specialties TEXT NOT NULL DEFAULT '[]',
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_access_request_created_at
		ON access_request(created_at);
	CREATE INDEX IF NOT EXISTS idx_access_request_status
		ON access_request(status);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
