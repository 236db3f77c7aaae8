package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Score edits that failed to save, kept so they can be resubmitted alone.
	`CREATE TABLE IF NOT EXISTS pending_score_edits (
		id          TEXT PRIMARY KEY,
		activity_id INTEGER NOT NULL,
		student_id  INTEGER NOT NULL,
		record_id   INTEGER,
		score       REAL,
		comment     TEXT NOT NULL DEFAULT '',
		reason      TEXT NOT NULL DEFAULT '',
		failed_at   TEXT NOT NULL,
		UNIQUE(activity_id, student_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pending_score_edits_activity ON pending_score_edits(activity_id)`,
}
