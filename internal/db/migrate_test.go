package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesJournal(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, "pending_score_edits").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "pending_score_edits", name)

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, "idx_pending_score_edits_activity").Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_UniquePerActivityStudent(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO pending_score_edits (id, activity_id, student_id, failed_at) VALUES (?, ?, ?, ?)`
	_, err := db.Exec(insert, "a", 101, 1, "2025-03-01T00:00:00Z")
	require.NoError(t, err)
	_, err = db.Exec(insert, "b", 101, 1, "2025-03-01T00:00:00Z")
	assert.Error(t, err, "one pending edit per (activity, student)")
}

func TestOpenDB_FileBacked(t *testing.T) {
	path := t.TempDir() + "/nested/erudia.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
