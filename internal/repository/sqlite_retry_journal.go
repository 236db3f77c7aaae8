package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/db"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/google/uuid"
)

// SQLiteRetryJournal implements RetryJournal on the local SQLite store.
type SQLiteRetryJournal struct {
	db db.DBTX
}

// NewSQLiteRetryJournal creates a journal on a *sql.DB or a transaction.
func NewSQLiteRetryJournal(db db.DBTX) *SQLiteRetryJournal {
	return &SQLiteRetryJournal{db: db}
}

// Record stores a failed edit, replacing any earlier failure for the same
// (activity, student).
func (r *SQLiteRetryJournal) Record(ctx context.Context, e PendingEdit) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	failedAt := nowUTC()
	if !e.FailedAt.IsZero() {
		failedAt = e.FailedAt.UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO pending_score_edits (id, activity_id, student_id, record_id, score, comment, reason, failed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(activity_id, student_id) DO UPDATE SET
			record_id = excluded.record_id,
			score     = excluded.score,
			comment   = excluded.comment,
			reason    = excluded.reason,
			failed_at = excluded.failed_at`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ActivityID,
		e.Edit.StudentID,
		nullableIntToValue(e.Edit.RecordID),
		nullableFloatToValue(e.Edit.Score),
		e.Edit.Comment,
		e.Reason,
		failedAt,
	)
	if err != nil {
		return fmt.Errorf("recording pending score edit: %w", err)
	}
	return nil
}

// ListPending returns the pending edits of an activity ordered by student.
func (r *SQLiteRetryJournal) ListPending(ctx context.Context, activityID int) ([]PendingEdit, error) {
	query := `SELECT id, activity_id, student_id, record_id, score, comment, reason, failed_at
		FROM pending_score_edits WHERE activity_id = ? ORDER BY student_id`
	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("listing pending score edits: %w", err)
	}
	defer rows.Close()

	var out []PendingEdit
	for rows.Next() {
		var p PendingEdit
		var recordID sql.NullInt64
		var score sql.NullFloat64
		var failedAt string
		if err := rows.Scan(&p.ID, &p.ActivityID, &p.Edit.StudentID, &recordID, &score, &p.Edit.Comment, &p.Reason, &failedAt); err != nil {
			return nil, fmt.Errorf("scanning pending score edit: %w", err)
		}
		if recordID.Valid {
			p.Edit.RecordID = domain.Ptr(int(recordID.Int64))
		}
		if score.Valid {
			p.Edit.Score = domain.Ptr(score.Float64)
		}
		if t, err := time.Parse(time.RFC3339, failedAt); err == nil {
			p.FailedAt = t
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending score edits: %w", err)
	}
	return out, nil
}

// Resolve forgets the pending edit of a student, if any.
func (r *SQLiteRetryJournal) Resolve(ctx context.Context, activityID, studentID int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM pending_score_edits WHERE activity_id = ? AND student_id = ?`,
		activityID, studentID)
	if err != nil {
		return fmt.Errorf("resolving pending score edit: %w", err)
	}
	return nil
}
