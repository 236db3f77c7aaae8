package repository

import (
	"context"
	"testing"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRetryJournal_RecordAndList(t *testing.T) {
	journal := NewSQLiteRetryJournal(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, journal.Record(ctx, PendingEdit{
		ActivityID: 101,
		Edit:       domain.ScoreEdit{RecordID: domain.Ptr(902), StudentID: 2, Score: domain.Ptr(3.0), Comment: "x"},
		Reason:     "upstream returned status 500",
	}))
	require.NoError(t, journal.Record(ctx, PendingEdit{
		ActivityID: 101,
		Edit:       domain.ScoreEdit{StudentID: 1},
		Reason:     "no score record",
	}))
	require.NoError(t, journal.Record(ctx, PendingEdit{ActivityID: 102, Edit: domain.ScoreEdit{StudentID: 1}}))

	got, err := journal.ListPending(ctx, 101)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 1, got[0].Edit.StudentID)
	assert.Nil(t, got[0].Edit.RecordID)
	assert.Nil(t, got[0].Edit.Score)

	assert.Equal(t, 2, got[1].Edit.StudentID)
	require.NotNil(t, got[1].Edit.RecordID)
	assert.Equal(t, 902, *got[1].Edit.RecordID)
	assert.Equal(t, 3.0, *got[1].Edit.Score)
	assert.Equal(t, "x", got[1].Edit.Comment)
	assert.NotEmpty(t, got[1].ID)
	assert.False(t, got[1].FailedAt.IsZero())
}

func TestSQLiteRetryJournal_RecordReplacesSameStudent(t *testing.T) {
	journal := NewSQLiteRetryJournal(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, journal.Record(ctx, PendingEdit{ActivityID: 101, Edit: domain.ScoreEdit{StudentID: 1, Comment: "old"}}))
	require.NoError(t, journal.Record(ctx, PendingEdit{ActivityID: 101, Edit: domain.ScoreEdit{StudentID: 1, Comment: "new"}}))

	got, err := journal.ListPending(ctx, 101)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Edit.Comment)
}

func TestSQLiteRetryJournal_Resolve(t *testing.T) {
	journal := NewSQLiteRetryJournal(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, journal.Record(ctx, PendingEdit{ActivityID: 101, Edit: domain.ScoreEdit{StudentID: 1}}))
	require.NoError(t, journal.Resolve(ctx, 101, 1))
	require.NoError(t, journal.Resolve(ctx, 101, 99), "resolving an unknown edit is a no-op")

	got, err := journal.ListPending(ctx, 101)
	require.NoError(t, err)
	assert.Empty(t, got)
}
