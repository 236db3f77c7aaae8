package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	require.NoError(t, err)
	return d
}

func TestRESTGradeRepo_GetForStudent(t *testing.T) {
	up := testutil.NewFakeUpstream(t)
	up.JSON(http.MethodGet, "activity-grades/activity/101/student/1", 200,
		testutil.GradeJSON(900, 101, 1, domain.Ptr(4.5), "bien"))

	rec, err := NewRESTGradeRepo(up.Client()).GetForStudent(context.Background(), 101, 1)
	require.NoError(t, err)
	assert.Equal(t, 900, rec.ID)
	require.NotNil(t, rec.Score)
	assert.Equal(t, 4.5, *rec.Score)
	assert.Equal(t, "bien", rec.Comment)
}

func TestRESTGradeRepo_GetForStudent_MissingRecord(t *testing.T) {
	for name, answer := range map[string]any{"null": nil, "empty object": map[string]any{}} {
		t.Run(name, func(t *testing.T) {
			up := testutil.NewFakeUpstream(t)
			up.JSON(http.MethodGet, "activity-grades/activity/101/student/1", 200, answer)

			_, err := NewRESTGradeRepo(up.Client()).GetForStudent(context.Background(), 101, 1)
			assert.True(t, IsNotFound(err))
		})
	}
}

func TestRESTGradeRepo_ListForGroup_PreservesOrder(t *testing.T) {
	up := testutil.NewFakeUpstream(t)
	up.JSON(http.MethodGet, "activity-grades/activity/101/group/12", 200, []any{
		testutil.GradeJSON(902, 0, 2, nil, ""),
		testutil.GradeJSON(901, 0, 1, domain.Ptr(4.5), ""),
	})

	got, err := NewRESTGradeRepo(up.Client()).ListForGroup(context.Background(), 101, 12)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].StudentID)
	assert.Nil(t, got[0].Score)
	assert.Equal(t, 101, got[0].ActivityID, "activity id filled from the request")
	assert.Equal(t, 1, got[1].StudentID)
}

func TestRESTGradeRepo_Update(t *testing.T) {
	up := testutil.NewFakeUpstream(t)
	up.Handle(http.MethodPut, "activity-grades/900", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3.8, body["score"])
		assert.Equal(t, "mejoró", body["comment"])
		w.WriteHeader(http.StatusNoContent)
	})

	rec := domain.ScoreRecord{ID: 900, ActivityID: 101, StudentID: 1, Score: domain.Ptr(3.8), Comment: "mejoró"}
	saved, err := NewRESTGradeRepo(up.Client()).Update(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, rec, *saved)
}

func TestRESTGradeRepo_Update_RequiresID(t *testing.T) {
	up := testutil.NewFakeUpstream(t)

	_, err := NewRESTGradeRepo(up.Client()).Update(context.Background(), domain.ScoreRecord{StudentID: 1})
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 0, up.TotalCalls())
}
