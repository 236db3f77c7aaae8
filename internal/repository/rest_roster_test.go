package repository

import (
	"context"
	"net/http"
	"testing"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTRosterRepo_ListTeacherAssignments(t *testing.T) {
	up := testutil.NewFakeUpstream(t)
	up.JSON(http.MethodGet, "subject-professors/professor/30/year/2025", 200, []any{
		testutil.AssignmentJSON(1, 7, "Math", testutil.GroupJSON(12, "5A", 30), 30),
	})

	rows, err := NewRESTRosterRepo(up.Client()).ListTeacherAssignments(context.Background(), 30, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	r := rows[0]
	assert.Equal(t, "Math", r.Subject.Name)
	assert.Equal(t, "5A", r.Group.Code)
	assert.Equal(t, "5", r.Group.Level)
	require.NotNil(t, r.Group.Mentor)
	assert.True(t, r.Group.MentoredBy(30))
	assert.Equal(t, 30, r.Professor.ID)
}

func TestRESTRosterRepo_ListGroupStudents(t *testing.T) {
	up := testutil.NewFakeUpstream(t)
	g := testutil.GroupJSON(12, "5A", 0)
	up.JSON(http.MethodGet, "groups/12/students", 200, []any{
		testutil.EnrollmentJSON(g, 1, "Ana", "Ruiz"),
		testutil.EnrollmentJSON(g, 2, "Luis", "Mora"),
	})

	rows, err := NewRESTRosterRepo(up.Client()).ListGroupStudents(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].Group.Mentor)
	assert.Equal(t, "Luis", rows[1].Student.FirstName)
}

func TestRESTRosterRepo_ListScopedGroupStudents(t *testing.T) {
	up := testutil.NewFakeUpstream(t)
	up.JSON(http.MethodGet, "groups/period/3/subject/7/group/12/students", 200, []any{
		testutil.EnrollmentJSON(testutil.GroupJSON(12, "5A", 0), 1, "Ana", "Ruiz"),
	})

	rows, err := NewRESTRosterRepo(up.Client()).ListScopedGroupStudents(context.Background(), testScope)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
