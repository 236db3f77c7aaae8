package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/bus"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teacherRosterPath = "subject-professors/professor/30/year/2025"

func TestRosterService_LoadTeacherRoster_Publishes(t *testing.T) {
	s := setupServices(t)
	g5A := testutil.GroupJSON(12, "5A", 30)
	g6B := testutil.GroupJSON(13, "6B", 0)
	s.up.JSON(http.MethodGet, teacherRosterPath, 200, []any{
		testutil.AssignmentJSON(1, 7, "Math", g5A, 30),
		testutil.AssignmentJSON(2, 7, "Math", g5A, 30),
		testutil.AssignmentJSON(3, 8, "Science", g6B, 30),
	})

	var seen []domain.TeacherListing
	h := bus.Subscribe(s.bus, bus.TeacherRoster, func(l domain.TeacherListing) { seen = append(seen, l) })
	defer h.Release()

	resp, err := s.roster.LoadTeacherRoster(context.Background(), 30, 2025)
	require.NoError(t, err)
	require.Len(t, resp.Subjects, 2, "duplicate subject-in-group rows collapse")
	assert.Equal(t, "Math", resp.Subjects[0].Subject.Name)
	assert.Equal(t, "Science", resp.Subjects[1].Subject.Name)
	require.Len(t, resp.DirectedGroups, 1)
	assert.Equal(t, 12, resp.DirectedGroups[0].ID)

	require.Len(t, seen, 1)
	require.NotNil(t, seen[0].DirectedGroup)
	assert.Equal(t, 12, seen[0].DirectedGroup.ID)

	directed, ok := bus.Current(s.bus, bus.DirectedGroups)
	require.True(t, ok)
	assert.Equal(t, resp.DirectedGroups, directed)
}

func TestRosterService_LoadTeacherRoster_FailurePublishesNothing(t *testing.T) {
	s := setupServices(t)
	s.up.Fail(http.MethodGet, teacherRosterPath, 500)

	_, err := s.roster.LoadTeacherRoster(context.Background(), 30, 2025)
	require.Error(t, err)

	_, ok := bus.Current(s.bus, bus.TeacherRoster)
	assert.False(t, ok)
	_, ok = bus.Current(s.bus, bus.DirectedGroups)
	assert.False(t, ok)
}

func TestRosterService_LoadTeacherRoster_Validation(t *testing.T) {
	s := setupServices(t)

	_, err := s.roster.LoadTeacherRoster(context.Background(), 0, 2025)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, 0, s.up.TotalCalls())
}

func TestRosterService_LoadGroupStudents(t *testing.T) {
	s := setupServices(t)
	g := testutil.GroupJSON(12, "5A", 30)
	s.up.JSON(http.MethodGet, "groups/12/students", 200, []any{
		testutil.EnrollmentJSON(g, 1, "Ana", "Ruiz"),
		testutil.EnrollmentJSON(g, 2, "Luis", "Mora"),
	})

	r, err := s.roster.LoadGroupStudents(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "5A", r.Group.Code)
	require.Len(t, r.Students, 2)
	assert.Equal(t, "Ana Ruiz", r.Students[0].FullName())
}

func TestRosterService_LoadScopedGroupStudents_Empty(t *testing.T) {
	s := setupServices(t)
	s.up.JSON(http.MethodGet, "groups/period/3/subject/7/group/12/students", 200, []any{})

	r, err := s.roster.LoadScopedGroupStudents(context.Background(), 3, 7, 12)
	require.NoError(t, err)
	assert.Equal(t, domain.Group{}, r.Group)
	assert.Equal(t, []domain.Student{}, r.Students)
}
