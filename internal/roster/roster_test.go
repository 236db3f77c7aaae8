package roster

import (
	"testing"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	math    = domain.Subject{ID: 7, Name: "Math"}
	science = domain.Subject{ID: 8, Name: "Science"}
	mentor  = &domain.Professor{ID: 30, FirstName: "Laura"}
	group5A = domain.Group{ID: 12, Code: "5A", Name: "Quinto A", Level: "5", Mentor: mentor}
	group6B = domain.Group{ID: 13, Code: "6B", Name: "Sexto B", Level: "6", Mentor: &domain.Professor{ID: 31}}
	teacher = domain.Professor{ID: 30}
)

func TestBuildGroupRoster_Empty(t *testing.T) {
	r := BuildGroupRoster(nil)
	assert.Equal(t, domain.Group{}, r.Group)
	require.NotNil(t, r.Students)
	assert.Empty(t, r.Students)
}

func TestBuildGroupRoster_FirstRowHeaderAndAllStudents(t *testing.T) {
	rows := []domain.EnrollmentRow{
		{Group: group5A, Student: domain.Student{ID: 1, FirstName: "Ana"}},
		{Group: group5A, Student: domain.Student{ID: 2, FirstName: "Luis"}},
		{Group: group5A, Student: domain.Student{ID: 2, FirstName: "Luis"}},
	}

	r := BuildGroupRoster(rows)

	assert.Equal(t, group5A, r.Group)
	require.Len(t, r.Students, 3, "students are appended without dedup")
	assert.Equal(t, 1, r.Students[0].ID)
	assert.Equal(t, 2, r.Students[2].ID)
}

func TestBuildTeacherListing_Empty(t *testing.T) {
	l := BuildTeacherListing(nil, teacher.ID)
	require.NotNil(t, l.Subjects)
	assert.Empty(t, l.Subjects)
	assert.Nil(t, l.DirectedGroup)
}

func TestBuildTeacherListing_DedupsSubjectGroupPairs(t *testing.T) {
	rows := []domain.AssignmentRow{
		{ID: 1, Subject: math, Group: group5A, Professor: teacher},
		{ID: 2, Subject: math, Group: group5A, Professor: teacher},
		{ID: 3, Subject: science, Group: group5A, Professor: teacher},
		{ID: 4, Subject: math, Group: group6B, Professor: teacher},
	}

	l := BuildTeacherListing(rows, teacher.ID)

	require.Len(t, l.Subjects, 3)
	assert.Equal(t, 1, l.Subjects[0].AssignmentID)
	assert.Equal(t, science, l.Subjects[1].Subject)
	assert.Equal(t, group6B, l.Subjects[2].Group)
}

func TestBuildTeacherListing_DirectedGroupFound(t *testing.T) {
	rows := []domain.AssignmentRow{
		{ID: 4, Subject: math, Group: group6B, Professor: teacher},
		{ID: 1, Subject: math, Group: group5A, Professor: teacher},
	}

	l := BuildTeacherListing(rows, teacher.ID)

	require.NotNil(t, l.DirectedGroup)
	assert.Equal(t, group5A, *l.DirectedGroup)
}

func TestBuildTeacherListing_NoDirectedGroup(t *testing.T) {
	rows := []domain.AssignmentRow{
		{ID: 4, Subject: math, Group: group6B, Professor: teacher},
		{ID: 5, Subject: math, Group: domain.Group{ID: 14}, Professor: teacher},
	}

	l := BuildTeacherListing(rows, teacher.ID)
	assert.Nil(t, l.DirectedGroup)
}

func TestDirectedGroups_DistinctInOrder(t *testing.T) {
	other := domain.Group{ID: 20, Code: "7C", Mentor: mentor}
	rows := []domain.AssignmentRow{
		{Subject: math, Group: group5A},
		{Subject: science, Group: group5A},
		{Subject: math, Group: group6B},
		{Subject: math, Group: other},
	}

	got := DirectedGroups(rows, teacher.ID)

	require.Len(t, got, 2)
	assert.Equal(t, 12, got[0].ID)
	assert.Equal(t, 20, got[1].ID)
	assert.NotNil(t, DirectedGroups(nil, teacher.ID))
}

func TestGroupsOfAndSubjectsInGroup(t *testing.T) {
	l := BuildTeacherListing([]domain.AssignmentRow{
		{ID: 1, Subject: math, Group: group5A},
		{ID: 2, Subject: science, Group: group5A},
		{ID: 3, Subject: math, Group: group6B},
	}, teacher.ID)

	groups := GroupsOf(l)
	require.Len(t, groups, 2)
	assert.Equal(t, []domain.Subject{math, science}, SubjectsInGroup(l, group5A.ID))
	assert.Equal(t, []domain.Subject{math}, SubjectsInGroup(l, group6B.ID))
	assert.Empty(t, SubjectsInGroup(l, 99))
}
