package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarScore_Placeholder(t *testing.T) {
	p := PlaceholderScore()
	assert.True(t, p.IsPlaceholder())
	assert.Equal(t, "-", p.DisplayScore())
	assert.Equal(t, "-", p.DisplayComment())
}

func TestScalarScore_Display(t *testing.T) {
	s := ScalarScore{RecordID: Ptr(3), Score: Ptr(4.5), Comment: Ptr("bien")}
	assert.False(t, s.IsPlaceholder())
	assert.Equal(t, "4.5", s.DisplayScore())
	assert.Equal(t, "bien", s.DisplayComment())
}

func TestNewActivityViewRecord_LiftsAchievementChain(t *testing.T) {
	a := Activity{
		ID:     101,
		Name:   "Quiz 1",
		Status: ActivityActive,
		AchievementGroup: AchievementGroup{
			ID:          55,
			Achievement: "Resuelve ecuaciones",
			Knowledge:   SubjectKnowledge{ID: 4, Name: "Álgebra", Percentage: 30},
			Subject:     Subject{ID: 7, Name: "Math"},
		},
	}

	rec := NewActivityViewRecord(a, RosterScore{})

	assert.Equal(t, 101, rec.ID)
	assert.Equal(t, 55, rec.AchievementGroupID)
	assert.Equal(t, Subject{ID: 7, Name: "Math"}, rec.Subject)
	assert.Equal(t, "Álgebra", rec.Knowledge.Name)
	assert.Equal(t, "Resuelve ecuaciones", rec.Achievement)
	assert.IsType(t, RosterScore{}, rec.Score)
}

func TestScheme_ConfiguredAndTotal(t *testing.T) {
	var nilScheme *Scheme
	assert.False(t, nilScheme.Configured())
	assert.False(t, (&Scheme{}).Configured())

	s := &Scheme{Items: []SchemeItem{
		{Knowledge: SubjectKnowledge{Percentage: 40}},
		{Knowledge: SubjectKnowledge{Percentage: 35}},
	}}
	assert.True(t, s.Configured())
	assert.InDelta(t, 75.0, s.TotalPercentage(), 0.0001)
}

func TestStudent_FullName(t *testing.T) {
	assert.Equal(t, "Ana Ruiz", Student{FirstName: "Ana", LastName: "Ruiz"}.FullName())
	assert.Equal(t, "Ana", Student{FirstName: "Ana"}.FullName())
}
