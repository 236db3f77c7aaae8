package domain

import "strings"

type Period struct {
	ID    int
	Label string
	Year  int
}

type Subject struct {
	ID   int
	Name string
}

type Professor struct {
	ID        int
	FirstName string
	LastName  string
}

type Group struct {
	ID     int
	Code   string
	Name   string
	Level  string
	Mentor *Professor
}

// MentoredBy reports whether the group's mentor is the given professor.
// A group without a mentor is never directed by anyone.
func (g Group) MentoredBy(professorID int) bool {
	return g.Mentor != nil && g.Mentor.ID == professorID
}

type Student struct {
	ID        int
	FirstName string
	LastName  string
}

// FullName joins first and last name, skipping empty parts.
func (s Student) FullName() string {
	return strings.TrimSpace(strings.Join([]string{s.FirstName, s.LastName}, " "))
}

// Scope identifies the (period, subject, group) triple most queries run in.
type Scope struct {
	PeriodID  int
	SubjectID int
	GroupID   int
}

// Complete reports whether every part of the scope has been selected.
func (s Scope) Complete() bool {
	return s.PeriodID > 0 && s.SubjectID > 0 && s.GroupID > 0
}
