package domain

import (
	"strconv"
	"time"
)

type ActivityStatus string

const (
	ActivityPending  ActivityStatus = "pending"
	ActivityActive   ActivityStatus = "active"
	ActivityFinished ActivityStatus = "finished"
)

// Activity is a gradable task attached to exactly one AchievementGroup.
type Activity struct {
	ID               int
	Name             string
	Description      string
	StartDate        *time.Time
	EndDate          *time.Time
	Status           ActivityStatus
	AchievementGroup AchievementGroup
}

// ScoreRecord is one student's grade and comment for one activity.
// It is unique per (activity, student).
type ScoreRecord struct {
	ID         int
	ActivityID int
	StudentID  int
	Score      *float64
	Comment    string
}

// ActivityScore is the role-shaped score of an ActivityViewRecord.
// It is either a ScalarScore (student actor) or a RosterScore (teacher actor).
type ActivityScore interface {
	isActivityScore()
}

// ScalarScore is a single student's score for an activity. Nil fields mean
// no score record exists yet.
type ScalarScore struct {
	RecordID *int
	Score    *float64
	Comment  *string
}

func (ScalarScore) isActivityScore() {}

// PlaceholderScore is used when a student has no record or the lookup failed.
func PlaceholderScore() ScalarScore {
	return ScalarScore{}
}

// IsPlaceholder reports whether no score was found.
func (s ScalarScore) IsPlaceholder() bool {
	return s.RecordID == nil && s.Score == nil && s.Comment == nil
}

// DisplayScore renders the score, or "-" when absent.
func (s ScalarScore) DisplayScore() string {
	if s.Score == nil {
		return "-"
	}
	return strconv.FormatFloat(*s.Score, 'f', -1, 64)
}

// DisplayComment renders the comment, or "-" when absent.
func (s ScalarScore) DisplayComment() string {
	if s.Comment == nil {
		return "-"
	}
	return *s.Comment
}

type RosterEntry struct {
	RecordID  *int
	StudentID int
	Score     *float64
	Comment   string
}

// RosterScore holds every roster student's score for one activity, in the
// order returned by the upstream.
type RosterScore struct {
	Entries []RosterEntry
}

func (RosterScore) isActivityScore() {}

// ActivityViewRecord is the denormalized, role-shaped view of one activity.
type ActivityViewRecord struct {
	ID                 int
	Name               string
	Description        string
	StartDate          *time.Time
	EndDate            *time.Time
	Status             ActivityStatus
	AchievementGroupID int
	Subject            Subject
	Knowledge          SubjectKnowledge
	Achievement        string
	Score              ActivityScore
}

// NewActivityViewRecord lifts the achievement chain of an activity into a view
// record carrying the given score.
func NewActivityViewRecord(a Activity, score ActivityScore) ActivityViewRecord {
	ag := a.AchievementGroup
	return ActivityViewRecord{
		ID:                 a.ID,
		Name:               a.Name,
		Description:        a.Description,
		StartDate:          a.StartDate,
		EndDate:            a.EndDate,
		Status:             a.Status,
		AchievementGroupID: ag.ID,
		Subject:            ag.Subject,
		Knowledge:          ag.Knowledge,
		Achievement:        ag.Achievement,
		Score:              score,
	}
}

// ScoreEdit is one pending change to a student's grade for an activity.
// RecordID is nil when no score record exists for the student yet.
type ScoreEdit struct {
	RecordID  *int     `json:"recordId"`
	StudentID int      `json:"studentId" validate:"required,gt=0"`
	Score     *float64 `json:"score" validate:"omitempty,gte=0,lte=5"`
	Comment   string   `json:"comment" validate:"max=500"`
}

// Record converts the edit into the score record it updates.
func (e ScoreEdit) Record(activityID int) ScoreRecord {
	rec := ScoreRecord{
		ActivityID: activityID,
		StudentID:  e.StudentID,
		Score:      e.Score,
		Comment:    e.Comment,
	}
	if e.RecordID != nil {
		rec.ID = *e.RecordID
	}
	return rec
}
