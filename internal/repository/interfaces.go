package repository

import (
	"context"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
)

// SchemeRow is an achievement-group row as served by the upstream. Nested
// parts may be missing; callers decide how to fill the gaps.
type SchemeRow struct {
	ID          int
	Achievement *string
	Knowledge   *domain.SubjectKnowledge
	Subject     *domain.Subject
}

// AchievementGroupPatch changes an achievement group. Nil fields are left
// untouched by the upstream.
type AchievementGroupPatch struct {
	Achievement *string
	KnowledgeID *int
}

// PendingEdit is a failed score edit kept for a later retry.
type PendingEdit struct {
	ID         string
	ActivityID int
	Edit       domain.ScoreEdit
	Reason     string
	FailedAt   time.Time
}

type ActivityRepo interface {
	ListForGroup(ctx context.Context, scope domain.Scope) ([]domain.Activity, error)
	ListForStudent(ctx context.Context, scope domain.Scope, studentID int) ([]domain.Activity, error)
	GetByID(ctx context.Context, id int) (*domain.Activity, error)
	Create(ctx context.Context, a *domain.Activity) error
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id int) error
}

type GradeRepo interface {
	// GetForStudent returns ErrNotFound when the student has no record yet.
	GetForStudent(ctx context.Context, activityID, studentID int) (*domain.ScoreRecord, error)
	ListForGroup(ctx context.Context, activityID, groupID int) ([]domain.ScoreRecord, error)
	// Update overwrites an existing record by id. It never creates one.
	Update(ctx context.Context, rec domain.ScoreRecord) (*domain.ScoreRecord, error)
}

type AchievementGroupRepo interface {
	ListScheme(ctx context.Context, scope domain.Scope) ([]SchemeRow, error)
	GetByID(ctx context.Context, id int) (*SchemeRow, error)
	// Patch returns the stored row after the change.
	Patch(ctx context.Context, id int, patch AchievementGroupPatch) (*SchemeRow, error)
}

type RosterRepo interface {
	ListTeacherAssignments(ctx context.Context, teacherID, year int) ([]domain.AssignmentRow, error)
	ListGroupStudents(ctx context.Context, groupID int) ([]domain.EnrollmentRow, error)
	ListScopedGroupStudents(ctx context.Context, scope domain.Scope) ([]domain.EnrollmentRow, error)
}

type RetryJournal interface {
	Record(ctx context.Context, e PendingEdit) error
	ListPending(ctx context.Context, activityID int) ([]PendingEdit, error)
	Resolve(ctx context.Context, activityID, studentID int) error
}
