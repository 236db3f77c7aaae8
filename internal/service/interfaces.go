package service

import (
	"context"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/repository"
)

type SchemeService interface {
	// GetScheme returns an empty scheme with a nil error when nothing is
	// configured, and an empty scheme flagged Failed along with the error
	// when the fetch fails.
	GetScheme(ctx context.Context, periodID, subjectID, groupID int) (*domain.Scheme, error)
	UpdateAchievement(ctx context.Context, id int, text string) (*domain.SchemeItem, error)
}

type ActivityService interface {
	GetActivities(ctx context.Context, req contract.ActivitiesRequest) ([]domain.ActivityViewRecord, error)
	// GetActivityDetail shapes the activity for one student, or for the
	// activity's whole group when studentID is 0.
	GetActivityDetail(ctx context.Context, activityID, studentID int) (*domain.ActivityViewRecord, error)
	CreateActivity(ctx context.Context, draft contract.ActivityDraft) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, id int, draft contract.ActivityDraft) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, id int) error
}

type ScoreService interface {
	SaveScores(ctx context.Context, req contract.SaveScoresRequest) (*contract.SaveScoresResponse, error)
	// RetryFailed resubmits only the edits of activityID that failed before.
	RetryFailed(ctx context.Context, activityID int) (*contract.SaveScoresResponse, error)
	PendingEdits(ctx context.Context, activityID int) ([]repository.PendingEdit, error)
	UpdateAchievementGroup(ctx context.Context, upd contract.AchievementGroupUpdate) (*domain.SchemeItem, error)
}

type RosterService interface {
	LoadTeacherRoster(ctx context.Context, teacherID, year int) (*contract.TeacherRosterResponse, error)
	LoadGroupStudents(ctx context.Context, groupID int) (*domain.GroupRoster, error)
	LoadScopedGroupStudents(ctx context.Context, periodID, subjectID, groupID int) (*domain.GroupRoster, error)
}
