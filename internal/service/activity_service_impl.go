package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	grades     repository.GradeRepo
	fanout     int
	observer   UseCaseObserver
}

// NewActivityService creates the activity aggregator. fanout bounds the
// concurrent score joins of one aggregation.
func NewActivityService(
	activities repository.ActivityRepo,
	grades repository.GradeRepo,
	fanout int,
	observers ...UseCaseObserver,
) ActivityService {
	if fanout <= 0 {
		fanout = DefaultFanout
	}
	return &activityService{
		activities: activities,
		grades:     grades,
		fanout:     fanout,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *activityService) GetActivities(ctx context.Context, req contract.ActivitiesRequest) (out []domain.ActivityViewRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"period":  req.Scope.PeriodID,
		"subject": req.Scope.SubjectID,
		"group":   req.Scope.GroupID,
		"teacher": req.ActorIsTeacher,
	}
	defer func() { observe(ctx, s.observer, "get-activities", startedAt, err, fields) }()

	if !req.Ready() {
		return nil, fmt.Errorf("%w: period, subject, group and actor are required", ErrValidation)
	}

	var rows []domain.Activity
	if req.ActorIsTeacher {
		rows, err = s.activities.ListForGroup(ctx, req.Scope)
	} else {
		rows, err = s.activities.ListForStudent(ctx, req.Scope, req.ActorID)
	}
	if err != nil {
		return nil, err
	}

	scores := make([]domain.ActivityScore, len(rows))
	var degraded atomic.Int64
	fanOut(ctx, len(rows), s.fanout, func(ctx context.Context, i int) {
		var score domain.ActivityScore
		var joinErr error
		if req.ActorIsTeacher {
			score, joinErr = s.rosterScore(ctx, rows[i].ID, req.Scope.GroupID)
		} else {
			score, joinErr = s.scalarScore(ctx, rows[i].ID, req.ActorID)
		}
		if joinErr != nil {
			degraded.Add(1)
			score = placeholderFor(req.ActorIsTeacher)
		}
		scores[i] = score
	})
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	out = make([]domain.ActivityViewRecord, len(rows))
	for i, a := range rows {
		out[i] = domain.NewActivityViewRecord(a, scores[i])
	}
	fields["activities"] = len(out)
	fields["degraded"] = degraded.Load()
	return out, nil
}

func (s *activityService) GetActivityDetail(ctx context.Context, activityID, studentID int) (rec *domain.ActivityViewRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"activity": activityID, "student": studentID}
	defer func() { observe(ctx, s.observer, "get-activity-detail", startedAt, err, fields) }()

	a, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	teacherView := studentID == 0
	if teacherView && a.AchievementGroup.GroupID <= 0 {
		return nil, fmt.Errorf("%w: activity %d has no group to list scores for", ErrValidation, a.ID)
	}
	var score domain.ActivityScore
	var joinErr error
	if teacherView {
		score, joinErr = s.rosterScore(ctx, a.ID, a.AchievementGroup.GroupID)
	} else {
		score, joinErr = s.scalarScore(ctx, a.ID, studentID)
	}
	if joinErr != nil {
		fields["degraded"] = 1
		score = placeholderFor(teacherView)
	}

	view := domain.NewActivityViewRecord(*a, score)
	return &view, nil
}

func (s *activityService) CreateActivity(ctx context.Context, draft contract.ActivityDraft) (a *domain.Activity, err error) {
	startedAt := time.Now().UTC()
	defer func() { observe(ctx, s.observer, "create-activity", startedAt, err, map[string]any{"name": draft.Name}) }()

	if err := validateStruct(draft); err != nil {
		return nil, err
	}
	a = draft.Activity(0)
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) UpdateActivity(ctx context.Context, id int, draft contract.ActivityDraft) (a *domain.Activity, err error) {
	startedAt := time.Now().UTC()
	defer func() { observe(ctx, s.observer, "update-activity", startedAt, err, map[string]any{"activity": id}) }()

	if err := validateVar("id", id, "required,gt=0"); err != nil {
		return nil, err
	}
	if err := validateStruct(draft); err != nil {
		return nil, err
	}
	a = draft.Activity(id)
	if err := s.activities.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, id int) (err error) {
	startedAt := time.Now().UTC()
	defer func() { observe(ctx, s.observer, "delete-activity", startedAt, err, map[string]any{"activity": id}) }()

	if err := validateVar("id", id, "required,gt=0"); err != nil {
		return err
	}
	return s.activities.Delete(ctx, id)
}

// scalarScore looks up one student's score. A missing record is not a
// failure; it yields the placeholder.
func (s *activityService) scalarScore(ctx context.Context, activityID, studentID int) (domain.ActivityScore, error) {
	rec, err := s.grades.GetForStudent(ctx, activityID, studentID)
	if repository.IsNotFound(err) {
		return domain.PlaceholderScore(), nil
	}
	if err != nil {
		return nil, err
	}
	comment := rec.Comment
	return domain.ScalarScore{RecordID: &rec.ID, Score: rec.Score, Comment: &comment}, nil
}

// rosterScore fetches every roster student's score for one activity in a
// single group-level call.
func (s *activityService) rosterScore(ctx context.Context, activityID, groupID int) (domain.ActivityScore, error) {
	recs, err := s.grades.ListForGroup(ctx, activityID, groupID)
	if err != nil {
		return nil, err
	}
	return rosterScoreFrom(recs), nil
}

// rosterScoreFrom keeps the first record of each student in upstream order.
func rosterScoreFrom(recs []domain.ScoreRecord) domain.RosterScore {
	out := domain.RosterScore{Entries: make([]domain.RosterEntry, 0, len(recs))}
	seen := make(map[int]bool, len(recs))
	for _, r := range recs {
		if seen[r.StudentID] {
			continue
		}
		seen[r.StudentID] = true
		entry := domain.RosterEntry{StudentID: r.StudentID, Score: r.Score, Comment: r.Comment}
		if r.ID != 0 {
			id := r.ID
			entry.RecordID = &id
		}
		out.Entries = append(out.Entries, entry)
	}
	return out
}

func placeholderFor(teacher bool) domain.ActivityScore {
	if teacher {
		return domain.RosterScore{Entries: []domain.RosterEntry{}}
	}
	return domain.PlaceholderScore()
}
