package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/db"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/repository"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/rpc"
)

type scoreService struct {
	grades   repository.GradeRepo
	groups   repository.AchievementGroupRepo
	uow      db.UnitOfWork
	fanout   int
	observer UseCaseObserver
}

// NewScoreService creates the score batch writer. Failed edits are kept in
// the retry journal reached through uow; a nil uow disables the journal.
func NewScoreService(
	grades repository.GradeRepo,
	groups repository.AchievementGroupRepo,
	uow db.UnitOfWork,
	fanout int,
	observers ...UseCaseObserver,
) ScoreService {
	if fanout <= 0 {
		fanout = DefaultFanout
	}
	return &scoreService{
		grades:   grades,
		groups:   groups,
		uow:      uow,
		fanout:   fanout,
		observer: useCaseObserverOrNoop(observers),
	}
}

type editOutcome struct {
	saved *domain.ScoreRecord
	err   error
}

// SaveScores writes every edit independently. A failed edit never aborts the
// others; the response names each failed student. When the journal cannot
// be updated the response is still returned together with the error.
func (s *scoreService) SaveScores(ctx context.Context, req contract.SaveScoresRequest) (resp *contract.SaveScoresResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"activity": req.ActivityID, "edits": len(req.Edits)}
	defer func() { observe(ctx, s.observer, "save-scores", startedAt, err, fields) }()

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	outcomes := s.submit(ctx, req.ActivityID, req.Edits)
	resp = buildResponse(req.Edits, outcomes)
	fields["failed"] = resp.FailedCount

	if err := s.journal(ctx, req.ActivityID, req.Edits, outcomes); err != nil {
		return resp, err
	}
	return resp, nil
}

// RetryFailed resubmits the journaled failures of an activity. Edits that
// failed for lack of a record get a fresh lookup first, in case the record
// was created since.
func (s *scoreService) RetryFailed(ctx context.Context, activityID int) (resp *contract.SaveScoresResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"activity": activityID}
	defer func() { observe(ctx, s.observer, "retry-failed-scores", startedAt, err, fields) }()

	pending, err := s.PendingEdits(ctx, activityID)
	if err != nil {
		return nil, err
	}
	edits := make([]domain.ScoreEdit, len(pending))
	for i, p := range pending {
		edits[i] = p.Edit
		if edits[i].RecordID != nil {
			continue
		}
		rec, lookupErr := s.grades.GetForStudent(ctx, activityID, p.Edit.StudentID)
		if lookupErr == nil {
			edits[i].RecordID = domain.Ptr(rec.ID)
		}
	}
	fields["edits"] = len(edits)

	outcomes := s.submit(ctx, activityID, edits)
	resp = buildResponse(edits, outcomes)
	fields["failed"] = resp.FailedCount

	if err := s.journal(ctx, activityID, edits, outcomes); err != nil {
		return resp, err
	}
	return resp, nil
}

func (s *scoreService) PendingEdits(ctx context.Context, activityID int) ([]repository.PendingEdit, error) {
	if err := validateVar("activityId", activityID, "required,gt=0"); err != nil {
		return nil, err
	}
	if s.uow == nil {
		return []repository.PendingEdit{}, nil
	}
	var pending []repository.PendingEdit
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		pending, err = repository.NewSQLiteRetryJournal(tx).ListPending(ctx, activityID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if pending == nil {
		pending = []repository.PendingEdit{}
	}
	return pending, nil
}

func (s *scoreService) UpdateAchievementGroup(ctx context.Context, upd contract.AchievementGroupUpdate) (item *domain.SchemeItem, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "update-achievement-group", startedAt, err, map[string]any{"id": upd.ID})
	}()

	if err := validateStruct(upd); err != nil {
		return nil, err
	}
	row, err := s.groups.Patch(ctx, upd.ID, repository.AchievementGroupPatch{
		Achievement: upd.Achievement,
		KnowledgeID: upd.KnowledgeID,
	})
	if err != nil {
		return nil, err
	}
	out := schemeItemFrom(*row)
	return &out, nil
}

// submit runs one update per edit concurrently. Edits without a record id
// fail with ErrNoScoreRecord and are never sent.
func (s *scoreService) submit(ctx context.Context, activityID int, edits []domain.ScoreEdit) []editOutcome {
	outcomes := make([]editOutcome, len(edits))
	fanOut(ctx, len(edits), s.fanout, func(ctx context.Context, i int) {
		e := edits[i]
		if e.RecordID == nil || *e.RecordID <= 0 {
			outcomes[i].err = fmt.Errorf("student %d: %w", e.StudentID, ErrNoScoreRecord)
			return
		}
		saved, err := s.grades.Update(ctx, e.Record(activityID))
		outcomes[i] = editOutcome{saved: saved, err: err}
	})
	return outcomes
}

// journal records failed edits and clears earlier failures of the edits
// that went through, in one transaction.
func (s *scoreService) journal(ctx context.Context, activityID int, edits []domain.ScoreEdit, outcomes []editOutcome) error {
	if s.uow == nil || len(edits) == 0 {
		return nil
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		j := repository.NewSQLiteRetryJournal(tx)
		for i, o := range outcomes {
			if o.err == nil {
				if err := j.Resolve(ctx, activityID, edits[i].StudentID); err != nil {
					return err
				}
				continue
			}
			if err := j.Record(ctx, repository.PendingEdit{
				ActivityID: activityID,
				Edit:       edits[i],
				Reason:     failureReason(o.err),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("updating retry journal: %w", err)
	}
	return nil
}

func buildResponse(edits []domain.ScoreEdit, outcomes []editOutcome) *contract.SaveScoresResponse {
	resp := &contract.SaveScoresResponse{
		Data:     []domain.ScoreRecord{},
		Failures: []contract.ScoreFailure{},
		Total:    len(edits),
	}
	for i, o := range outcomes {
		if o.err != nil {
			resp.Failures = append(resp.Failures, contract.ScoreFailure{
				StudentID: edits[i].StudentID,
				Reason:    failureReason(o.err),
				Err:       o.err,
			})
			continue
		}
		resp.Data = append(resp.Data, *o.saved)
	}
	resp.FailedCount = len(resp.Failures)
	resp.Success = resp.FailedCount == 0
	return resp
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrNoScoreRecord):
		return "no score record to update"
	case errors.Is(err, rpc.ErrTimeout):
		return "upstream timed out"
	case errors.Is(err, rpc.ErrUnavailable):
		return "upstream unavailable"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}
	var se *rpc.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("upstream returned status %d", se.Code)
	}
	if rpc.IsTransportFailure(err) {
		return "upstream request failed"
	}
	return err.Error()
}
