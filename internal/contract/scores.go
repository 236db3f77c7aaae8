package contract

import (
	"errors"
	"fmt"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
)

// ErrPartialBatch reports that at least one edit of a score batch failed.
var ErrPartialBatch = errors.New("score batch partially failed")

// SaveScoresRequest carries the score edits of one activity.
type SaveScoresRequest struct {
	ActivityID int                `json:"activityId" validate:"required,gt=0"`
	Edits      []domain.ScoreEdit `json:"edits" validate:"dive"`
}

// ScoreFailure names a student whose edit could not be saved.
type ScoreFailure struct {
	StudentID int
	Reason    string
	Err       error
}

// SaveScoresResponse is the aggregate outcome of a score batch. Data holds the
// saved records in input order, skipping failed edits.
type SaveScoresResponse struct {
	Success     bool
	Data        []domain.ScoreRecord
	Failures    []ScoreFailure
	Total       int
	FailedCount int
}

// FailedStudentIDs lists the students whose edits failed, in input order.
func (r *SaveScoresResponse) FailedStudentIDs() []int {
	ids := make([]int, 0, len(r.Failures))
	for _, f := range r.Failures {
		ids = append(ids, f.StudentID)
	}
	return ids
}

// Err returns nil when every edit was saved, otherwise an error wrapping
// ErrPartialBatch that names the failure count.
func (r *SaveScoresResponse) Err() error {
	if r == nil || r.FailedCount == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d edits failed (students %v)", ErrPartialBatch, r.FailedCount, r.Total, r.FailedStudentIDs())
}

// AchievementGroupUpdate changes the achievement text and/or knowledge
// linkage of one achievement group. Nil fields are left untouched.
type AchievementGroupUpdate struct {
	ID          int     `json:"id" validate:"required,gt=0"`
	Achievement *string `json:"achievement" validate:"omitempty,notblank,max=500"`
	KnowledgeID *int    `json:"subjectKnowledgeId" validate:"omitempty,gt=0"`
}
