package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/rpc"
)

// RESTGradeRepo implements GradeRepo against the upstream API.
type RESTGradeRepo struct {
	client rpc.Client
}

// NewRESTGradeRepo creates a new RESTGradeRepo.
func NewRESTGradeRepo(client rpc.Client) *RESTGradeRepo {
	return &RESTGradeRepo{client: client}
}

func (r *RESTGradeRepo) GetForStudent(ctx context.Context, activityID, studentID int) (*domain.ScoreRecord, error) {
	path := rpc.Path("activity-grades", "activity", activityID, "student", studentID)
	var row *gradeDTO
	if err := rpc.GetJSON(ctx, r.client, path, &row); err != nil {
		return nil, fmt.Errorf("getting grade for activity %d student %d: %w", activityID, studentID, err)
	}
	// The upstream answers null or {} when no record exists yet.
	if row == nil || row.ID == 0 {
		return nil, fmt.Errorf("grade for activity %d student %d: %w", activityID, studentID, ErrNotFound)
	}
	rec := row.toDomain()
	if rec.ActivityID == 0 {
		rec.ActivityID = activityID
	}
	if rec.StudentID == 0 {
		rec.StudentID = studentID
	}
	return &rec, nil
}

func (r *RESTGradeRepo) ListForGroup(ctx context.Context, activityID, groupID int) ([]domain.ScoreRecord, error) {
	path := rpc.Path("activity-grades", "activity", activityID, "group", groupID)
	var rows []gradeDTO
	if err := rpc.GetJSON(ctx, r.client, path, &rows); err != nil {
		return nil, fmt.Errorf("listing grades for activity %d group %d: %w", activityID, groupID, err)
	}
	out := make([]domain.ScoreRecord, 0, len(rows))
	for _, row := range rows {
		rec := row.toDomain()
		if rec.ActivityID == 0 {
			rec.ActivityID = activityID
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *RESTGradeRepo) Update(ctx context.Context, rec domain.ScoreRecord) (*domain.ScoreRecord, error) {
	if rec.ID == 0 {
		return nil, fmt.Errorf("updating grade for student %d: %w", rec.StudentID, ErrNotFound)
	}
	var saved *gradeDTO
	if err := rpc.SendJSON(ctx, r.client, http.MethodPut, rpc.Path("activity-grades", rec.ID), gradeFromDomain(rec), &saved); err != nil {
		return nil, fmt.Errorf("updating grade %d: %w", rec.ID, err)
	}
	if saved == nil || saved.ID == 0 {
		// Endpoints answering 204 keep the submitted values.
		return &rec, nil
	}
	out := saved.toDomain()
	return &out, nil
}
