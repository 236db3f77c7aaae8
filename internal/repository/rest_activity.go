package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/rpc"
)

// RESTActivityRepo implements ActivityRepo against the upstream API.
type RESTActivityRepo struct {
	client rpc.Client
}

// NewRESTActivityRepo creates a new RESTActivityRepo.
func NewRESTActivityRepo(client rpc.Client) *RESTActivityRepo {
	return &RESTActivityRepo{client: client}
}

func scopePath(prefix string, scope domain.Scope) string {
	return rpc.Path(prefix, "period", scope.PeriodID, "subject", scope.SubjectID, "group", scope.GroupID)
}

func (r *RESTActivityRepo) ListForGroup(ctx context.Context, scope domain.Scope) ([]domain.Activity, error) {
	var rows []activityDTO
	if err := rpc.GetJSON(ctx, r.client, scopePath("activities", scope), &rows); err != nil {
		return nil, fmt.Errorf("listing group activities: %w", err)
	}
	return activitiesToDomain(rows), nil
}

func (r *RESTActivityRepo) ListForStudent(ctx context.Context, scope domain.Scope, studentID int) ([]domain.Activity, error) {
	path := scopePath("activities", scope) + "/" + rpc.Path("student", studentID)
	var rows []activityDTO
	if err := rpc.GetJSON(ctx, r.client, path, &rows); err != nil {
		return nil, fmt.Errorf("listing student activities: %w", err)
	}
	return activitiesToDomain(rows), nil
}

func (r *RESTActivityRepo) GetByID(ctx context.Context, id int) (*domain.Activity, error) {
	var row activityDTO
	if err := rpc.GetJSON(ctx, r.client, rpc.Path("activities", id), &row); err != nil {
		return nil, fmt.Errorf("getting activity %d: %w", id, err)
	}
	if row.ID == 0 {
		return nil, fmt.Errorf("activity %d: %w", id, ErrNotFound)
	}
	a := row.toDomain()
	return &a, nil
}

func (r *RESTActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	body := activityFromDomain(a)
	body.ID = 0
	var created activityDTO
	if err := rpc.SendJSON(ctx, r.client, http.MethodPost, "activities", body, &created); err != nil {
		return fmt.Errorf("creating activity: %w", err)
	}
	a.ID = created.ID
	return nil
}

func (r *RESTActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	if err := rpc.SendJSON(ctx, r.client, http.MethodPut, rpc.Path("activities", a.ID), activityFromDomain(a), nil); err != nil {
		return fmt.Errorf("updating activity %d: %w", a.ID, err)
	}
	return nil
}

func (r *RESTActivityRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.client.Do(ctx, rpc.Request{Method: http.MethodDelete, Path: rpc.Path("activities", id)}); err != nil {
		return fmt.Errorf("deleting activity %d: %w", id, err)
	}
	return nil
}

func activitiesToDomain(rows []activityDTO) []domain.Activity {
	out := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
