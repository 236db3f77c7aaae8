package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/rpc"
)

// RESTAchievementGroupRepo implements AchievementGroupRepo against the upstream API.
type RESTAchievementGroupRepo struct {
	client rpc.Client
}

// NewRESTAchievementGroupRepo creates a new RESTAchievementGroupRepo.
func NewRESTAchievementGroupRepo(client rpc.Client) *RESTAchievementGroupRepo {
	return &RESTAchievementGroupRepo{client: client}
}

func (r *RESTAchievementGroupRepo) ListScheme(ctx context.Context, scope domain.Scope) ([]SchemeRow, error) {
	var rows []achievementGroupDTO
	if err := rpc.GetJSON(ctx, r.client, scopePath("achievement-groups", scope), &rows); err != nil {
		return nil, fmt.Errorf("listing scheme: %w", err)
	}
	out := make([]SchemeRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toSchemeRow())
	}
	return out, nil
}

type achievementPatchDTO struct {
	Achievement      *string `json:"achievement,omitempty"`
	SubjectKnowledge *refDTO `json:"subjectKnowledge,omitempty"`
}

func (r *RESTAchievementGroupRepo) Patch(ctx context.Context, id int, patch AchievementGroupPatch) (*SchemeRow, error) {
	body := achievementPatchDTO{Achievement: patch.Achievement}
	if patch.KnowledgeID != nil {
		body.SubjectKnowledge = &refDTO{ID: *patch.KnowledgeID}
	}
	var saved *achievementGroupDTO
	if err := rpc.SendJSON(ctx, r.client, http.MethodPut, rpc.Path("achievement-groups", id), body, &saved); err != nil {
		return nil, fmt.Errorf("updating achievement group %d: %w", id, err)
	}
	if saved == nil || saved.ID == 0 {
		// No body on success: read the row back so untouched parts keep
		// their stored values.
		row, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("reading back achievement group %d: %w", id, err)
		}
		return row, nil
	}
	row := saved.toSchemeRow()
	return &row, nil
}

func (r *RESTAchievementGroupRepo) GetByID(ctx context.Context, id int) (*SchemeRow, error) {
	var saved achievementGroupDTO
	if err := rpc.GetJSON(ctx, r.client, rpc.Path("achievement-groups", id), &saved); err != nil {
		return nil, fmt.Errorf("getting achievement group %d: %w", id, err)
	}
	if saved.ID == 0 {
		return nil, fmt.Errorf("achievement group %d: %w", id, ErrNotFound)
	}
	row := saved.toSchemeRow()
	return &row, nil
}
