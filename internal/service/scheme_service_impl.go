package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/repository"
)

type schemeService struct {
	groups   repository.AchievementGroupRepo
	observer UseCaseObserver
}

func NewSchemeService(groups repository.AchievementGroupRepo, observers ...UseCaseObserver) SchemeService {
	return &schemeService{groups: groups, observer: useCaseObserverOrNoop(observers)}
}

func (s *schemeService) GetScheme(ctx context.Context, periodID, subjectID, groupID int) (scheme *domain.Scheme, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"period": periodID, "subject": subjectID, "group": groupID}
	defer func() { observe(ctx, s.observer, "get-scheme", startedAt, err, fields) }()

	scope := domain.Scope{PeriodID: periodID, SubjectID: subjectID, GroupID: groupID}
	if !scope.Complete() {
		return nil, fmt.Errorf("%w: period, subject and group are required", ErrValidation)
	}

	rows, err := s.groups.ListScheme(ctx, scope)
	if err != nil {
		return &domain.Scheme{Items: []domain.SchemeItem{}, Failed: true}, fmt.Errorf("loading scheme: %w", err)
	}

	scheme = &domain.Scheme{Items: make([]domain.SchemeItem, 0, len(rows))}
	for _, row := range rows {
		scheme.Items = append(scheme.Items, schemeItemFrom(row))
	}
	fields["items"] = len(scheme.Items)
	return scheme, nil
}

func (s *schemeService) UpdateAchievement(ctx context.Context, id int, text string) (item *domain.SchemeItem, err error) {
	startedAt := time.Now().UTC()
	defer func() { observe(ctx, s.observer, "update-achievement", startedAt, err, map[string]any{"id": id}) }()

	if err := validateVar("id", id, "required,gt=0"); err != nil {
		return nil, err
	}
	if err := validateVar("text", text, notBlankTag+",max=500"); err != nil {
		return nil, err
	}

	row, err := s.groups.Patch(ctx, id, repository.AchievementGroupPatch{Achievement: &text})
	if err != nil {
		return nil, err
	}
	out := schemeItemFrom(*row)
	return &out, nil
}

// schemeItemFrom maps an upstream row, filling absent nested fields with
// fallback labels.
func schemeItemFrom(row repository.SchemeRow) domain.SchemeItem {
	item := domain.SchemeItem{
		ID:          row.ID,
		Knowledge:   domain.SubjectKnowledge{Name: domain.FallbackKnowledgeName},
		Achievement: domain.Achievement{ID: row.ID, Description: domain.FallbackAchievement},
	}
	if row.Knowledge != nil {
		item.Knowledge = *row.Knowledge
		if item.Knowledge.Name == "" {
			item.Knowledge.Name = domain.FallbackKnowledgeName
		}
	}
	if row.Achievement != nil && *row.Achievement != "" {
		item.Achievement.Description = *row.Achievement
	}
	return item
}
