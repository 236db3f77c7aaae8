package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/bus"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/repository"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/roster"
)

type rosterService struct {
	roster   repository.RosterRepo
	bus      *bus.Bus
	observer UseCaseObserver
}

// NewRosterService creates the roster loader. When b is non-nil, teacher
// rosters are published on the teacherRoster and directedGroups topics.
func NewRosterService(repo repository.RosterRepo, b *bus.Bus, observers ...UseCaseObserver) RosterService {
	return &rosterService{roster: repo, bus: b, observer: useCaseObserverOrNoop(observers)}
}

func (s *rosterService) LoadTeacherRoster(ctx context.Context, teacherID, year int) (resp *contract.TeacherRosterResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"teacher": teacherID, "year": year}
	defer func() { observe(ctx, s.observer, "load-teacher-roster", startedAt, err, fields) }()

	if teacherID <= 0 || year <= 0 {
		return nil, fmt.Errorf("%w: teacher and year are required", ErrValidation)
	}
	rows, err := s.roster.ListTeacherAssignments(ctx, teacherID, year)
	if err != nil {
		return nil, fmt.Errorf("loading teacher roster: %w", err)
	}

	listing := roster.BuildTeacherListing(rows, teacherID)
	directed := roster.DirectedGroups(rows, teacherID)
	if s.bus != nil {
		bus.Publish(s.bus, bus.TeacherRoster, listing)
		bus.Publish(s.bus, bus.DirectedGroups, directed)
	}
	fields["subjects"] = len(listing.Subjects)
	fields["directed_groups"] = len(directed)
	return &contract.TeacherRosterResponse{Subjects: listing.Subjects, DirectedGroups: directed}, nil
}

func (s *rosterService) LoadGroupStudents(ctx context.Context, groupID int) (out *domain.GroupRoster, err error) {
	startedAt := time.Now().UTC()
	defer func() { observe(ctx, s.observer, "load-group-students", startedAt, err, map[string]any{"group": groupID}) }()

	if err := validateVar("groupId", groupID, "required,gt=0"); err != nil {
		return nil, err
	}
	rows, err := s.roster.ListGroupStudents(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("loading group students: %w", err)
	}
	g := roster.BuildGroupRoster(rows)
	return &g, nil
}

func (s *rosterService) LoadScopedGroupStudents(ctx context.Context, periodID, subjectID, groupID int) (out *domain.GroupRoster, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"period": periodID, "subject": subjectID, "group": groupID}
	defer func() { observe(ctx, s.observer, "load-scoped-group-students", startedAt, err, fields) }()

	scope := domain.Scope{PeriodID: periodID, SubjectID: subjectID, GroupID: groupID}
	if !scope.Complete() {
		return nil, fmt.Errorf("%w: period, subject and group are required", ErrValidation)
	}
	rows, err := s.roster.ListScopedGroupStudents(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("loading group students: %w", err)
	}
	g := roster.BuildGroupRoster(rows)
	return &g, nil
}
