package service

import (
	"testing"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/bus"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/repository"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/testutil"
)

// Grading scope used across tests: period 2025-1, Math, group 5A.
var (
	testPeriod  = domain.Period{ID: 3, Label: "2025-1", Year: 2025}
	testSubject = domain.Subject{ID: 7, Name: "Math"}
	testGroup   = domain.Group{ID: 12, Code: "5A"}
	testScope   = domain.Scope{PeriodID: 3, SubjectID: 7, GroupID: 12}
)

const activitiesPath = "activities/period/3/subject/7/group/12"

type services struct {
	up         *testutil.FakeUpstream
	bus        *bus.Bus
	activities ActivityService
	scores     ScoreService
	scheme     SchemeService
	roster     RosterService
}

func setupServices(t *testing.T) services {
	t.Helper()
	up := testutil.NewFakeUpstream(t)
	client := up.Client()
	b := bus.New()
	database := testutil.NewTestDB(t)

	activityRepo := repository.NewRESTActivityRepo(client)
	gradeRepo := repository.NewRESTGradeRepo(client)
	groupRepo := repository.NewRESTAchievementGroupRepo(client)
	rosterRepo := repository.NewRESTRosterRepo(client)

	return services{
		up:         up,
		bus:        b,
		activities: NewActivityService(activityRepo, gradeRepo, 4),
		scores:     NewScoreService(gradeRepo, groupRepo, testutil.NewTestUoW(database), 4),
		scheme:     NewSchemeService(groupRepo),
		roster:     NewRosterService(rosterRepo, b),
	}
}
