package contract

import (
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
)

// ActivitiesRequest selects the activities of a scope, shaped for an actor.
type ActivitiesRequest struct {
	Scope          domain.Scope
	ActorID        int
	ActorIsTeacher bool
}

// NewActivitiesRequest builds a request for the actor's effective view: an
// administrator browsing as a user gets that user's activities.
func NewActivitiesRequest(scope domain.Scope, actor domain.Actor) ActivitiesRequest {
	return ActivitiesRequest{
		Scope:          scope,
		ActorID:        actor.Effective().ID,
		ActorIsTeacher: actor.SeesRoster(),
	}
}

// Ready reports whether every selection needed to fetch has been made.
func (r ActivitiesRequest) Ready() bool {
	return r.Scope.Complete() && r.ActorID > 0
}

// ActivityDraft is a teacher's input when creating or editing an activity.
type ActivityDraft struct {
	Name               string                `json:"activityName" validate:"notblank,max=120"`
	Description        string                `json:"description" validate:"max=1000"`
	StartDate          *time.Time            `json:"startDate"`
	EndDate            *time.Time            `json:"endDate"`
	Status             domain.ActivityStatus `json:"status" validate:"omitempty,oneof=pending active finished"`
	AchievementGroupID int                   `json:"achievementGroupId" validate:"required,gt=0"`
}

// Activity converts the draft into the activity it describes.
func (d ActivityDraft) Activity(id int) *domain.Activity {
	status := d.Status
	if status == "" {
		status = domain.ActivityPending
	}
	return &domain.Activity{
		ID:               id,
		Name:             d.Name,
		Description:      d.Description,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		Status:           status,
		AchievementGroup: domain.AchievementGroup{ID: d.AchievementGroupID},
	}
}
