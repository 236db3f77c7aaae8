package bus

import "github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"

// Registered topics.
var (
	SelectedPeriod  = NewTopic[domain.Period]("selectedPeriod")
	SelectedSubject = NewTopic[domain.Subject]("selectedSubject")
	SelectedGroup   = NewTopic[domain.Group]("selectedGroup")
	ActingUser      = NewTopic[domain.Actor]("actingUser")
	TeacherRoster   = NewTopic[domain.TeacherListing]("teacherRoster")
	DirectedGroups  = NewTopic[[]domain.Group]("directedGroups")
)

// Registry returns the names of all registered topics.
func Registry() []string {
	return []string{
		SelectedPeriod.Name(),
		SelectedSubject.Name(),
		SelectedGroup.Name(),
		ActingUser.Name(),
		TeacherRoster.Name(),
		DirectedGroups.Name(),
	}
}

// SetViewMode moves the acting user into mode and republishes it. It fails
// when no actor is selected or the transition is not allowed.
func SetViewMode(b *Bus, mode domain.ViewMode) (domain.Actor, error) {
	actor, ok := Current(b, ActingUser)
	if !ok {
		return actor, ErrNoActor
	}
	next, err := actor.WithViewMode(mode)
	if err != nil {
		return actor, err
	}
	Publish(b, ActingUser, next)
	return next, nil
}

// ViewAsUser moves the acting administrator into browsing as user and
// republishes it.
func ViewAsUser(b *Bus, user domain.Actor) (domain.Actor, error) {
	actor, ok := Current(b, ActingUser)
	if !ok {
		return actor, ErrNoActor
	}
	next, err := actor.ViewAs(user)
	if err != nil {
		return actor, err
	}
	Publish(b, ActingUser, next)
	return next, nil
}
