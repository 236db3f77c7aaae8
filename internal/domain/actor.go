package domain

import (
	"errors"
	"fmt"
)

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ViewMode tracks whether an administrator is browsing as a regular user.
type ViewMode string

const (
	ViewDefault ViewMode = "default"
	ViewAsUser  ViewMode = "as_user"
)

// ErrInvalidViewTransition is returned when an actor cannot enter the requested view mode.
var ErrInvalidViewTransition = errors.New("invalid view mode transition")

// Actor is the user currently driving the session. It is published on the
// acting-user topic and is the single owner of the view mode.
type Actor struct {
	ID       int
	Role     Role
	ViewMode ViewMode
	// Viewed is the user an administrator browses as while in ViewAsUser.
	Viewed *Actor
}

// Effective is the actor whose data is shown: the viewed user while an
// administrator is in ViewAsUser, the actor itself otherwise.
func (a Actor) Effective() Actor {
	if a.ViewMode == ViewAsUser && a.Viewed != nil {
		return *a.Viewed
	}
	return a
}

// SeesRoster reports whether activity scores are shaped as the whole group
// roster. Teachers and administrators in their own view do; students and
// administrators viewing as a student do not.
func (a Actor) SeesRoster() bool {
	switch a.Effective().Role {
	case RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

// ViewAs moves an administrator into ViewAsUser browsing as user.
func (a Actor) ViewAs(user Actor) (Actor, error) {
	next, err := a.WithViewMode(ViewAsUser)
	if err != nil {
		return a, err
	}
	if user.ID <= 0 || user.Role == RoleAdmin {
		return a, fmt.Errorf("%w: cannot view as %s %d", ErrInvalidViewTransition, user.Role, user.ID)
	}
	user.ViewMode, user.Viewed = ViewDefault, nil
	next.Viewed = &user
	return next, nil
}

// WithViewMode returns a copy of the actor in the requested mode.
// Only administrators may switch to ViewAsUser; anyone may return to ViewDefault.
func (a Actor) WithViewMode(mode ViewMode) (Actor, error) {
	switch mode {
	case ViewDefault:
		a.ViewMode = ViewDefault
		a.Viewed = nil
		return a, nil
	case ViewAsUser:
		if a.Role != RoleAdmin {
			return a, fmt.Errorf("%w: role %s cannot view as user", ErrInvalidViewTransition, a.Role)
		}
		a.ViewMode = ViewAsUser
		return a, nil
	default:
		return a, fmt.Errorf("%w: unknown mode %q", ErrInvalidViewTransition, mode)
	}
}
