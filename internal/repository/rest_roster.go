package repository

import (
	"context"
	"fmt"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/rpc"
)

// RESTRosterRepo implements RosterRepo against the upstream API.
type RESTRosterRepo struct {
	client rpc.Client
}

// NewRESTRosterRepo creates a new RESTRosterRepo.
func NewRESTRosterRepo(client rpc.Client) *RESTRosterRepo {
	return &RESTRosterRepo{client: client}
}

func (r *RESTRosterRepo) ListTeacherAssignments(ctx context.Context, teacherID, year int) ([]domain.AssignmentRow, error) {
	var rows []assignmentDTO
	path := rpc.Path("subject-professors", "professor", teacherID, "year", year)
	if err := rpc.GetJSON(ctx, r.client, path, &rows); err != nil {
		return nil, fmt.Errorf("listing teacher assignments: %w", err)
	}
	out := make([]domain.AssignmentRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AssignmentRow{
			ID:        row.ID,
			Subject:   row.Subject.toDomain(),
			Group:     row.Group.toDomain(),
			Professor: row.Professor.toDomain(),
		})
	}
	return out, nil
}

func (r *RESTRosterRepo) ListGroupStudents(ctx context.Context, groupID int) ([]domain.EnrollmentRow, error) {
	var rows []enrollmentDTO
	if err := rpc.GetJSON(ctx, r.client, rpc.Path("groups", groupID, "students"), &rows); err != nil {
		return nil, fmt.Errorf("listing group students: %w", err)
	}
	return enrollmentsToDomain(rows), nil
}

func (r *RESTRosterRepo) ListScopedGroupStudents(ctx context.Context, scope domain.Scope) ([]domain.EnrollmentRow, error) {
	var rows []enrollmentDTO
	if err := rpc.GetJSON(ctx, r.client, scopePath("groups", scope)+"/students", &rows); err != nil {
		return nil, fmt.Errorf("listing scoped group students: %w", err)
	}
	return enrollmentsToDomain(rows), nil
}

func enrollmentsToDomain(rows []enrollmentDTO) []domain.EnrollmentRow {
	out := make([]domain.EnrollmentRow, 0, len(rows))
	for _, row := range rows {
		e := domain.EnrollmentRow{
			Group:   row.Group.toDomain(),
			Student: row.Student.toDomain(),
		}
		if row.Subject != nil {
			s := row.Subject.toDomain()
			e.Subject = &s
		}
		out = append(out, e)
	}
	return out
}
