package contract

import "github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"

// TeacherRosterResponse is a teacher's listing for a year: every distinct
// subject-in-group and every group the teacher mentors.
type TeacherRosterResponse struct {
	Subjects       []domain.SubjectGroup
	DirectedGroups []domain.Group
}
