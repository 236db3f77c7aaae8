// Package roster normalizes flat upstream listing rows into canonical
// group and teacher rosters.
package roster

import "github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"

// BuildGroupRoster takes the group header from the first row and appends
// every row's student. One row per student is assumed, so students are not
// deduplicated. Empty input yields an empty header with no students.
func BuildGroupRoster(rows []domain.EnrollmentRow) domain.GroupRoster {
	out := domain.GroupRoster{Students: []domain.Student{}}
	if len(rows) == 0 {
		return out
	}
	out.Group = rows[0].Group
	for _, r := range rows {
		out.Students = append(out.Students, r.Student)
	}
	return out
}

type subjectGroupKey struct {
	subjectID int
	groupID   int
}

// BuildTeacherListing produces one entry per distinct (subject, group) pair,
// in first-seen order, and the group mentored by professorID if any.
func BuildTeacherListing(rows []domain.AssignmentRow, professorID int) domain.TeacherListing {
	out := domain.TeacherListing{Subjects: []domain.SubjectGroup{}}

	seen := make(map[subjectGroupKey]bool, len(rows))
	for _, r := range rows {
		k := subjectGroupKey{subjectID: r.Subject.ID, groupID: r.Group.ID}
		if seen[k] {
			continue
		}
		seen[k] = true
		out.Subjects = append(out.Subjects, domain.SubjectGroup{
			AssignmentID: r.ID,
			Subject:      r.Subject,
			Group:        r.Group,
		})
	}

	out.DirectedGroup = DirectedGroup(rows, professorID)
	return out
}

// DirectedGroup returns the first group whose mentor is professorID, or nil.
func DirectedGroup(rows []domain.AssignmentRow, professorID int) *domain.Group {
	for _, r := range rows {
		if r.Group.MentoredBy(professorID) {
			g := r.Group
			return &g
		}
	}
	return nil
}

// DirectedGroups returns every distinct group mentored by professorID, in
// first-seen order. The result is never nil.
func DirectedGroups(rows []domain.AssignmentRow, professorID int) []domain.Group {
	out := []domain.Group{}
	seen := make(map[int]bool)
	for _, r := range rows {
		if !r.Group.MentoredBy(professorID) || seen[r.Group.ID] {
			continue
		}
		seen[r.Group.ID] = true
		out = append(out, r.Group)
	}
	return out
}

// GroupsOf returns the distinct groups of a listing in first-seen order.
func GroupsOf(listing domain.TeacherListing) []domain.Group {
	out := []domain.Group{}
	seen := make(map[int]bool)
	for _, sg := range listing.Subjects {
		if seen[sg.Group.ID] {
			continue
		}
		seen[sg.Group.ID] = true
		out = append(out, sg.Group)
	}
	return out
}

// SubjectsInGroup returns the subjects a listing assigns within one group.
func SubjectsInGroup(listing domain.TeacherListing, groupID int) []domain.Subject {
	var out []domain.Subject
	for _, sg := range listing.Subjects {
		if sg.Group.ID == groupID {
			out = append(out, sg.Subject)
		}
	}
	return out
}
