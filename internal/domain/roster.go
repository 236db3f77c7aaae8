package domain

// EnrollmentRow is one upstream row of a group listing: a student enrolled in
// a group, optionally scoped to a subject.
type EnrollmentRow struct {
	Group   Group
	Student Student
	Subject *Subject
}

// AssignmentRow is one upstream row of a teacher listing: a professor
// assigned to teach a subject in a group.
type AssignmentRow struct {
	ID        int
	Subject   Subject
	Group     Group
	Professor Professor
}

// GroupRoster is the canonical group header with its students.
type GroupRoster struct {
	Group    Group
	Students []Student
}

// SubjectGroup is one distinct subject-in-group a teacher is assigned to.
type SubjectGroup struct {
	AssignmentID int
	Subject      Subject
	Group        Group
}

// TeacherListing is a teacher's multi-subject listing. DirectedGroup is nil
// when the teacher mentors none of the listed groups.
type TeacherListing struct {
	Subjects      []SubjectGroup
	DirectedGroup *Group
}
