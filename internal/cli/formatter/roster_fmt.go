package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/roster"
)

// FormatTeacherRoster lists the subjects a teacher gives and the groups
// they mentor.
func FormatTeacherRoster(resp *contract.TeacherRosterResponse) string {
	var b strings.Builder
	b.WriteString(Header("Subjects"))
	b.WriteString("\n")
	if len(resp.Subjects) == 0 {
		b.WriteString(Dim("No subject assignments.") + "\n")
	} else {
		listing := domain.TeacherListing{Subjects: resp.Subjects}
		rows := [][]string{}
		for _, g := range roster.GroupsOf(listing) {
			var names []string
			for _, subj := range roster.SubjectsInGroup(listing, g.ID) {
				names = append(names, fmt.Sprintf("%s (#%d)", subj.Name, subj.ID))
			}
			rows = append(rows, []string{strconv.Itoa(g.ID), g.Code, g.Name, strings.Join(names, ", ")})
		}
		b.WriteString(RenderTable([]string{"GROUP", "CODE", "GROUP NAME", "SUBJECTS"}, rows, 0))
	}
	b.WriteString("\n")
	b.WriteString(Header("Directed groups"))
	b.WriteString("\n")
	if len(resp.DirectedGroups) == 0 {
		b.WriteString(Dim("None") + "\n")
	}
	for _, g := range resp.DirectedGroups {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render(g.Code), g.Name)
	}
	return b.String()
}

// FormatGroupRoster renders a group header followed by its students.
func FormatGroupRoster(r *domain.GroupRoster) string {
	var b strings.Builder
	title := r.Group.Code
	if r.Group.Name != "" {
		title += " " + r.Group.Name
	}
	b.WriteString(Header(strings.TrimSpace(title)))
	b.WriteString("\n")
	if r.Group.Mentor != nil {
		fmt.Fprintf(&b, "Mentor: %s %s\n", r.Group.Mentor.FirstName, r.Group.Mentor.LastName)
	}
	if len(r.Students) == 0 {
		b.WriteString(Dim("No students enrolled.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(r.Students))
	for _, s := range r.Students {
		rows = append(rows, []string{strconv.Itoa(s.ID), s.FullName()})
	}
	b.WriteString(RenderTable([]string{"ID", "STUDENT"}, rows, 0))
	b.WriteString(Dim(fmt.Sprintf("%d students", len(r.Students))))
	b.WriteString("\n")
	return b.String()
}
