package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
)

// FormatActivities renders the aggregator output as a table. Student views
// show the score and comment; teacher views show how many students are
// graded.
func FormatActivities(records []domain.ActivityViewRecord) string {
	if len(records) == 0 {
		return Dim("No activities configured for this selection.") + "\n"
	}

	headers := []string{"ID", "ACTIVITY", "KNOWLEDGE", "DATES", "STATUS", "SCORE", "COMMENT"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		score, comment := scoreCells(r.Score)
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			Truncate(r.Name, 32),
			Truncate(r.Knowledge.Name, 24),
			DateRange(r.StartDate, r.EndDate),
			ActivityStatusPill(r.Status),
			score,
			Truncate(comment, 30),
		})
	}
	return RenderTable(headers, rows, 0, 5)
}

func scoreCells(score domain.ActivityScore) (string, string) {
	switch s := score.(type) {
	case domain.ScalarScore:
		return ScoreStyle(s.Score).Render(s.DisplayScore()), s.DisplayComment()
	case domain.RosterScore:
		graded := 0
		for _, e := range s.Entries {
			if e.Score != nil {
				graded++
			}
		}
		return fmt.Sprintf("%d/%d", graded, len(s.Entries)), Dim("-")
	default:
		return Dim("-"), Dim("-")
	}
}

// FormatActivityDetail renders one activity with its achievement chain and
// its score, listing every student for a roster score.
func FormatActivityDetail(r domain.ActivityViewRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold(r.Name), Dim(fmt.Sprintf("#%d", r.ID)))
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n", r.Description)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Subject:      %s\n", r.Subject.Name)
	fmt.Fprintf(&b, "Knowledge:    %s %s\n", r.Knowledge.Name, Dim(fmt.Sprintf("(%.0f%%)", r.Knowledge.Percentage)))
	fmt.Fprintf(&b, "Achievement:  %s\n", r.Achievement)
	fmt.Fprintf(&b, "Dates:        %s\n", DateRange(r.StartDate, r.EndDate))
	fmt.Fprintf(&b, "Status:       %s\n", ActivityStatusPill(r.Status))

	switch s := r.Score.(type) {
	case domain.ScalarScore:
		fmt.Fprintf(&b, "Score:        %s\n", ScoreStyle(s.Score).Render(s.DisplayScore()))
		fmt.Fprintf(&b, "Comment:      %s\n", s.DisplayComment())
	case domain.RosterScore:
		b.WriteString("\n")
		b.WriteString(FormatRosterScore(s))
	}
	return RenderBox("Activity", strings.TrimRight(b.String(), "\n"))
}

// FormatRosterScore lists each student's score in upstream order.
func FormatRosterScore(s domain.RosterScore) string {
	if len(s.Entries) == 0 {
		return Dim("No scores recorded.") + "\n"
	}
	rows := make([][]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		record := Dim("-")
		if e.RecordID != nil {
			record = strconv.Itoa(*e.RecordID)
		}
		rows = append(rows, []string{
			strconv.Itoa(e.StudentID),
			record,
			ScoreStyle(e.Score).Render(domain.ScalarScore{Score: e.Score}.DisplayScore()),
			e.Comment,
		})
	}
	return RenderTable([]string{"STUDENT", "RECORD", "SCORE", "COMMENT"}, rows, 0, 1, 2)
}
