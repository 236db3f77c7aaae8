package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/repository"
)

// FormatSaveScores summarizes a batch outcome and lists each failed student.
func FormatSaveScores(resp *contract.SaveScoresResponse) string {
	var b strings.Builder
	saved := resp.Total - resp.FailedCount
	if resp.Success {
		b.WriteString(StyleGreen.Render(fmt.Sprintf("✓ Saved %d of %d scores", saved, resp.Total)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StyleRed.Render(fmt.Sprintf("✗ %d of %d scores failed", resp.FailedCount, resp.Total)))
	b.WriteString(Dim(fmt.Sprintf(" (%d saved)", saved)))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(resp.Failures))
	for _, f := range resp.Failures {
		rows = append(rows, []string{strconv.Itoa(f.StudentID), f.Reason})
	}
	b.WriteString(RenderTable([]string{"STUDENT", "REASON"}, rows, 0))
	b.WriteString(Dim("Run `erudia scores retry` to resend only the failed scores."))
	b.WriteString("\n")
	return b.String()
}

// FormatPendingEdits lists journaled failures awaiting a retry.
func FormatPendingEdits(pending []repository.PendingEdit) string {
	if len(pending) == 0 {
		return Dim("No failed scores pending.") + "\n"
	}
	rows := make([][]string, 0, len(pending))
	for _, p := range pending {
		rows = append(rows, []string{
			strconv.Itoa(p.Edit.StudentID),
			domain.ScalarScore{Score: p.Edit.Score}.DisplayScore(),
			p.Reason,
			p.FailedAt.Local().Format(time.DateTime),
		})
	}
	return RenderTable([]string{"STUDENT", "SCORE", "REASON", "FAILED AT"}, rows, 0, 1)
}
