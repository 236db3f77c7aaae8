package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
)

// FormatScheme renders the evaluation scheme. A failed load and an
// unconfigured scheme read differently.
func FormatScheme(s *domain.Scheme) string {
	switch {
	case s == nil || s.Failed:
		return StyleRed.Render("Scheme could not be loaded.") + "\n"
	case !s.Configured():
		return Dim("No scheme configured for this selection.") + "\n"
	}

	rows := make([][]string, 0, len(s.Items))
	for _, it := range s.Items {
		rows = append(rows, []string{
			strconv.Itoa(it.ID),
			it.Knowledge.Name,
			fmt.Sprintf("%.0f%%", it.Knowledge.Percentage),
			Truncate(it.Achievement.Description, 60),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"ID", "KNOWLEDGE", "WEIGHT", "ACHIEVEMENT"}, rows, 0, 2))
	b.WriteString(Dim(fmt.Sprintf("Total weight: %.0f%%", s.TotalPercentage())))
	b.WriteString("\n")
	return b.String()
}

// FormatSchemeItem renders a single updated binding.
func FormatSchemeItem(it domain.SchemeItem) string {
	return fmt.Sprintf("%s %s\n  %s: %s\n", Bold(it.Knowledge.Name), Dim(fmt.Sprintf("#%d", it.ID)),
		"Achievement", it.Achievement.Description)
}
