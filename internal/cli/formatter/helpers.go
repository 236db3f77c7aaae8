package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DateRange renders "start → end" with "?" for a missing bound.
func DateRange(start, end *time.Time) string {
	if start == nil && end == nil {
		return Dim("-")
	}
	return shortDate(start) + " → " + shortDate(end)
}

func shortDate(t *time.Time) string {
	if t == nil {
		return "?"
	}
	return t.Format("Jan 2, 2006")
}

// Truncate shortens s to at most n visible runes, ending with "…".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
