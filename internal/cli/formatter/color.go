package formatter

import (
	"fmt"
	"strings"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor makes every style render plain text, e.g. when stdout is
// not a terminal.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Passing grade on the 0-5 scale.
const (
	passingScore = 3.0
	goodScore    = 4.0
)

// ScoreStyle colors a score by band: red below passing, yellow up to good,
// green above. Absent scores are dim.
func ScoreStyle(score *float64) lipgloss.Style {
	switch {
	case score == nil:
		return StyleDim
	case *score < passingScore:
		return StyleRed
	case *score < goodScore:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// ActivityStatusPill returns a colored status label.
func ActivityStatusPill(status domain.ActivityStatus) string {
	switch status {
	case domain.ActivityActive:
		return StyleGreen.Render("● active")
	case domain.ActivityFinished:
		return StyleDim.Render("✓ finished")
	case domain.ActivityPending:
		return StyleYellow.Render("○ pending")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
