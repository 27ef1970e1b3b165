package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pretrade/internal/checklist"
)

// Palette helpers. Adaptive colors keep the TUI readable on light and dark
// terminal backgrounds.
func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	successStyle = lipgloss.NewStyle().Foreground(ac("28", "42"))
	warningStyle = lipgloss.NewStyle().Foreground(ac("172", "214"))
	dangerStyle  = lipgloss.NewStyle().Foreground(ac("160", "9"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(ac("255", "255")).
			Background(ac("160", "124")).
			Padding(0, 1).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ac("250", "8")).
			Padding(0, 1)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// tierStyle maps the three-way color tier onto its style. Exactly one
// applies at a time.
func tierStyle(t checklist.Tier) lipgloss.Style {
	switch t {
	case checklist.TierSuccess:
		return successStyle
	case checklist.TierWarning:
		return warningStyle
	default:
		return dangerStyle
	}
}

// renderBar draws a card's progress bar: width and label follow the overall
// percentage, color follows the required-completion tier.
func renderBar(s checklist.Stats, width int) string {
	if width < 5 {
		width = 5
	}
	pct := s.Percent()
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	st := tierStyle(s.Tier())
	return st.Render(bar) + mutedStyle.Render(fmt.Sprintf(" %d%%", pct))
}
