package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pretrade/internal/checklist"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

func ok(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

func panel(lines []string) {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	fmt.Println(border.Render(strings.Join(lines, "\n")))
}

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

// progressLine renders one card's bar plus the numbers behind it.
func progressLine(s checklist.Stats, width int) string {
	if width <= 0 {
		width = 28
	}
	filled := s.Percent() * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	st := tierStyle(s.Tier())
	return fmt.Sprintf("%s %d%% %s", st.Render(bar), s.Percent(),
		mutedStyle.Render(fmt.Sprintf("(required %d%%, %s)", s.RequiredPercent(), s.Tier())))
}
