package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type confirmFocus int

const (
	confirmFocusYes confirmFocus = iota
	confirmFocusNo
)

// renderConfirm draws the yes/no bar shown before report generation.
// Declining must leave everything untouched, so the modal owns no state
// beyond button focus.
func renderConfirm(title, body string, focus confirmFocus) string {
	btn := lipgloss.NewStyle().Padding(0, 1).Faint(true)
	btnActive := lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)

	yes := btn.Render("Generate")
	no := btn.Render("Cancel")
	if focus == confirmFocusYes {
		yes = btnActive.Render("Generate")
	} else {
		no = btnActive.Render("Cancel")
	}

	content := strings.Join([]string{
		titleStyle.Render(title),
		body,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yes, " ", no),
		helpStyle.Render("tab: focus  enter: select  esc: cancel"),
	}, "\n")
	return panelStyle.Render(content)
}
