// Package tui is the interactive front end. The bubbletea update loop is the
// single dispatcher: every message is handled to completion before the next,
// so checklist state, the unread badge and the modal never race.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pretrade/internal/chart"
	"pretrade/internal/checklist"
	"pretrade/internal/model"
	"pretrade/internal/news"
	"pretrade/internal/store"
)

type view int

const (
	viewChecklists view = iota
	viewNews
	viewChart
)

type keyMap struct {
	Quit     key.Binding
	NextView key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	MarkRead key.Binding
	Report   key.Binding
	Chart    key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev card")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next card")),
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	MarkRead: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "mark read")),
	Report:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate report")),
	Chart:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chart")),
}

// Messages delivered back into the dispatch loop by async network commands.
type unreadMsg struct{ alerts []model.NewsAlert }

type unreadErrMsg struct{ err error }

type markReadOKMsg struct{ id int64 }

type markReadErrMsg struct {
	id  int64
	err error
}

type reportOKMsg struct{}

type reportErrMsg struct{ err error }

type Model struct {
	kv     store.KV
	api    news.API
	lists  []model.Checklist
	points []model.PlotPoint // nil = chart not configured

	view    view
	sel     int // selected card
	itemSel int // selected item inside the card

	alerts  []model.NewsAlert
	newsSel int

	confirming   bool
	confirmFocus confirmFocus

	status string
	width  int
	height int
}

// New builds the TUI model. Checklists are expected to be restored already;
// points may be nil, which disables the chart view.
func New(kv store.KV, api news.API, lists []model.Checklist, points []model.PlotPoint) Model {
	return Model{
		kv:     kv,
		api:    api,
		lists:  lists,
		points: points,
		width:  80,
		height: 24,
	}
}

// Run starts the program and blocks until quit.
func Run(kv store.KV, api news.API, lists []model.Checklist, points []model.PlotPoint) error {
	p := tea.NewProgram(New(kv, api, lists, points), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	// Refresh the unread badge once at startup.
	return m.refreshUnread()
}

func (m Model) refreshUnread() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		alerts, err := api.Unread(context.Background())
		if err != nil {
			return unreadErrMsg{err}
		}
		return unreadMsg{alerts}
	}
}

func (m Model) markRead(id int64) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		if err := api.MarkRead(context.Background(), id); err != nil {
			return markReadErrMsg{id: id, err: err}
		}
		return markReadOKMsg{id: id}
	}
}

func (m Model) generateReport() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		if err := api.GenerateReport(context.Background()); err != nil {
			return reportErrMsg{err}
		}
		return reportOKMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case unreadMsg:
		m.alerts = msg.alerts
		m.clampNewsSel()
		return m, nil

	case unreadErrMsg:
		// Badge keeps its prior state; the error is diagnostics only.
		slog.Error("refresh unread news", "error", msg.err)
		m.status = "news refresh failed"
		return m, nil

	case markReadOKMsg:
		m.removeAlert(msg.id)
		m.clampNewsSel()
		return m, m.refreshUnread()

	case markReadErrMsg:
		// Leave the row in place; no retry.
		slog.Error("mark news read", "news_id", msg.id, "error", msg.err)
		m.status = "mark read failed"
		return m, nil

	case reportOKMsg:
		m.status = "weekly report generated"
		return m, nil

	case reportErrMsg:
		slog.Error("generate weekly report", "error", msg.err)
		m.status = "report generation failed"
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// updateConfirm handles keys while the report confirmation is open.
// Declining closes the modal and nothing else happens.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusYes {
			m.confirmFocus = confirmFocusNo
		} else {
			m.confirmFocus = confirmFocusYes
		}
		return m, nil
	case "y":
		m.confirming = false
		return m, m.generateReport()
	case "enter":
		m.confirming = false
		if m.confirmFocus == confirmFocusYes {
			return m, m.generateReport()
		}
		return m, nil
	case "esc", "n", "q":
		m.confirming = false
		return m, nil
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NextView):
		if m.view == viewChecklists {
			m.view = viewNews
		} else {
			m.view = viewChecklists
		}
		return m, nil

	case key.Matches(msg, keys.Chart):
		// Chart is only offered when plot data was configured.
		if m.points == nil {
			return m, nil
		}
		if m.view == viewChart {
			m.view = viewChecklists
		} else {
			m.view = viewChart
		}
		return m, nil

	case key.Matches(msg, keys.Report):
		m.confirming = true
		m.confirmFocus = confirmFocusNo
		return m, nil
	}

	switch m.view {
	case viewChecklists:
		return m.updateChecklists(msg)
	case viewNews:
		return m.updateNews(msg)
	}
	return m, nil
}

func (m Model) updateChecklists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.lists) == 0 {
		return m, nil
	}
	c := &m.lists[m.sel]
	switch {
	case key.Matches(msg, keys.Up):
		if m.itemSel > 0 {
			m.itemSel--
		}
	case key.Matches(msg, keys.Down):
		if m.itemSel < len(c.Items)-1 {
			m.itemSel++
		}
	case key.Matches(msg, keys.Left):
		if m.sel > 0 {
			m.sel--
			m.itemSel = 0
		}
	case key.Matches(msg, keys.Right):
		if m.sel < len(m.lists)-1 {
			m.sel++
			m.itemSel = 0
		}
	case key.Matches(msg, keys.Toggle):
		if m.itemSel < len(c.Items) {
			if _, err := checklist.Toggle(m.kv, c, c.Items[m.itemSel].ID); err != nil {
				slog.Error("persist checklist state", "checklist", c.ID, "error", err)
				m.status = "could not save checklist state"
			}
		}
	}
	return m, nil
}

func (m Model) updateNews(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.newsSel > 0 {
			m.newsSel--
		}
	case key.Matches(msg, keys.Down):
		if m.newsSel < len(m.alerts)-1 {
			m.newsSel++
		}
	case key.Matches(msg, keys.MarkRead):
		if m.newsSel < len(m.alerts) {
			return m, m.markRead(m.alerts[m.newsSel].ID)
		}
	}
	return m, nil
}

func (m *Model) removeAlert(id int64) {
	for i, a := range m.alerts {
		if a.ID == id {
			m.alerts = append(m.alerts[:i], m.alerts[i+1:]...)
			return
		}
	}
}

func (m *Model) clampNewsSel() {
	if m.newsSel >= len(m.alerts) {
		m.newsSel = len(m.alerts) - 1
	}
	if m.newsSel < 0 {
		m.newsSel = 0
	}
}

func (m Model) View() string {
	var body string
	switch m.view {
	case viewNews:
		body = m.viewNewsPane()
	case viewChart:
		body = m.viewChartPane()
	default:
		body = m.viewChecklistsPane()
	}

	lines := []string{m.header(), "", body}
	if m.confirming {
		lines = append(lines, "", renderConfirm("Generate weekly report?",
			"The server will build a report for the past week.", m.confirmFocus))
	}
	if m.status != "" {
		lines = append(lines, "", mutedStyle.Render(m.status))
	}
	lines = append(lines, "", m.helpLine())
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) header() string {
	h := titleStyle.Render("pretrade")
	if n := len(m.alerts); n > 0 {
		// Unread badge, hidden entirely at zero.
		h += "  " + badgeStyle.Render(fmt.Sprintf("%d", n))
	}
	return h
}

func (m Model) helpLine() string {
	parts := []string{"tab: view", "space: toggle", "enter: mark read", "g: report"}
	if m.points != nil {
		parts = append(parts, "c: chart")
	}
	parts = append(parts, "q: quit")
	return helpStyle.Render(strings.Join(parts, "  "))
}

func (m Model) viewChecklistsPane() string {
	if len(m.lists) == 0 {
		return mutedStyle.Render("no checklists")
	}
	var cards []string
	for ci := range m.lists {
		cards = append(cards, m.renderCard(ci))
	}
	return strings.Join(cards, "\n\n")
}

func (m Model) renderCard(ci int) string {
	c := m.lists[ci]
	s := checklist.Compute(c)

	name := c.Name
	if ci == m.sel {
		name = titleStyle.Render(name)
	} else {
		name = mutedStyle.Render(name)
	}

	lines := []string{name, renderBar(s, 28)}
	for ii, it := range c.Items {
		box := boxUnchecked
		text := it.Text
		if it.Checked {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		if it.Required {
			text += dangerStyle.Render(" *")
		}
		prefix := "  "
		if ci == m.sel && ii == m.itemSel {
			prefix = selectedStyle.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", prefix, box, text))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewNewsPane() string {
	if len(m.alerts) == 0 {
		return mutedStyle.Render("no unread news")
	}
	var lines []string
	for i, a := range m.alerts {
		impact := a.Impact
		if impact == "" {
			impact = "-"
		}
		row := fmt.Sprintf("[%s] %s", impact, a.Title)
		if a.Symbol != "" {
			row += mutedStyle.Render(" " + a.Symbol)
		}
		prefix := "  "
		if i == m.newsSel {
			prefix = selectedStyle.Render("> ")
		}
		lines = append(lines, prefix+row)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewChartPane() string {
	w := m.width - 6
	h := m.height - 10
	if h < 6 {
		h = 6
	}
	return chart.Scatter(m.points, w, h)
}
