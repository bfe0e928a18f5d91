package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/null993/holidown/internal/constants"
	"github.com/null993/holidown/internal/countdown"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateEditSettings {
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case constants.StateHolidays:
		content = docStyle.Render(m.holidaysModel.View())
	case constants.StateOffwork:
		content = m.offworkModel.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Holidays", "Off-work"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewStatus shows data freshness plus the next-holiday countdown line.
func (m Model) viewStatus() string {
	var status string
	switch {
	case m.formError != "":
		status = warningStyle.Render(m.formError)
	case m.snap.Err != "":
		status = warningStyle.Render(m.snap.Err)
	case !m.snap.Loaded:
		status = statusStyle.Render("loading holiday data...")
	default:
		prefix := m.snap.Status.Prefix()
		if prefix != "" {
			prefix += " "
		}
		status = statusStyle.Render(fmt.Sprintf("%sloaded %d holidays", prefix, len(m.snap.Holidays)))
	}

	if len(m.snap.Holidays) == 0 {
		return status
	}
	next := statusStyle.Render(countdown.NextHoliday(m.snap.Holidays, m.now, m.snap.Status.Prefix()))
	return lipgloss.JoinVertical(lipgloss.Left, status, next)
}
