package holidays

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/null993/holidown/internal/constants"
	"github.com/null993/holidown/internal/countdown"
	"github.com/null993/holidown/internal/models"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	totalsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

// Model renders the holiday table: one row per upcoming holiday with its
// date range, the three day counts and a per-row countdown.
type Model struct {
	table    table.Model
	holidays []models.Holiday
	now      time.Time
	width    int
	height   int
}

func New(width, height int) Model {
	columns := []table.Column{
		{Title: "Holiday", Width: 12},
		{Title: "Dates", Width: 24},
		{Title: "Days", Width: 5},
		{Title: "-Makeup", Width: 8},
		{Title: "-Mk+Wknd", Width: 9},
		{Title: "Countdown", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{table: t, now: time.Now(), width: width, height: height}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if height > 4 {
		m.table.SetHeight(height - 4)
	}
}

// SetHolidays replaces the rows. now drives the per-row countdown column.
func (m *Model) SetHolidays(hs []models.Holiday, now time.Time) {
	m.holidays = hs
	m.now = now

	rows := make([]table.Row, 0, len(hs))
	for _, h := range hs {
		cd := "ongoing"
		if d := countdown.DaysUntil(h, now); d > 0 {
			cd = fmt.Sprintf("%d days", d)
		}
		rows = append(rows, table.Row{
			h.Name,
			fmt.Sprintf("%s ~ %s", h.StartDate.Format(constants.DateFormat), h.EndDate.Format(constants.DateFormat)),
			fmt.Sprintf("%d", h.TotalDays),
			fmt.Sprintf("%d", h.DaysExclMakeup),
			fmt.Sprintf("%d", h.DaysExclMakeupWeekend),
			cd,
		})
	}
	m.table.SetRows(rows)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.holidays) == 0 {
		return baseStyle.Render("No upcoming holidays.")
	}

	var totalDays, totalExclMakeup, totalExclBoth int
	for _, h := range m.holidays {
		totalDays += h.TotalDays
		totalExclMakeup += h.DaysExclMakeup
		totalExclBoth += h.DaysExclMakeupWeekend
	}
	totals := totalsStyle.Render(fmt.Sprintf(
		"Total: %d days | excl. makeup: %d | excl. makeup+weekend: %d",
		totalDays, totalExclMakeup, totalExclBoth))

	return lipgloss.JoinVertical(lipgloss.Left, baseStyle.Render(m.table.View()), totals)
}
