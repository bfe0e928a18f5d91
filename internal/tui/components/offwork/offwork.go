package offwork

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/null993/holidown/internal/countdown"
	"github.com/null993/holidown/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(24).
			Align(lipgloss.Center)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			MarginTop(2)
)

// Model renders the two off-work countdowns, recomputed from the current
// time on every tick.
type Model struct {
	settings models.Settings
	now      time.Time
	width    int
	height   int
}

func New(settings models.Settings, width, height int) Model {
	return Model{settings: settings, now: time.Now(), width: width, height: height}
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
}

func (m *Model) SetTime(now time.Time) {
	m.now = now
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	mid := lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render(fmt.Sprintf("Lunch break (%s)", m.settings.OffworkMid)),
		clockStyle.Render(countdown.UntilTimeOfDay(m.now, m.settings.OffworkMid)),
	)
	night := lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render(fmt.Sprintf("Off work (%s)", m.settings.OffworkNight)),
		clockStyle.Render(countdown.UntilTimeOfDay(m.now, m.settings.OffworkNight)),
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("Now: %02d:%02d:%02d", m.now.Hour(), m.now.Minute(), m.now.Second())),
		lipgloss.JoinHorizontal(lipgloss.Top, mid, "   ", night),
		hintStyle.Render("Press 'e' to edit times"),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
