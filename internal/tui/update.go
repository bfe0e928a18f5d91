package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/null993/holidown/internal/constants"
	"github.com/null993/holidown/internal/countdown"
	"github.com/null993/holidown/internal/utils"
)

func (m Model) reloadCmd() tea.Cmd {
	src := m.source
	return func() tea.Msg {
		// Fire and forget: overlapping reloads race and the last writer
		// wins. The tick loop picks the result up from the snapshot.
		src.ReloadAsync(context.Background())
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Settings form state
	if m.state == constants.StateEditSettings {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateOffwork
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if err := m.applySettingsForm(); err != "" {
				m.formError = err
			} else {
				m.formError = ""
				cmds = append(cmds, m.reloadCmd())
			}
			m.state = constants.StateOffwork
		case huh.StateAborted:
			m.state = constants.StateOffwork
		}

		// Keep ticking while the form is open.
		if _, ok := msg.(TickMsg); ok {
			m.advanceClock()
			cmds = append(cmds, tick())
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.holidaysModel.SetSize(msg.Width-4, msg.Height-6)
		m.offworkModel.SetSize(msg.Width, msg.Height-6)
		return m, nil

	case TickMsg:
		m.advanceClock()
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == constants.StateHolidays {
				m.state = constants.StateOffwork
			} else {
				m.state = constants.StateHolidays
			}
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			return m, m.reloadCmd()

		case key.Matches(msg, m.keys.Edit):
			m.settingsForm = &SettingsFormModel{
				FeedURL:      m.settings.FeedURL,
				OffworkMid:   m.settings.OffworkMid,
				OffworkNight: m.settings.OffworkNight,
				Timezone:     m.settings.Timezone,
			}
			m.form = newSettingsForm(m.settingsForm)
			m.state = constants.StateEditSettings
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	if m.state == constants.StateHolidays {
		var cmd tea.Cmd
		m.holidaysModel, cmd = m.holidaysModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// advanceClock moves the displayed time forward and re-polls the shared
// holiday snapshot; staleness is bounded by the one-second tick.
func (m *Model) advanceClock() {
	m.now = currentTime(m.settings)
	m.snap = m.source.Snapshot()
	m.holidaysModel.SetHolidays(m.snap.Holidays, m.now)
	m.offworkModel.SetTime(m.now)
}

func (m *Model) applySettingsForm() string {
	f := m.settingsForm
	if !countdown.ValidClock(f.OffworkMid) || !countdown.ValidClock(f.OffworkNight) {
		return "off-work times must be HH:MM"
	}
	if !utils.ValidateTimezone(f.Timezone) {
		return "unknown timezone"
	}

	m.settings.OffworkMid = f.OffworkMid
	m.settings.OffworkNight = f.OffworkNight
	m.settings.FeedURL = f.FeedURL
	m.settings.Timezone = f.Timezone

	if err := m.store.SaveSettings(m.settings); err != nil {
		return "failed to save settings: " + err.Error()
	}
	m.offworkModel.SetSettings(m.settings)
	return ""
}
