package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/null993/holidown/internal/constants"
	"github.com/null993/holidown/internal/models"
	"github.com/null993/holidown/internal/source"
	"github.com/null993/holidown/internal/storage"
	"github.com/null993/holidown/internal/tui/components/holidays"
	"github.com/null993/holidown/internal/tui/components/offwork"
	"github.com/null993/holidown/internal/utils"
)

type SettingsFormModel struct {
	FeedURL      string
	OffworkMid   string
	OffworkNight string
	Timezone     string
}

type Model struct {
	store         storage.Provider
	source        *source.Store
	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	holidaysModel holidays.Model
	offworkModel  offwork.Model
	form          *huh.Form
	settingsForm  *SettingsFormModel
	settings      models.Settings
	snap          source.Snapshot
	now           time.Time
	quitting      bool
	formError     string
	width         int
	height        int
}

func NewModel(store storage.Provider, src *source.Store) Model {
	settings, err := store.GetSettings()
	if err != nil {
		models.ApplyDefaultSettings(&settings)
	}

	now := currentTime(settings)

	hm := holidays.New(0, 0)
	om := offwork.New(settings, 0, 0)

	return Model{
		store:         store,
		source:        src,
		state:         constants.StateHolidays,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		holidaysModel: hm,
		offworkModel:  om,
		settings:      settings,
		now:           now,
	}
}

// TickMsg drives the once-per-second refresh of both countdowns and the
// polled holiday snapshot.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.reloadCmd())
}

func currentTime(settings models.Settings) time.Time {
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}

func newSettingsForm(f *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Midday off-work time (HH:MM)").
				Value(&f.OffworkMid),
			huh.NewInput().
				Title("Evening off-work time (HH:MM)").
				Value(&f.OffworkNight),
			huh.NewInput().
				Title("Holiday feed URL").
				Value(&f.FeedURL),
			huh.NewInput().
				Title("Timezone (IANA name or 'Local')").
				Value(&f.Timezone),
		),
	)
}
