package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateHolidays SessionState = iota
	StateOffwork
	StateEditSettings
)

const (
	AppName           = "holidown"
	DefaultConfigPath = "~/.config/holidown/holidown.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Setting keys
	SettingFeedURL      = "feed_url"
	SettingOffworkMid   = "offwork_mid"
	SettingOffworkNight = "offwork_night"
	SettingTimezone     = "timezone"

	// Default setting values
	DefaultFeedURL      = "https://www.shuyz.com/githubfiles/china-holiday-calender/master/holidayCal.ics"
	DefaultOffworkMid   = "12:00"
	DefaultOffworkNight = "18:00"
	DefaultTimezone     = "Local" // Use system local timezone by default
)
