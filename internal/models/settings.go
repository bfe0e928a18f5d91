package models

// Settings represents application-wide settings
type Settings struct {
	FeedURL      string `json:"feed_url"`      // holiday calendar feed URL
	OffworkMid   string `json:"offwork_mid"`   // midday off-work time, e.g. "12:00"
	OffworkNight string `json:"offwork_night"` // evening off-work time, e.g. "18:00"
	Timezone     string `json:"timezone"`      // IANA timezone name, or "Local" for system timezone
}
