package models

import "github.com/null993/holidown/internal/constants"

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) Settings {
	settings := Settings{}
	for key, value := range data {
		switch key {
		case constants.SettingFeedURL:
			settings.FeedURL = value
		case constants.SettingOffworkMid:
			settings.OffworkMid = value
		case constants.SettingOffworkNight:
			settings.OffworkNight = value
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingFeedURL:      settings.FeedURL,
		constants.SettingOffworkMid:   settings.OffworkMid,
		constants.SettingOffworkNight: settings.OffworkNight,
		constants.SettingTimezone:     settings.Timezone,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.FeedURL == "" {
		settings.FeedURL = constants.DefaultFeedURL
	}
	if settings.OffworkMid == "" {
		settings.OffworkMid = constants.DefaultOffworkMid
	}
	if settings.OffworkNight == "" {
		settings.OffworkNight = constants.DefaultOffworkNight
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}
