package cli

import (
	"fmt"

	"github.com/null993/holidown/internal/countdown"
	"github.com/null993/holidown/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	FeedURL      *string `help:"Holiday calendar feed URL."`
	OffworkMid   *string `help:"Midday off-work time (HH:MM)."`
	OffworkNight *string `help:"Evening off-work time (HH:MM)."`
	Timezone     *string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Feed URL:      %s\n", settings.FeedURL)
		fmt.Printf("  Offwork Mid:   %s\n", settings.OffworkMid)
		fmt.Printf("  Offwork Night: %s\n", settings.OffworkNight)
		fmt.Printf("  Timezone:      %s\n", settings.Timezone)
		return nil
	}

	updated := false
	if c.FeedURL != nil {
		settings.FeedURL = *c.FeedURL
		updated = true
	}
	if c.OffworkMid != nil {
		if !countdown.ValidClock(*c.OffworkMid) {
			return fmt.Errorf("invalid offwork-mid time %q, expected HH:MM", *c.OffworkMid)
		}
		settings.OffworkMid = *c.OffworkMid
		updated = true
	}
	if c.OffworkNight != nil {
		if !countdown.ValidClock(*c.OffworkNight) {
			return fmt.Errorf("invalid offwork-night time %q, expected HH:MM", *c.OffworkNight)
		}
		settings.OffworkNight = *c.OffworkNight
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("unknown timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
