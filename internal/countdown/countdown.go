// Package countdown turns the current time plus a holiday list, or a target
// time of day, into the display strings the UI shows. Everything here is
// pure and stateless; callers re-invoke once per second for live countdowns.
package countdown

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/null993/holidown/internal/constants"
	"github.com/null993/holidown/internal/models"
)

// Sentinels returned by UntilTimeOfDay.
const (
	SentinelElapsed   = "already off"
	SentinelBadFormat = "invalid time (HH:MM)"
)

// NextHoliday reports the countdown to the first holiday whose end has not
// passed. prefix is the data-freshness marker (possibly empty) and is
// prepended with a single space when present.
func NextHoliday(holidays []models.Holiday, now time.Time, prefix string) string {
	if prefix != "" {
		prefix += " "
	}

	today := models.Date(now)
	for _, h := range holidays {
		if h.EndDate.Before(today) {
			continue
		}
		if !today.Before(h.StartDate) && !today.After(h.EndDate) {
			return fmt.Sprintf("%stoday is %s!", prefix, h.Name)
		}
		days := models.DaysBetween(today, h.StartDate)
		return fmt.Sprintf("%s%d days until %s (%s)", prefix, days, h.Name, h.StartDate.Format(constants.DateFormat))
	}

	return prefix + "no upcoming holiday found"
}

// DaysUntil returns the whole-day distance from now to the holiday start:
// 0 while the holiday is running, negative never (callers filter ended
// holidays first).
func DaysUntil(h models.Holiday, now time.Time) int {
	today := models.Date(now)
	if !today.Before(h.StartDate) {
		return 0
	}
	return models.DaysBetween(today, h.StartDate)
}

// UntilTimeOfDay reports the HH:MM:SS remaining from now until the target
// time of day. target is an "HH:MM" string; lenient forms like "8:0" are
// accepted. A malformed target yields SentinelBadFormat, a target already
// behind now yields SentinelElapsed.
func UntilTimeOfDay(now time.Time, target string) string {
	hour, minute, ok := parseClock(target)
	if !ok {
		return SentinelBadFormat
	}

	targetTime := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if now.After(targetTime) {
		return SentinelElapsed
	}

	remaining := targetTime.Sub(now).Round(time.Second)
	h := int(remaining / time.Hour)
	m := int(remaining/time.Minute) % 60
	s := int(remaining/time.Second) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ValidClock reports whether s parses as an HH:MM time of day.
func ValidClock(s string) bool {
	_, _, ok := parseClock(s)
	return ok
}

func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
