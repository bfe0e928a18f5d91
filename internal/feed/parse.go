package feed

import (
	"strings"
	"time"

	"github.com/null993/holidown/internal/logger"
	"github.com/null993/holidown/internal/models"
)

// RawEvent is one calendar entry as parsed from the feed text. Start and End
// are inclusive calendar dates. Events carry no holiday semantics yet; that
// happens in the reconcile package.
type RawEvent struct {
	Name  string
	Start time.Time
	End   time.Time
}

const dateLayout = "20060102"

// Parse scans a calendar feed line by line and returns the events it can
// make sense of, in document order. Malformed events are skipped, an empty
// or unparseable document yields an empty slice. Parse never fails.
//
// The format is a small subset of the calendar text the public holiday feeds
// serve: BEGIN:VEVENT / END:VEVENT blocks containing SUMMARY:, DTSTART and
// DTEND lines. DTSTART/DTEND may carry parameters before the colon; the date
// value is the first 8 characters after it, as yyyyMMdd. DTEND is exclusive
// in the source format.
func Parse(text string) []RawEvent {
	var (
		events      []RawEvent
		insideEvent bool
		name        string
		startVal    string
		endVal      string
	)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "BEGIN:VEVENT" {
			insideEvent = true
			name = ""
			startVal = ""
			endVal = ""
			continue
		}

		if trimmed == "END:VEVENT" {
			if insideEvent && name != "" && startVal != "" {
				if ev, ok := buildEvent(name, startVal, endVal); ok {
					events = append(events, ev)
				}
			}
			insideEvent = false
			continue
		}

		if !insideEvent {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "SUMMARY:"):
			name = strings.TrimPrefix(trimmed, "SUMMARY:")
		case strings.HasPrefix(trimmed, "DTSTART"):
			startVal = valueAfterColon(trimmed)
		case strings.HasPrefix(trimmed, "DTEND"):
			endVal = valueAfterColon(trimmed)
		}
	}

	return events
}

func buildEvent(name, startVal, endVal string) (RawEvent, bool) {
	start, ok := parseDate(startVal)
	if !ok {
		logger.Warn("skipping event with bad start date", "name", name, "value", startVal)
		return RawEvent{}, false
	}

	end := start
	if endVal != "" {
		parsedEnd, ok := parseDate(endVal)
		if !ok {
			logger.Warn("skipping event with bad end date", "name", name, "value", endVal)
			return RawEvent{}, false
		}
		// DTEND is exclusive, so a multi-day range ends the day before.
		if !parsedEnd.Equal(start) {
			end = parsedEnd.AddDate(0, 0, -1)
		}
	}
	if end.Before(start) {
		end = start
	}

	return RawEvent{Name: name, Start: start, End: end}, true
}

// valueAfterColon returns the text after the first colon, so property
// parameters (e.g. "DTSTART;VALUE=DATE:20250101") are ignored.
func valueAfterColon(line string) string {
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return line[i+1:]
	}
	return ""
}

// parseDate reads the leading 8 characters of a yyyyMMdd value, dropping any
// trailing time suffix such as "T000000Z".
func parseDate(value string) (time.Time, bool) {
	raw := strings.TrimSpace(value)
	if len(raw) < 8 {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, raw[:8])
	if err != nil {
		return time.Time{}, false
	}
	return models.Date(t), true
}
