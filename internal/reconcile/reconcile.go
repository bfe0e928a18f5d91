package reconcile

import (
	"sort"
	"time"

	"github.com/null993/holidown/internal/feed"
	"github.com/null993/holidown/internal/models"
)

// matchWindowDays is how far outside a holiday span a make-up workday may
// fall and still be attributed to that holiday. Feeds schedule make-up days
// on the weekends around a holiday, occasionally across a year boundary.
const matchWindowDays = 14

type pendingMakeup struct {
	cleanName string
	date      time.Time
}

// mergeGroup accumulates the fragments of one logical holiday within one
// year while reconciliation runs.
type mergeGroup struct {
	name       string
	begin      time.Time
	end        time.Time
	events     []feed.RawEvent
	makeupDays map[time.Time]struct{}
}

type groupKey struct {
	name string
	year int
}

// Reconcile turns raw calendar events into the finalized holiday list:
// fragments of the same holiday are merged into one span, make-up workday
// events are matched to the holiday they compensate for, and the day counts
// are computed. Deterministic given its inputs; holidays that already ended
// before today are dropped.
func Reconcile(events []feed.RawEvent, today time.Time) []models.Holiday {
	todayDate := models.Date(today)

	var (
		groups  []*mergeGroup
		byKey   = make(map[groupKey]*mergeGroup)
		pending []pendingMakeup
	)

	// Step 1: merge ordinary holidays, set make-up events aside. The year
	// cutoff here is deliberately coarse; past holidays within the current
	// year still have to reach step 2 so their make-up days resolve.
	for _, ev := range events {
		if ev.End.Year() < todayDate.Year() {
			continue
		}

		baseName := normalizeName(ev.Name)
		if baseName == "" {
			continue
		}

		if isMakeupEvent(ev.Name) {
			clean := cleanName(baseName)
			// One pending record per day of the make-up span.
			for d := ev.Start; !d.After(ev.End); d = d.AddDate(0, 0, 1) {
				pending = append(pending, pendingMakeup{cleanName: clean, date: d})
			}
			continue
		}

		key := groupKey{name: baseName, year: ev.Start.Year()}
		g, ok := byKey[key]
		if !ok {
			g = &mergeGroup{
				name:       baseName,
				begin:      ev.Start,
				end:        ev.End,
				makeupDays: make(map[time.Time]struct{}),
			}
			byKey[key] = g
			groups = append(groups, g)
		} else {
			if ev.Start.Before(g.begin) {
				g.begin = ev.Start
			}
			if ev.End.After(g.end) {
				g.end = ev.End
			}
		}
		g.events = append(g.events, ev)
	}

	// Step 2: attribute each make-up day to the first group (in insertion
	// order) whose name matches exactly and whose span, widened by the match
	// window, contains the day. No year check here: the window itself may
	// cross a year boundary.
	for _, p := range pending {
		for _, g := range groups {
			if g.name != p.cleanName {
				continue
			}
			windowStart := g.begin.AddDate(0, 0, -matchWindowDays)
			windowEnd := g.end.AddDate(0, 0, matchWindowDays)
			if !p.date.Before(windowStart) && !p.date.After(windowEnd) {
				g.makeupDays[p.date] = struct{}{}
				break
			}
		}
	}

	// Step 3: compute statistics and emit, dropping holidays that have
	// fully ended.
	var result []models.Holiday
	for _, g := range groups {
		if g.end.Before(todayDate) {
			continue
		}

		totalDays := models.DaysBetween(g.begin, g.end) + 1
		makeupCount := len(g.makeupDays)

		weekendDays := 0
		for d := g.begin; !d.After(g.end); d = d.AddDate(0, 0, 1) {
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				weekendDays++
			}
		}

		exclMakeup := totalDays - makeupCount
		if exclMakeup < 0 {
			exclMakeup = 0
		}
		exclMakeupWeekend := totalDays - makeupCount - weekendDays
		if exclMakeupWeekend < 0 {
			exclMakeupWeekend = 0
		}

		result = append(result, models.Holiday{
			Name:                  g.name,
			StartDate:             g.begin,
			EndDate:               g.end,
			TotalDays:             totalDays,
			DaysExclMakeup:        exclMakeup,
			DaysExclMakeupWeekend: exclMakeupWeekend,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})
	return result
}
