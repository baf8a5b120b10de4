// Package booking drives the client-side booking flow: the slot catalogs a
// booking screen renders and the draft state machine behind the submit
// button.
package booking

import (
	"fmt"
	"time"
)

const (
	// Candidate start times run on a half-hour grid from open to the last
	// bookable start, inclusive.
	openHour      = 9
	lastStartHour = 18

	// The date picker shows today plus the following six days.
	catalogDays = 7
)

// DateOption is one selectable day in the date picker.
type DateOption struct {
	Date  time.Time
	Label string
}

// DateCatalog returns the selectable dates: today and the following six
// days. Both sequences are pure functions of now and are regenerated on each
// call; nothing is cached or persisted.
func DateCatalog(now time.Time) []DateOption {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	options := make([]DateOption, 0, catalogDays)
	for i := 0; i < catalogDays; i++ {
		d := today.AddDate(0, 0, i)
		options = append(options, DateOption{Date: d, Label: DateLabel(d, now)})
	}
	return options
}

// DateLabel renders a date the way the booking screens caption it. Days are
// compared by calendar date, not hour deltas, so daylight-saving transitions
// cannot shift a label.
func DateLabel(d, now time.Time) string {
	if sameDay(d, now) {
		return "Today"
	}
	if sameDay(d, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	return d.Format("Mon, Jan 2")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TimeCatalog returns every candidate start time on the half-hour grid from
// 09:00 up to and including 18:00.
func TimeCatalog() []string {
	var times []string
	for h := openHour; h <= lastStartHour; h++ {
		times = append(times, fmt.Sprintf("%d:00", h))
		if h < lastStartHour {
			times = append(times, fmt.Sprintf("%d:30", h))
		}
	}
	return times
}

// IntersectTimes narrows the generated catalog to the times the backend
// reports as still open, preserving catalog order.
func IntersectTimes(catalog, available []string) []string {
	open := make(map[string]bool, len(available))
	for _, t := range available {
		open[t] = true
	}
	var out []string
	for _, t := range catalog {
		if open[t] {
			out = append(out, t)
		}
	}
	return out
}

// onGrid reports whether slot is exactly one of TimeCatalog's entries:
// canonical non-padded form, inside booking hours, nothing after the last
// bookable start.
func onGrid(slot string) bool {
	hour, minute, err := parseTimeSlot(slot)
	if err != nil {
		return false
	}
	if slot != fmt.Sprintf("%d:%02d", hour, minute) {
		return false
	}
	if hour < openHour || hour > lastStartHour {
		return false
	}
	return hour != lastStartHour || minute == 0
}

// parseTimeSlot splits an "H:MM" slot into hour and minute.
func parseTimeSlot(slot string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(slot, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("malformed time slot %q: %w", slot, err)
	}
	if hour < 0 || hour > 23 || (minute != 0 && minute != 30) {
		return 0, 0, fmt.Errorf("time slot %q is off the half-hour grid", slot)
	}
	return hour, minute, nil
}
