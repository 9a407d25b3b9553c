package events

import (
	"strings"
	"time"

	"opscalendar/internal/tabular"
)

// dates.go parses the loosely formatted date and time-of-day cells found in
// the planning sheet. The sheet is maintained by hand, so both ISO and the
// local day-first notation show up.

var dateLayouts = []string{
	"2006-01-02", "2006/01/02", "2006.01.02",
	"02/01/2006", "2/1/2006",
	"02.01.2006", "2.1.2006",
	"02-01-2006", "2-1-2006",
}

var clockLayouts = []string{
	"15:04", "15:04:05", "3:04 PM", "3:04PM",
}

// parseDate extracts a calendar date from a cell. Date-typed cells pass
// through; text cells are tried against the known layouts.
func parseDate(c tabular.Cell) (time.Time, bool) {
	if t, ok := c.Time(); ok {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}

	s := strings.TrimSpace(c.String())
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseClock extracts a time-of-day from a cell. Date-typed cells use their
// clock component, which is how the spreadsheet stores standalone times.
func parseClock(c tabular.Cell) (hour, minute, sec int, ok bool) {
	if t, isTime := c.Time(); isTime {
		return t.Hour(), t.Minute(), t.Second(), true
	}

	s := strings.TrimSpace(c.String())
	if s == "" {
		return 0, 0, 0, false
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), t.Second(), true
		}
	}
	return 0, 0, 0, false
}
