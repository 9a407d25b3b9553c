package events

import (
	"strings"
	"time"
)

// TypeCalendarEvent is the normalized label of the special task type used
// for plain calendar entries (company events, holidays). These render as
// all-day entries titled by their project alone.
const TypeCalendarEvent = "אירוע יומן"

// calendarEventClass tags special-type events so the widget can style them.
const calendarEventClass = "calendar-event"

// Placeholder labels for extendedProps when a reference resolved to nothing.
const (
	labelStatusNotDefined = "not defined"
	labelNoProject        = "no project"
	labelUnassigned       = "unassigned"
)

// ExtendedProps carries the event metadata the widget shows in its detail
// popover. Field names are part of the wire contract.
type ExtendedProps struct {
	Description  string `json:"description"`
	Status       string `json:"status"`
	Project      string `json:"project"`
	User         string `json:"user"`
	FolderLink   string `json:"folderLink"`
	TaskTypeName string `json:"taskTypeName"`
}

// CalendarEvent is the JSON shape consumed by the calendar widget. Field
// names and casing are the wire contract and must not change.
//
// There is deliberately no end field: a recorded end date would make the
// widget render multi-day spans, so every event is forced to single-day.
type CalendarEvent struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Start           string        `json:"start"`
	AllDay          bool          `json:"allDay"`
	BackgroundColor string        `json:"backgroundColor"`
	TextColor       string        `json:"textColor"`
	BorderColor     string        `json:"borderColor"`
	ClassNames      []string      `json:"classNames"`
	ExtendedProps   ExtendedProps `json:"extendedProps"`
}

// Transform maps an enriched, filtered event into the calendar shape. The
// boolean is false when the event cannot be scheduled at all (no usable
// start date), in which case it is silently excluded from the output.
func Transform(e Enriched) (CalendarEvent, bool) {
	if e.Start.IsZero() {
		return CalendarEvent{}, false
	}

	start := e.Start
	hasTime := false
	if hour, minute, sec, ok := parseClock(e.TimeIn); ok {
		start = time.Date(start.Year(), start.Month(), start.Day(), hour, minute, sec, 0, start.Location())
		hasTime = true
	}

	startStr := start.Format("2006-01-02")
	if hasTime {
		startStr = start.Format("2006-01-02T15:04:05")
	}

	isCalendarEvent := e.TaskTypeName == TypeCalendarEvent

	classNames := []string{}
	if isCalendarEvent {
		classNames = []string{calendarEventClass}
	}

	return CalendarEvent{
		ID:              e.ID,
		Title:           buildTitle(e, isCalendarEvent),
		Start:           startStr,
		AllDay:          isCalendarEvent || !hasTime,
		BackgroundColor: e.BackgroundColor,
		TextColor:       e.TextColor,
		BorderColor:     e.BackgroundColor,
		ClassNames:      classNames,
		ExtendedProps: ExtendedProps{
			Description:  e.Notes,
			Status:       firstNonEmpty(e.TaskStatusHebrew, labelStatusNotDefined),
			Project:      firstNonEmpty(e.ProjectName, labelNoProject),
			User:         firstNonEmpty(e.ProjectManagerName, labelUnassigned),
			FolderLink:   e.ProjectFolder,
			TaskTypeName: e.TaskTypeName,
		},
	}, true
}

// buildTitle assembles the event title. Calendar-event entries show just
// the project name, even when it is empty; everything else joins whichever
// display fields are present.
func buildTitle(e Enriched, isCalendarEvent bool) string {
	if isCalendarEvent {
		return e.ProjectName
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{e.TaskTypeName, e.ProjectName, e.LocationName, e.TaskManagerName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " - ")
}
