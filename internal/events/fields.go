// Package events turns the raw planning dataset into calendar events: it
// validates task rows, joins them against the lookup tables, drops inactive
// work and maps the survivors into the JSON shape the calendar widget
// consumes.
package events

// Column names in the task sheet.
const (
	fieldDateIn      = "dateIn"
	fieldDateOut     = "dateOut"
	fieldTimeIn      = "timeIn"
	fieldProject     = "Project"
	fieldTaskType    = "TaskType"
	fieldTaskStatus  = "TaskStatus"
	fieldTaskManager = "TaskManager"
	fieldTaskNotes   = "TaskNotes"
)

// Column names in the supporting sheets.
const (
	fieldName           = "name"
	fieldFolder         = "folder"
	fieldLocation       = "Location"
	fieldProjectStatus  = "ProjectStatus"
	fieldProjectManager = "ProjectManager"
	fieldFirstName      = "firstName"
	fieldLastName       = "lastName"
	fieldHebrew         = "hebrew"
	fieldColor          = "color"
)
