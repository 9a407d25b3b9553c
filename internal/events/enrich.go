package events

import (
	"strings"

	"opscalendar/internal/dataset"
)

// DefaultBackgroundColor is the neutral gray every event renders with; only
// the text color varies by task type.
const DefaultBackgroundColor = "#D3D3D3"

// DefaultTextColor is used when a task type names no recognized color.
const DefaultTextColor = "#000000"

// textColors maps the color names used in the TaskType sheet to hex values.
var textColors = map[string]string{
	"red":    "#FF0000",
	"blue":   "#0000FF",
	"green":  "#008000",
	"black":  "#000000",
	"white":  "#FFFFFF",
	"orange": "#FFA500",
	"purple": "#800080",
	"yellow": "#FFFF00",
	"grey":   "#808080",
	"gray":   "#808080",
}

// TextColor resolves a color name from the TaskType sheet to a hex value,
// returning fallback for unknown or absent names.
func TextColor(name, fallback string) string {
	if hex, ok := textColors[normalize(name)]; ok {
		return hex
	}
	return fallback
}

// Enriched is a task with its foreign-key references resolved and flattened
// into display fields. Classification fields (ProjectStatus, TaskTypeName,
// TaskStatusHebrew) are trimmed and lower-cased here so the filter and the
// transformer can compare them with plain string equality.
type Enriched struct {
	Task

	ProjectName        string
	ProjectFolder      string
	LocationName       string
	TaskManagerName    string
	ProjectManagerName string

	ProjectStatus    string
	TaskTypeName     string
	TaskStatusHebrew string

	BackgroundColor string
	TextColor       string
}

// Enrich resolves a task against the bundle's lookup tables. Missing
// references never fail: an absent lookup behaves like an empty record and
// every derived field defaults to "".
func Enrich(t Task, b *dataset.Bundle) Enriched {
	project := b.Projects[t.Project]
	projectStatus := b.ProjectStatuses[project.Text(fieldProjectStatus)]
	taskType := b.TaskTypes[t.Type]
	taskStatus := b.TaskStatuses[t.Status]
	location := b.Locations[project.Text(fieldLocation)]
	taskManager := b.Employees[t.Manager]
	projectManager := b.Employees[project.Text(fieldProjectManager)]

	return Enriched{
		Task: t,

		ProjectName:        project.Text(fieldName),
		ProjectFolder:      project.Text(fieldFolder),
		LocationName:       location.Text(fieldName),
		TaskManagerName:    personName(taskManager.Text(fieldFirstName), taskManager.Text(fieldLastName)),
		ProjectManagerName: personName(projectManager.Text(fieldFirstName), projectManager.Text(fieldLastName)),

		ProjectStatus:    normalize(projectStatus.Text(fieldName)),
		TaskTypeName:     normalize(firstNonEmpty(taskType.Text(fieldHebrew), t.Type)),
		TaskStatusHebrew: normalize(taskStatus.Text(fieldHebrew)),

		BackgroundColor: DefaultBackgroundColor,
		TextColor:       TextColor(taskType.Text(fieldColor), DefaultTextColor),
	}
}

// personName joins first and last name with a single space, collapsing to
// one part when the other is missing.
func personName(first, last string) string {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// normalize prepares a classification label for comparison: trimmed and
// lower-cased.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// firstNonEmpty is the ordered default-resolution rule used for every
// fallback chain in the pipeline: the first value that is non-empty after
// trimming wins, otherwise "".
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
