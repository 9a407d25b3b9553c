package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"opscalendar/internal/dataset"
	"opscalendar/internal/tabular"
)

func lookup(entries map[string]map[string]string) map[string]tabular.Record {
	out := make(map[string]tabular.Record, len(entries))
	for id, fields := range entries {
		rec := tabular.Record{"ID": tabular.StringCell(id)}
		for k, v := range fields {
			rec[k] = tabular.StringCell(v)
		}
		out[id] = rec
	}
	return out
}

// scenarioBundle is the expo-setup fixture used across the pipeline tests.
func scenarioBundle() *dataset.Bundle {
	b := dataset.NewEmptyBundle()
	b.Projects = lookup(map[string]map[string]string{
		"P1": {"name": "Expo", "Location": "L1", "ProjectStatus": "PS1", "ProjectManager": "E2", "folder": "https://drive.example.com/expo"},
	})
	b.Locations = lookup(map[string]map[string]string{
		"L1": {"name": "Hall A"},
	})
	b.TaskTypes = lookup(map[string]map[string]string{
		"T1": {"hebrew": "Setup", "color": "blue"},
	})
	b.ProjectStatuses = lookup(map[string]map[string]string{
		"PS1": {"name": "Active"},
	})
	b.Employees = lookup(map[string]map[string]string{
		"E1": {"firstName": "Dana", "lastName": "Levi"},
		"E2": {"firstName": "Noa", "lastName": "Peretz"},
	})
	b.TaskStatuses = lookup(map[string]map[string]string{
		"S1": {"hebrew": "בתהליך"},
	})
	return b
}

func TestEnrich_ResolvesReferences(t *testing.T) {
	task := Task{ID: "1", Project: "P1", Type: "T1", Status: "S1", Manager: "E1"}

	e := Enrich(task, scenarioBundle())

	assert.Equal(t, "Expo", e.ProjectName)
	assert.Equal(t, "https://drive.example.com/expo", e.ProjectFolder)
	assert.Equal(t, "Hall A", e.LocationName)
	assert.Equal(t, "Dana Levi", e.TaskManagerName)
	assert.Equal(t, "Noa Peretz", e.ProjectManagerName)
	assert.Equal(t, "active", e.ProjectStatus)
	assert.Equal(t, "setup", e.TaskTypeName)
	assert.Equal(t, "בתהליך", e.TaskStatusHebrew)
	assert.Equal(t, DefaultBackgroundColor, e.BackgroundColor)
	assert.Equal(t, "#0000FF", e.TextColor)
}

func TestEnrich_MissingReferencesDefaultToEmpty(t *testing.T) {
	task := Task{ID: "1", Project: "NOPE", Type: "", Status: "", Manager: ""}

	e := Enrich(task, dataset.NewEmptyBundle())

	assert.Empty(t, e.ProjectName)
	assert.Empty(t, e.LocationName)
	assert.Empty(t, e.TaskManagerName)
	assert.Empty(t, e.ProjectManagerName)
	assert.Empty(t, e.ProjectStatus)
	assert.Empty(t, e.TaskTypeName)
	assert.Empty(t, e.TaskStatusHebrew)
	assert.Equal(t, DefaultTextColor, e.TextColor)
}

// When the task type has no label in the lookup, the task's own type field
// is used, normalized like any other classification value.
func TestEnrich_TaskTypeNameFallsBackToRawType(t *testing.T) {
	task := Task{ID: "1", Project: "P1", Type: " Rigging "}

	e := Enrich(task, scenarioBundle())

	assert.Equal(t, "rigging", e.TaskTypeName)
}

func TestPersonName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Dana", "Levi", "Dana Levi"},
		{"Dana", "", "Dana"},
		{"", "Levi", "Levi"},
		{"  Dana  ", "  Levi  ", "Dana Levi"},
		{"", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, personName(tt.first, tt.last))
	}
}

func TestTextColor(t *testing.T) {
	assert.Equal(t, "#FF0000", TextColor("red", DefaultTextColor))
	assert.Equal(t, "#0000FF", TextColor(" Blue ", DefaultTextColor))
	assert.Equal(t, "#808080", TextColor("grey", DefaultTextColor))
	assert.Equal(t, "#808080", TextColor("gray", DefaultTextColor))
	assert.Equal(t, DefaultTextColor, TextColor("turquoise", DefaultTextColor))
	assert.Equal(t, DefaultTextColor, TextColor("", DefaultTextColor))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "b", firstNonEmpty("   ", "b"))
	assert.Equal(t, "", firstNonEmpty("", "  "))
}
