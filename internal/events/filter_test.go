package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInactive_ProjectStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"cancelled", true},
		{"canceled", true},
		{"tentative", true},
		{"מבוטל", true},
		{"אופציונלי", true},
		{"טנטטיבי", true},
		{"נדחה", true},
		{"active", false},
		{"", false},
		// Exact equality only, no substring matching
		{"cancelled by client", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			e := Enriched{ProjectStatus: tt.status}
			assert.Equal(t, tt.want, Inactive(e))
		})
	}
}

func TestInactive_TaskStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"cancelled", true},
		{"canceled", true},
		{"מבוטל", true},
		{"נדחה", true},
		// Tentative only disqualifies projects, not tasks
		{"tentative", false},
		{"בתהליך", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			e := Enriched{TaskStatusHebrew: tt.status}
			assert.Equal(t, tt.want, Inactive(e))
		})
	}
}

// An inactive project hides its tasks no matter how healthy they are.
func TestInactive_ProjectOverridesTask(t *testing.T) {
	e := Enriched{ProjectStatus: "cancelled", TaskStatusHebrew: "בתהליך"}
	assert.True(t, Inactive(e))
}
