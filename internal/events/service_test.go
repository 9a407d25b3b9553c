package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opscalendar/internal/dataset"
	"opscalendar/internal/tabular"
)

// staticLoader serves a fixed bundle, standing in for the repository.
type staticLoader struct {
	bundle *dataset.Bundle
}

func (s staticLoader) Load(ctx context.Context) *dataset.Bundle {
	return s.bundle
}

func pipelineBundle() *dataset.Bundle {
	b := scenarioBundle()
	b.Projects["P2"] = tabular.Record{
		"ID":            tabular.StringCell("P2"),
		"name":          tabular.StringCell("Shelved"),
		"ProjectStatus": tabular.StringCell("PS2"),
	}
	b.ProjectStatuses["PS2"] = tabular.Record{
		"ID":   tabular.StringCell("PS2"),
		"name": tabular.StringCell("Cancelled"),
	}
	b.Tasks = []tabular.Record{
		taskRecord(map[string]string{"ID": "1", "dateIn": "2024-03-01", "Project": "P1", "TaskType": "T1"}),
		taskRecord(map[string]string{"ID": "2", "Project": "P1"}),                                            // no dateIn
		taskRecord(map[string]string{"ID": "3", "dateIn": "2024-03-05", "dateOut": "2024-03-01", "Project": "P1"}), // ends before it starts
		taskRecord(map[string]string{"ID": "4", "dateIn": "2024-03-02", "Project": "P2"}),                    // cancelled project
		taskRecord(map[string]string{"ID": "5", "dateIn": "2024-03-09", "Project": "P1"}),
	}
	return b
}

func TestServiceEvents_Pipeline(t *testing.T) {
	svc := NewService(staticLoader{bundle: pipelineBundle()})

	out, err := svc.Events(context.Background())
	require.NoError(t, err)

	// Tasks 2 and 3 fail validation, task 4 sits on a cancelled project
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "setup - Expo - Hall A", out[0].Title)
	assert.Equal(t, "2024-03-01", out[0].Start)
	assert.Equal(t, "5", out[1].ID)
}

func TestServiceEvents_Idempotent(t *testing.T) {
	svc := NewService(staticLoader{bundle: pipelineBundle()})
	ctx := context.Background()

	first, err := svc.Events(ctx)
	require.NoError(t, err)
	second, err := svc.Events(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestServiceEvents_EmptyBundle(t *testing.T) {
	svc := NewService(staticLoader{bundle: dataset.NewEmptyBundle()})

	out, err := svc.Events(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestServiceEvents_NilBundleIsAnError(t *testing.T) {
	svc := NewService(staticLoader{bundle: nil})

	_, err := svc.Events(context.Background())
	assert.Error(t, err)
}
