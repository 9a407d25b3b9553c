package events

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"opscalendar/internal/dataset"
)

// BundleLoader supplies the current dataset bundle. Satisfied by
// *dataset.Repository.
type BundleLoader interface {
	Load(ctx context.Context) *dataset.Bundle
}

// Service runs the full pipeline: load, validate, enrich, filter,
// transform. Each invocation builds its own local state from the bundle, so
// concurrent requests share nothing mutable.
type Service struct {
	bundles BundleLoader
}

// NewService creates a Service over the given bundle loader.
func NewService(bundles BundleLoader) *Service {
	return &Service{bundles: bundles}
}

// Events returns the calendar events for the current dataset, in task sheet
// order. Invalid rows are logged and skipped; the only error returned is an
// unexpected internal failure, which the web layer surfaces as a hard 500.
func (s *Service) Events(ctx context.Context) ([]CalendarEvent, error) {
	bundle := s.bundles.Load(ctx)
	if bundle == nil {
		return nil, fmt.Errorf("events: bundle loader returned nil")
	}

	out := make([]CalendarEvent, 0, len(bundle.Tasks))
	dropped := 0
	for _, rec := range bundle.Tasks {
		task, problems := ParseTask(rec)
		if len(problems) > 0 {
			dropped++
			slog.Info("events: dropping invalid task",
				"task_id", firstNonEmpty(task.ID, "unknown"),
				"reasons", strings.Join(problems, "; "),
			)
			continue
		}

		enriched := Enrich(task, bundle)
		if Inactive(enriched) {
			continue
		}

		if event, ok := Transform(enriched); ok {
			out = append(out, event)
		}
	}

	slog.Debug("events: pipeline complete",
		"tasks", len(bundle.Tasks),
		"events", len(out),
		"invalid", dropped,
	)
	return out, nil
}
