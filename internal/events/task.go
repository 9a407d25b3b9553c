package events

import (
	"time"

	"opscalendar/internal/tabular"
)

// Task is a task row converted to explicit types. Loose records never cross
// this boundary: everything downstream of ParseTask works with Task.
type Task struct {
	ID      string
	Start   time.Time
	End     time.Time
	HasEnd  bool
	Project string
	Type    string
	Status  string
	Manager string
	Notes   string

	// TimeIn stays raw; the transformer decides whether it yields a usable
	// time-of-day component.
	TimeIn tabular.Cell
}

// ParseTask converts a task record into a typed Task and reports every
// problem found. Checks do not short-circuit — a row missing both its start
// date and its project reports both — except that the end date is only
// examined when the start date parsed, since the ordering check is
// meaningless without it.
//
// A task with a non-empty problem list must be dropped by the caller.
func ParseTask(rec tabular.Record) (Task, []string) {
	var problems []string

	task := Task{
		ID:      rec.Text(tabular.IDField),
		Project: rec.Text(fieldProject),
		Type:    rec.Text(fieldTaskType),
		Status:  rec.Text(fieldTaskStatus),
		Manager: rec.Text(fieldTaskManager),
		Notes:   rec.Text(fieldTaskNotes),
		TimeIn:  rec.Get(fieldTimeIn),
	}

	start, ok := parseDate(rec.Get(fieldDateIn))
	if !ok {
		problems = append(problems, "dateIn is missing or not a valid date")
	} else {
		task.Start = start

		if out := rec.Get(fieldDateOut); !out.IsEmpty() {
			end, ok := parseDate(out)
			switch {
			case !ok:
				problems = append(problems, "dateOut is not a valid date")
			case end.Before(start):
				problems = append(problems, "dateOut is earlier than dateIn")
			default:
				task.End = end
				task.HasEnd = true
			}
		}
	}

	if task.Project == "" {
		problems = append(problems, "Project is missing")
	}

	return task, problems
}
