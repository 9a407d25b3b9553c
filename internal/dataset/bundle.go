// Package dataset loads the planning spreadsheet into a single in-memory
// bundle: the task list plus the six lookup tables it joins against.
//
// The whole bundle is cached as one unit. Per-sheet caching was tried in an
// earlier revision and replaced by one dataset-wide entry so a cold request
// costs exactly one pass over the backing store.
package dataset

import (
	"opscalendar/internal/tabular"
)

// Sheet names in the backing store.
const (
	SheetTasks           = "Task"
	SheetProjects        = "Project"
	SheetEmployees       = "Employee"
	SheetTaskStatuses    = "TaskStatus"
	SheetTaskTypes       = "TaskType"
	SheetLocations       = "Location"
	SheetProjectStatuses = "ProjectStatus"
)

// AllSheets lists every sheet the bundle needs, fetched together in one
// bulk read.
var AllSheets = []string{
	SheetTasks,
	SheetProjects,
	SheetEmployees,
	SheetTaskStatuses,
	SheetTaskTypes,
	SheetLocations,
	SheetProjectStatuses,
}

// Bundle is the combined task list and lookup tables snapshot. It is
// immutable once built and safe to share across requests; the JSON form is
// what the cache stores.
type Bundle struct {
	Tasks           []tabular.Record           `json:"tasks"`
	Projects        map[string]tabular.Record  `json:"projects"`
	Employees       map[string]tabular.Record  `json:"employees"`
	TaskStatuses    map[string]tabular.Record  `json:"taskStatuses"`
	TaskTypes       map[string]tabular.Record  `json:"taskTypes"`
	Locations       map[string]tabular.Record  `json:"locations"`
	ProjectStatuses map[string]tabular.Record  `json:"projectStatuses"`
}

// NewEmptyBundle returns a bundle with no tasks and empty lookup tables.
// It is the fallback when the backing store cannot be read: the pipeline
// still produces a valid (empty) result.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		Projects:        map[string]tabular.Record{},
		Employees:       map[string]tabular.Record{},
		TaskStatuses:    map[string]tabular.Record{},
		TaskTypes:       map[string]tabular.Record{},
		Locations:       map[string]tabular.Record{},
		ProjectStatuses: map[string]tabular.Record{},
	}
}

// buildBundle assembles a bundle from raw sheet grids: the task sheet is
// loaded and gated on non-empty IDs, every supporting sheet becomes an
// ID-keyed lookup table.
func buildBundle(grids map[string][][]tabular.Cell) *Bundle {
	index := func(name string) map[string]tabular.Record {
		return tabular.IndexBy(tabular.RecordsFromRows(grids[name]), tabular.IDField)
	}

	return &Bundle{
		Tasks:           tabular.WithID(tabular.RecordsFromRows(grids[SheetTasks])),
		Projects:        index(SheetProjects),
		Employees:       index(SheetEmployees),
		TaskStatuses:    index(SheetTaskStatuses),
		TaskTypes:       index(SheetTaskTypes),
		Locations:       index(SheetLocations),
		ProjectStatuses: index(SheetProjectStatuses),
	}
}
