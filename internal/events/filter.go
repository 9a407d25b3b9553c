package events

// filter.go drops enriched events whose project or task has reached an
// inactive status. Membership is exact string equality on the normalized
// label — the sets below are the complete list of literals, English spelling
// variants and Hebrew labels included, and no fuzzy matching is applied.

// inactiveProjectStatuses are project statuses whose tasks never reach the
// calendar: cancelled (both spellings), tentative, and the Hebrew labels for
// cancelled, optional, tentative and postponed.
var inactiveProjectStatuses = map[string]struct{}{
	"cancelled": {},
	"canceled":  {},
	"tentative": {},
	"מבוטל":     {},
	"אופציונלי": {},
	"טנטטיבי":   {},
	"נדחה":      {},
}

// inactiveTaskStatuses are task statuses hidden from the calendar:
// cancelled (both spellings) and the Hebrew labels for cancelled and
// postponed.
var inactiveTaskStatuses = map[string]struct{}{
	"cancelled": {},
	"canceled":  {},
	"מבוטל":     {},
	"נדחה":      {},
}

// Inactive reports whether an enriched event should be dropped because its
// project or its own status marks it as not happening.
func Inactive(e Enriched) bool {
	if _, ok := inactiveProjectStatuses[e.ProjectStatus]; ok {
		return true
	}
	_, ok := inactiveTaskStatuses[e.TaskStatusHebrew]
	return ok
}
