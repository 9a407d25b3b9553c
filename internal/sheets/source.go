// Package sheets provides read-only access to the backing tabular store.
//
// Two backends are supported: the live Google Sheets document the operations
// team maintains, and a local .xlsx snapshot of it for development and
// offline use. Both return raw grids; turning grids into records is the
// tabular package's job.
package sheets

import (
	"context"

	"opscalendar/internal/tabular"
)

// Source reads named sheets from the backing store.
type Source interface {
	// ReadSheets fetches all requested sheets in one pass over the store's
	// sheet list. Requested sheets that do not exist come back as empty
	// grids rather than errors; a non-nil error means the store itself was
	// unreachable or unreadable.
	ReadSheets(ctx context.Context, names []string) (map[string][][]tabular.Cell, error)
}
