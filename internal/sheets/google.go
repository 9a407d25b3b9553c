package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"opscalendar/internal/tabular"
)

// GoogleSource reads sheets from a Google Sheets document through the
// Sheets API v4 using a read-only service account.
type GoogleSource struct {
	srv           *gsheets.Service
	spreadsheetID string
}

// NewGoogleSource builds a GoogleSource for the given document using the
// service-account credentials file.
func NewGoogleSource(ctx context.Context, spreadsheetID, credentialsFile string) (*GoogleSource, error) {
	srv, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	return &GoogleSource{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// ReadSheets lists the document's sheets once, then fetches every requested
// sheet that exists in a single batch call. Requested names absent from the
// document yield empty grids.
func (g *GoogleSource) ReadSheets(ctx context.Context, names []string) (map[string][][]tabular.Cell, error) {
	meta, err := g.srv.Spreadsheets.Get(g.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read spreadsheet metadata: %w", err)
	}

	present := make(map[string]bool, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			present[sh.Properties.Title] = true
		}
	}

	out := make(map[string][][]tabular.Cell, len(names))
	var ranges []string
	var fetched []string
	for _, name := range names {
		if present[name] {
			ranges = append(ranges, fmt.Sprintf("'%s'", name))
			fetched = append(fetched, name)
		} else {
			out[name] = nil
		}
	}
	if len(ranges) == 0 {
		return out, nil
	}

	resp, err := g.srv.Spreadsheets.Values.BatchGet(g.spreadsheetID).
		Ranges(ranges...).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: batch read values: %w", err)
	}

	// Value ranges come back in request order.
	for i, vr := range resp.ValueRanges {
		if i >= len(fetched) {
			break
		}
		out[fetched[i]] = gridFromValues(vr.Values)
	}
	return out, nil
}

// gridFromValues converts the API's loosely typed value matrix into cells.
func gridFromValues(values [][]interface{}) [][]tabular.Cell {
	grid := make([][]tabular.Cell, len(values))
	for i, row := range values {
		cells := make([]tabular.Cell, len(row))
		for j, v := range row {
			cells[j] = cellFromValue(v)
		}
		grid[i] = cells
	}
	return grid
}

func cellFromValue(v interface{}) tabular.Cell {
	switch val := v.(type) {
	case nil:
		return tabular.Cell{}
	case string:
		return tabular.StringCell(val)
	case float64:
		return tabular.NumberCell(val)
	case bool:
		if val {
			return tabular.StringCell("TRUE")
		}
		return tabular.StringCell("FALSE")
	default:
		return tabular.StringCell(fmt.Sprint(val))
	}
}
