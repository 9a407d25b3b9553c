package sheets

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"opscalendar/internal/tabular"
)

// ExcelSource reads sheets from a local .xlsx workbook, typically an
// exported snapshot of the live document.
type ExcelSource struct {
	path string
}

// NewExcelSource builds an ExcelSource for the workbook at path. The file
// is opened on each read so a refreshed snapshot is picked up without a
// restart.
func NewExcelSource(path string) *ExcelSource {
	return &ExcelSource{path: path}
}

// ReadSheets opens the workbook once and extracts every requested sheet.
// Requested names missing from the workbook yield empty grids.
func (e *ExcelSource) ReadSheets(ctx context.Context, names []string) (map[string][][]tabular.Cell, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(e.path)
	if err != nil {
		return nil, fmt.Errorf("sheets: open workbook %s: %w", e.path, err)
	}
	defer f.Close()

	present := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		present[name] = true
	}

	out := make(map[string][][]tabular.Cell, len(names))
	for _, name := range names {
		if !present[name] {
			out[name] = nil
			continue
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("sheets: read sheet %s: %w", name, err)
		}
		grid := make([][]tabular.Cell, len(rows))
		for i, row := range rows {
			cells := make([]tabular.Cell, len(row))
			for j, v := range row {
				if v == "" {
					cells[j] = tabular.Cell{}
				} else {
					cells[j] = tabular.StringCell(v)
				}
			}
			grid[i] = cells
		}
		out[name] = grid
	}
	return out, nil
}
