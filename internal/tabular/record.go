package tabular

import "strings"

// IDField is the key column shared by every sheet. Records without a value
// here cannot participate in joins.
const IDField = "ID"

// Record is one data row keyed by header name.
type Record map[string]Cell

// Get returns the cell for a field. Missing fields read as an empty cell.
func (r Record) Get(field string) Cell {
	return r[field]
}

// Text returns the field rendered as text with surrounding whitespace
// trimmed. Missing fields return "".
func (r Record) Text(field string) string {
	return strings.TrimSpace(r[field].String())
}

// RecordsFromRows converts a raw grid into records. Row 0 is the header;
// header cells are trimmed, and columns with an empty header name are not
// used as keys (their cell values are simply unreachable by name). When two
// columns share a header, the rightmost column wins, matching how the
// source spreadsheets overwrite duplicate named columns.
//
// A grid with no data rows yields an empty slice, never an error.
func RecordsFromRows(rows [][]Cell) []Record {
	if len(rows) < 2 {
		return nil
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell.String())
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if name == "" || i >= len(row) {
				continue
			}
			rec[name] = row[i]
		}
		records = append(records, rec)
	}
	return records
}

// WithID drops records whose ID field is blank. This is the data-quality
// gate applied to the task sheet right after loading; supporting sheets go
// through IndexBy instead, which skips keyless rows on its own.
func WithID(records []Record) []Record {
	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.Text(IDField) != "" {
			kept = append(kept, rec)
		}
	}
	return kept
}

// IndexBy builds a lookup table from records keyed by the named field.
// Records with a blank key are skipped; on duplicate keys the later record
// wins.
func IndexBy(records []Record, key string) map[string]Record {
	index := make(map[string]Record, len(records))
	for _, rec := range records {
		k := rec.Text(key)
		if k == "" {
			continue
		}
		index[k] = rec
	}
	return index
}
