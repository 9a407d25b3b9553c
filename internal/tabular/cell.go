// Package tabular converts raw spreadsheet grids into keyed records and
// ID-indexed lookup tables.
//
// Sheet cells arrive as loosely typed values (text, numbers, dates, blanks
// depending on cell formatting), so the package models them with an explicit
// Cell union instead of bare strings. Records stay loose until they cross
// the validation boundary; nothing downstream of the validator works with
// raw records.
package tabular

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindString
	KindNumber
	KindTime
)

// Cell is a single spreadsheet cell value: string, number, date or empty.
// The zero value is an empty cell.
type Cell struct {
	kind CellKind
	str  string
	num  float64
	t    time.Time
}

// StringCell returns a Cell holding a text value.
func StringCell(s string) Cell {
	return Cell{kind: KindString, str: s}
}

// NumberCell returns a Cell holding a numeric value.
func NumberCell(f float64) Cell {
	return Cell{kind: KindNumber, num: f}
}

// TimeCell returns a Cell holding a date value.
func TimeCell(t time.Time) Cell {
	return Cell{kind: KindTime, t: t}
}

// Kind reports which variant the cell holds.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsEmpty reports whether the cell is blank. A string cell containing only
// whitespace also counts as blank.
func (c Cell) IsEmpty() bool {
	if c.kind == KindEmpty {
		return true
	}
	return c.kind == KindString && strings.TrimSpace(c.str) == ""
}

// String renders the cell as text. Numbers use the shortest exact decimal
// form, dates render as YYYY-MM-DD, empty cells render as "".
func (c Cell) String() string {
	switch c.kind {
	case KindString:
		return c.str
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindTime:
		return c.t.Format("2006-01-02")
	default:
		return ""
	}
}

// Float returns the numeric value and whether the cell holds a number.
func (c Cell) Float() (float64, bool) {
	return c.num, c.kind == KindNumber
}

// Time returns the date value and whether the cell holds a date.
func (c Cell) Time() (time.Time, bool) {
	return c.t, c.kind == KindTime
}

// MarshalJSON encodes the cell compactly: strings and numbers as their JSON
// scalar, empty cells as null, and dates as {"d": "<RFC 3339>"} so the kind
// survives a cache round-trip.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case KindString:
		return json.Marshal(c.str)
	case KindNumber:
		return json.Marshal(c.num)
	case KindTime:
		return json.Marshal(map[string]string{"d": c.t.Format(time.RFC3339)})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Cell) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*c = Cell{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = StringCell(s)
		return nil
	case '{':
		var obj map[string]string
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		raw, ok := obj["d"]
		if !ok {
			return fmt.Errorf("tabular: unknown cell object %s", trimmed)
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("tabular: bad date cell: %w", err)
		}
		*c = TimeCell(t)
		return nil
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*c = NumberCell(f)
		return nil
	}
}
