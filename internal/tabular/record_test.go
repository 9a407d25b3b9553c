package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(values ...string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if v != "" {
			cells[i] = StringCell(v)
		}
	}
	return cells
}

func TestRecordsFromRows(t *testing.T) {
	records := RecordsFromRows([][]Cell{
		row(" ID ", "name"),
		row("1", "Expo"),
		row("2", "Gala"),
	})

	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].Text("ID"))
	assert.Equal(t, "Expo", records[0].Text("name"))
	assert.Equal(t, "Gala", records[1].Text("name"))
}

func TestRecordsFromRows_NoDataRows(t *testing.T) {
	assert.Empty(t, RecordsFromRows(nil))
	assert.Empty(t, RecordsFromRows([][]Cell{}))
	assert.Empty(t, RecordsFromRows([][]Cell{row("ID", "name")}))
}

func TestRecordsFromRows_EmptyHeaderDropped(t *testing.T) {
	records := RecordsFromRows([][]Cell{
		row("ID", "", "name"),
		row("1", "ignored", "Expo"),
	})

	require.Len(t, records, 1)
	assert.Equal(t, "Expo", records[0].Text("name"))
	// The unnamed column contributes no key
	assert.Len(t, records[0], 2)
}

func TestRecordsFromRows_DuplicateHeaderLastColumnWins(t *testing.T) {
	records := RecordsFromRows([][]Cell{
		row("ID", "name", "name"),
		row("1", "old", "new"),
	})

	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].Text("name"))
}

func TestRecordsFromRows_ShortRowReadsAsEmpty(t *testing.T) {
	records := RecordsFromRows([][]Cell{
		row("ID", "name", "folder"),
		row("1"),
	})

	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].Text("ID"))
	assert.Equal(t, "", records[0].Text("name"))
	assert.True(t, records[0].Get("folder").IsEmpty())
}

func TestWithID(t *testing.T) {
	records := []Record{
		{"ID": StringCell("1"), "name": StringCell("kept")},
		{"ID": StringCell("  "), "name": StringCell("blank id")},
		{"name": StringCell("no id")},
		{"ID": NumberCell(7), "name": StringCell("numeric id")},
	}

	kept := WithID(records)
	require.Len(t, kept, 2)
	assert.Equal(t, "kept", kept[0].Text("name"))
	assert.Equal(t, "numeric id", kept[1].Text("name"))
}

func TestIndexBy_LastWins(t *testing.T) {
	records := []Record{
		{"ID": StringCell("a"), "x": NumberCell(1)},
		{"ID": StringCell("a"), "x": NumberCell(2)},
	}

	index := IndexBy(records, "ID")
	require.Len(t, index, 1)

	x, ok := index["a"].Get("x").Float()
	require.True(t, ok)
	assert.Equal(t, 2.0, x)
}

func TestIndexBy_SkipsBlankKeys(t *testing.T) {
	records := []Record{
		{"ID": StringCell("a")},
		{"ID": StringCell("")},
		{"name": StringCell("keyless")},
	}

	index := IndexBy(records, "ID")
	assert.Len(t, index, 1)
	assert.Contains(t, index, "a")
}
