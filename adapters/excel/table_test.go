package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAt(t *testing.T) {
	grid := [][]string{
		{"ignored title"},
		{" Origin ", "Destination", "Rate_20GP"},
		{"CNSHA", "USLAX", "1500", "overflow"},
		{"CNNGB"},
	}

	table := TableAt(grid, 1)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Origin", "Destination", "Rate_20GP"}, table.Headers)

	// Overflow cells beyond the header width are dropped; short rows get
	// empty strings for the missing columns.
	assert.Equal(t, "1500", table.Rows[0]["Rate_20GP"])
	assert.Equal(t, "", table.Rows[1]["Destination"])
}

func TestTableAt_OutOfRange(t *testing.T) {
	table := TableAt([][]string{{"a", "b"}}, 5)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestRowPick(t *testing.T) {
	row := Row{
		"ORIGIN":      "CNSHA",
		"destination": "USLAX",
		"Carrier":     "   ",
		"agency":      "ACME",
	}

	// Each alias is tried as written, then upper, then lower.
	assert.Equal(t, "CNSHA", row.Pick("origin"))
	assert.Equal(t, "USLAX", row.Pick("DESTINATION"))

	// Whitespace-only cells do not satisfy a key; later aliases still win.
	assert.Equal(t, "ACME", row.Pick("Carrier", "agency"))
	assert.Equal(t, "", row.Pick("currency"))
}
