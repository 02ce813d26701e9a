package excel

import "strings"

// Row maps header text to the raw cell value beneath it.
type Row map[string]string

// Table is the data region of a sheet from a chosen header row downward.
type Table struct {
	Headers []string
	Rows    []Row
}

// TableAt builds a Table anchored at headerRow. Cells beyond the header
// width are ignored; short rows leave trailing fields empty.
func TableAt(grid [][]string, headerRow int) *Table {
	if headerRow < 0 || headerRow >= len(grid) {
		return &Table{}
	}

	headers := make([]string, len(grid[headerRow]))
	for i, h := range grid[headerRow] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(grid)-headerRow-1)
	for _, raw := range grid[headerRow+1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				row[h] = raw[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}
}

// Pick resolves a logical field by trying each alias key as written,
// then upper-cased, then lower-cased, returning the first cell with
// non-whitespace content.
func (r Row) Pick(keys ...string) string {
	for _, k := range keys {
		for _, variant := range []string{k, strings.ToUpper(k), strings.ToLower(k)} {
			if v, ok := r[variant]; ok && strings.TrimSpace(v) != "" {
				return v
			}
		}
	}
	return ""
}
