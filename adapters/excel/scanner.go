package excel

import "strings"

// MaxHeaderScanRows bounds how deep into each sheet candidate scanning
// goes, so pathological sheets with thousands of rows stay cheap.
const MaxHeaderScanRows = 30

// HeaderCandidate is one row considered as a possible column-header row.
type HeaderCandidate struct {
	Sheet   string
	Row     int
	Headers []string
}

// ScanCandidates returns every row within the first maxRows rows of every
// sheet that has at least two non-empty trimmed cells.
func (wb *Workbook) ScanCandidates(maxRows int) []HeaderCandidate {
	var candidates []HeaderCandidate
	for _, name := range wb.SheetNames {
		grid := wb.Sheets[name]
		limit := len(grid)
		if limit > maxRows {
			limit = maxRows
		}
		for i := 0; i < limit; i++ {
			var headers []string
			for _, cell := range grid[i] {
				if v := strings.TrimSpace(cell); v != "" {
					headers = append(headers, v)
				}
			}
			if len(headers) < 2 {
				continue
			}
			candidates = append(candidates, HeaderCandidate{Sheet: name, Row: i, Headers: headers})
		}
	}
	return candidates
}

// FindHeaderRow returns the index of the first row whose trimmed,
// case-folded cell set is a superset of required, or -1.
func FindHeaderRow(grid [][]string, required []string) int {
	req := make([]string, len(required))
	for i, r := range required {
		req[i] = Norm(r)
	}

	for i, row := range grid {
		cells := make(map[string]bool, len(row))
		for _, cell := range row {
			cells[Norm(cell)] = true
		}
		match := true
		for _, r := range req {
			if !cells[r] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// FindSheetWithHeader walks sheets in workbook order and returns the
// first sheet containing a header row satisfying the required set.
func (wb *Workbook) FindSheetWithHeader(required []string) (sheet string, grid [][]string, headerRow int, ok bool) {
	for _, name := range wb.SheetNames {
		g := wb.Sheets[name]
		if idx := FindHeaderRow(g, required); idx != -1 {
			return name, g, idx, true
		}
	}
	return "", nil, -1, false
}
