package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook is a decoded spreadsheet: sheet names in workbook order, each
// mapping to a rectangular grid of raw cell strings. Raw values are kept
// so that date cells surface as Excel serial numbers rather than
// locale-formatted text.
type Workbook struct {
	SheetNames []string
	Sheets     map[string][][]string
}

// ReadWorkbook decodes an xlsx buffer into a Workbook.
func ReadWorkbook(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{
		SheetNames: f.GetSheetList(),
		Sheets:     make(map[string][][]string),
	}

	for _, name := range wb.SheetNames {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		wb.Sheets[name] = rows
	}

	return wb, nil
}

// Grid returns the cell grid for a sheet, or nil if the sheet is unknown.
func (wb *Workbook) Grid(sheet string) [][]string {
	return wb.Sheets[sheet]
}
