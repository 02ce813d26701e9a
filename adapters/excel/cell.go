package excel

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// excelEpoch is the day-zero of the Excel 1900 date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order before falling back to serial parsing.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Norm trims and case-folds a cell value for header comparison.
func Norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ToNumber coerces a cell to a number, stripping thousands separators.
// Returns nil on empty or non-numeric content, never an error.
func ToNumber(s string) *float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// ToDate coerces a cell to a date-only UTC time. Parseable date strings
// are accepted first; a bare positive number is treated as an Excel
// serial day count. Returns nil on anything else, never an error.
func ToDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		d := excelEpoch.AddDate(0, 0, int(serial))
		return &d
	}

	return nil
}
