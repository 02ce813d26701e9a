// Package importer discovers which rate schema a workbook carries and
// loads its rows into the store, deduplicated by content fingerprint.
//
// Classification is two-phase: a cheap scoring pass over every header
// candidate in every sheet (loose containment matching, robust to header
// variants), then the winning schema re-anchors with its own exact
// required-header set before row mapping.
package importer

import (
	"context"
	"strings"

	"ratehub/adapters/excel"
	"ratehub/domain/rates"
	"ratehub/internal/errors"
)

// Result describes one completed import invocation.
type Result struct {
	Importer  string `json:"importer"`
	Sheet     string `json:"sheet"`
	TotalRows int    `json:"totalRows"`
	Inserted  int    `json:"inserted"`
	Skipped   int    `json:"skipped"`
	BatchID   string `json:"batchId"`
}

// Importer is one registered schema: it scores header candidates and,
// when selected, maps and persists the sheet's data rows.
type Importer interface {
	ID() string
	Mode() rates.Mode
	Score(headers []string) int
	Run(ctx context.Context, wb *excel.Workbook, batchID string) (*Result, error)
}

// scoreHeaders sums the weight of every keyword contained (case
// insensitive) in at least one header. Containment rather than equality
// keeps the scoring pass tolerant of header variants like "rate_20gp ".
func scoreHeaders(headers []string, weights map[string]int) int {
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = excel.Norm(h)
	}

	score := 0
	for keyword, weight := range weights {
		for _, h := range folded {
			if strings.Contains(h, keyword) {
				score += weight
				break
			}
		}
	}
	return score
}

// optString trims a cell and returns nil for empty content.
func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// currencyOrDefault trims a cell, defaulting missing currency to USD.
func currencyOrDefault(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "USD"
	}
	return s
}

// anchorError reports a winning schema that could not re-locate its
// exact header anchor.
func anchorError(id string) error {
	return errors.ImportNoMatch(id + ": header row not found")
}
