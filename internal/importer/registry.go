package importer

import (
	"context"

	"ratehub/adapters/excel"
	"ratehub/internal"
	"ratehub/internal/errors"
	"ratehub/ports"
)

// Registry holds the known importers and selects the best match for a
// workbook.
type Registry struct {
	importers []Importer
}

// NewRegistry wires the three schema importers against their stores.
func NewRegistry(repos ports.RateRepositories, bulkThreshold int) *Registry {
	return &Registry{
		importers: []Importer{
			NewSeaFclImporter(repos.SeaFcl, bulkThreshold),
			NewSeaLclImporter(repos.SeaLcl, bulkThreshold),
			NewAirImporter(repos.Air, bulkThreshold),
		},
	}
}

type match struct {
	importer Importer
	sheet    string
	row      int
	score    int
}

// classify folds over every header candidate in the workbook and returns
// the single best (importer, sheet, row) triple, or nil when nothing
// scored above zero.
func (reg *Registry) classify(wb *excel.Workbook) *match {
	var best *match
	for _, cand := range wb.ScanCandidates(excel.MaxHeaderScanRows) {
		for _, imp := range reg.importers {
			score := imp.Score(cand.Headers)
			if best == nil || score > best.score {
				best = &match{importer: imp, sheet: cand.Sheet, row: cand.Row, score: score}
			}
		}
	}
	return best
}

// Run classifies the workbook and executes the winning importer.
// Nothing is persisted when no schema matches.
func (reg *Registry) Run(ctx context.Context, wb *excel.Workbook, batchID string) (*Result, error) {
	best := reg.classify(wb)
	if best == nil || best.score <= 0 {
		return nil, errors.ImportNoMatch("no importer matched across all sheets and header rows")
	}

	internal.DefaultLogger.Info("[Import] classified as %s (sheet=%q row=%d score=%d)",
		best.importer.ID(), best.sheet, best.row, best.score)

	return best.importer.Run(ctx, wb, batchID)
}
