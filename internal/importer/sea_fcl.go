package importer

import (
	"context"
	"strings"
	"time"

	"ratehub/adapters/excel"
	"ratehub/domain/rates"
	"ratehub/ports"
)

// seaFclWeights favor the container-rate columns, which no other layout
// carries, over the generic origin/destination pair.
var seaFclWeights = map[string]int{
	"origin":      2,
	"destination": 2,
	"rate_20gp":   3,
	"rate_40gp":   3,
	"rate_40hc":   3,
}

var seaFclAnchor = []string{"origin", "destination", "rate_20gp"}

type seaFclImporter struct {
	repo          ports.SeaFclRateRepository
	bulkThreshold int
}

// NewSeaFclImporter builds the SEA_FCL schema importer.
func NewSeaFclImporter(repo ports.SeaFclRateRepository, bulkThreshold int) Importer {
	return &seaFclImporter{repo: repo, bulkThreshold: bulkThreshold}
}

func (imp *seaFclImporter) ID() string       { return "seaFcl" }
func (imp *seaFclImporter) Mode() rates.Mode { return rates.ModeSeaFCL }

func (imp *seaFclImporter) Score(headers []string) int {
	return scoreHeaders(headers, seaFclWeights)
}

func (imp *seaFclImporter) Run(ctx context.Context, wb *excel.Workbook, batchID string) (*Result, error) {
	sheet, grid, headerRow, ok := wb.FindSheetWithHeader(seaFclAnchor)
	if !ok {
		return nil, anchorError("SEA_FCL")
	}

	table := excel.TableAt(grid, headerRow)
	now := time.Now().UTC()

	records := make([]*rates.SeaFclRate, 0, len(table.Rows))
	for _, row := range table.Rows {
		if r := mapSeaFclRow(row, batchID, now); r != nil {
			records = append(records, r)
		}
	}

	inserted, skipped, err := InsertIgnoreDuplicates(ctx, records, imp.bulkThreshold,
		imp.repo.Create, imp.repo.CreateMany)
	if err != nil {
		return nil, err
	}

	return &Result{
		Importer:  imp.ID(),
		Sheet:     sheet,
		TotalRows: len(table.Rows),
		Inserted:  inserted,
		Skipped:   skipped,
		BatchID:   batchID,
	}, nil
}

func mapSeaFclRow(row excel.Row, batchID string, now time.Time) *rates.SeaFclRate {
	origin := strings.TrimSpace(row.Pick("origin"))
	destination := strings.TrimSpace(row.Pick("destination"))
	if origin == "" || destination == "" {
		return nil
	}

	r := &rates.SeaFclRate{
		Origin:      origin,
		Destination: destination,

		Rate20GP: excel.ToNumber(row.Pick("rate_20gp")),
		Rate40GP: excel.ToNumber(row.Pick("rate_40gp")),
		Rate40HC: excel.ToNumber(row.Pick("rate_40hc")),
		Rate20RF: excel.ToNumber(row.Pick("rate_20_rf", "rate_20rf")),
		Rate40RF: excel.ToNumber(row.Pick("rate_40_rf", "rate_40rf")),

		Carrier:     optString(row.Pick("carrier")),
		Currency:    currencyOrDefault(row.Pick("currency")),
		ValidFrom:   excel.ToDate(row.Pick("valid_from", "validFrom")),
		ValidTo:     excel.ToDate(row.Pick("valid_to", "validTo")),
		TransitTime: optString(row.Pick("transit_time", "transitTime")),
		ETD:         optString(row.Pick("etd")),
		Agency:      optString(row.Pick("agency")),

		BatchID:   batchID,
		CreatedAt: now,
	}
	r.Fingerprint = rates.SeaFclFingerprint(r)
	return r
}
