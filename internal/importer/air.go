package importer

import (
	"context"
	"strings"
	"time"

	"ratehub/adapters/excel"
	"ratehub/domain/rates"
	"ratehub/ports"
)

// airWeights score how distinctive each header keyword is for the
// air-cargo tiered-rate layout.
var airWeights = map[string]int{
	"origin_port_code":      2,
	"destination_port_code": 2,
	"+45":                   2,
	"+100":                  2,
	"+1000":                 2,
	"min":                   1,
}

var airAnchor = []string{"origin_port_code", "destination_port_code"}

type airImporter struct {
	repo          ports.AirRateRepository
	bulkThreshold int
}

// NewAirImporter builds the AIR schema importer.
func NewAirImporter(repo ports.AirRateRepository, bulkThreshold int) Importer {
	return &airImporter{repo: repo, bulkThreshold: bulkThreshold}
}

func (imp *airImporter) ID() string       { return "air" }
func (imp *airImporter) Mode() rates.Mode { return rates.ModeAir }

func (imp *airImporter) Score(headers []string) int {
	return scoreHeaders(headers, airWeights)
}

func (imp *airImporter) Run(ctx context.Context, wb *excel.Workbook, batchID string) (*Result, error) {
	sheet, grid, headerRow, ok := wb.FindSheetWithHeader(airAnchor)
	if !ok {
		return nil, anchorError("AIR")
	}

	table := excel.TableAt(grid, headerRow)
	now := time.Now().UTC()

	records := make([]*rates.AirRate, 0, len(table.Rows))
	for _, row := range table.Rows {
		if r := mapAirRow(row, batchID, now); r != nil {
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

// mapAirRow builds one air record, or nil when the row lacks a required
// field. The fingerprint is derived from normalized values so header
// spelling variants never change the stored identity.
func mapAirRow(row excel.Row, batchID string, now time.Time) *rates.AirRate {
	origin := strings.TrimSpace(row.Pick("origin_port_code", "origin"))
	destination := strings.TrimSpace(row.Pick("destination_port_code", "destination"))
	if origin == "" || destination == "" {
		return nil
	}

	r := &rates.AirRate{
		Origin:      origin,
		Destination: destination,

		Min:           excel.ToNumber(row.Pick("min")),
		Rate45:        excel.ToNumber(row.Pick("+45", "45")),
		Rate100:       excel.ToNumber(row.Pick("+100", "100")),
		Rate300:       excel.ToNumber(row.Pick("+300", "300")),
		Rate500:       excel.ToNumber(row.Pick("+500", "500")),
		Rate1000:      excel.ToNumber(row.Pick("+1000", "1000")),
		Surcharge1000: excel.ToNumber(row.Pick("surcharge_1000", "surcharge1000")),

		Carrier:   optString(row.Pick("carrier")),
		Currency:  currencyOrDefault(row.Pick("currency")),
		ValidFrom: excel.ToDate(row.Pick("valid_from", "validFrom")),
		ValidTo:   excel.ToDate(row.Pick("valid_to", "validTo")),
		ETD:       optString(row.Pick("etd")),
		Agency:    optString(row.Pick("agency")),

		BatchID:   batchID,
		CreatedAt: now,
	}
	r.Fingerprint = rates.AirFingerprint(r)
	return r
}
