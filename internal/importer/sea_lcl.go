package importer

import (
	"context"
	"strings"
	"time"

	"ratehub/adapters/excel"
	"ratehub/domain/rates"
	"ratehub/internal/errors"
	"ratehub/ports"
)

var seaLclWeights = map[string]int{
	"origin_port_code":      3,
	"destination_port_code": 3,
	"w_m":                   2,
	"min_charge":            2,
	"refund_freight":        2,
}

var seaLclAnchor = []string{"origin_port_code", "destination_port_code"}

// airTierMarkers veto an LCL classification whose anchored header row
// also carries air-only weight-tier columns. A sheet like that is an AIR
// export that happened to score as LCL; choosing the second-best schema
// silently would load it into the wrong collection.
var airTierMarkers = []string{"+45", "+100", "+1000"}

type seaLclImporter struct {
	repo          ports.SeaLclRateRepository
	bulkThreshold int
}

// NewSeaLclImporter builds the SEA_LCL schema importer.
func NewSeaLclImporter(repo ports.SeaLclRateRepository, bulkThreshold int) Importer {
	return &seaLclImporter{repo: repo, bulkThreshold: bulkThreshold}
}

func (imp *seaLclImporter) ID() string       { return "seaLcl" }
func (imp *seaLclImporter) Mode() rates.Mode { return rates.ModeSeaLCL }

func (imp *seaLclImporter) Score(headers []string) int {
	return scoreHeaders(headers, seaLclWeights)
}

func (imp *seaLclImporter) Run(ctx context.Context, wb *excel.Workbook, batchID string) (*Result, error) {
	sheet, grid, headerRow, ok := wb.FindSheetWithHeader(seaLclAnchor)
	if !ok {
		return nil, anchorError("SEA_LCL")
	}

	table := excel.TableAt(grid, headerRow)
	for _, h := range table.Headers {
		folded := excel.Norm(h)
		for _, marker := range airTierMarkers {
			if folded == marker {
				return nil, errors.ImportNoMatch("SEA_LCL: header detected as AIR (has +45/+100/+1000)")
			}
		}
	}

	now := time.Now().UTC()
	records := make([]*rates.SeaLclRate, 0, len(table.Rows))
	for _, row := range table.Rows {
		if r := mapSeaLclRow(row, batchID, now); r != nil {
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

func mapSeaLclRow(row excel.Row, batchID string, now time.Time) *rates.SeaLclRate {
	origin := strings.TrimSpace(row.Pick("origin_port_code"))
	destination := strings.TrimSpace(row.Pick("destination_port_code"))
	if origin == "" || destination == "" {
		return nil
	}

	r := &rates.SeaLclRate{
		Origin:      origin,
		Destination: destination,

		WM:            excel.ToNumber(row.Pick("w_m", "wm")),
		MinCharge:     excel.ToNumber(row.Pick("min_charge", "mincharge")),
		RefundFreight: excel.ToNumber(row.Pick("refund_freight", "refundfreight")),

		Carrier:     optString(row.Pick("carrier")),
		Currency:    currencyOrDefault(row.Pick("currency")),
		ValidFrom:   excel.ToDate(row.Pick("valid_from", "validFrom")),
		ValidTo:     excel.ToDate(row.Pick("valid_to", "validTo")),
		TransitTime: optString(row.Pick("transit_time", "transitTime")),
		Agency:      optString(row.Pick("agency")),

		BatchID:   batchID,
		CreatedAt: now,
	}
	r.Fingerprint = rates.SeaLclFingerprint(r)
	return r
}
