package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratehub/adapters/excel"
	"ratehub/internal/errors"
	"ratehub/ports"
)

func TestScoreHeaders(t *testing.T) {
	weights := map[string]int{
		"origin":    2,
		"rate_20gp": 3,
	}

	tests := []struct {
		name    string
		headers []string
		want    int
	}{
		{"exact", []string{"origin", "rate_20gp"}, 5},
		{"containment and case", []string{" ORIGIN_PORT ", "Rate_20GP "}, 5},
		{"keyword counted once", []string{"origin", "origin_city", "origin_code"}, 2},
		{"no match", []string{"foo", "bar"}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreHeaders(tt.headers, weights))
		})
	}
}

func singleSheet(name string, grid [][]string) *excel.Workbook {
	return &excel.Workbook{
		SheetNames: []string{name},
		Sheets:     map[string][][]string{name: grid},
	}
}

func testRegistry() *Registry {
	return NewRegistry(ports.RateRepositories{}, 10)
}

func TestClassify_PicksSeaFcl(t *testing.T) {
	wb := singleSheet("Rates", [][]string{
		{"Origin", "Destination", "Rate_20GP", "Rate_40GP", "Rate_40HC"},
		{"CNSHA", "USLAX", "1500", "2800", "2900"},
	})

	best := testRegistry().classify(wb)
	require.NotNil(t, best)
	assert.Equal(t, "seaFcl", best.importer.ID())
	assert.Equal(t, "Rates", best.sheet)
	assert.Equal(t, 0, best.row)
	assert.Equal(t, 13, best.score)
}

func TestClassify_PicksAirOverLcl(t *testing.T) {
	// The shared origin/destination columns score for LCL too, but the
	// weight-tier columns push AIR ahead.
	wb := singleSheet("Air", [][]string{
		{"Origin_Port_Code", "Destination_Port_Code", "MIN", "+45", "+100", "+1000"},
		{"PVG", "LAX", "80", "6.1", "5.2", "4.0"},
	})

	best := testRegistry().classify(wb)
	require.NotNil(t, best)
	assert.Equal(t, "air", best.importer.ID())
}

func TestRegistryRun_NoMatch(t *testing.T) {
	wb := singleSheet("Junk", [][]string{
		{"alpha", "beta"},
		{"1", "2"},
	})

	_, err := testRegistry().Run(context.Background(), wb, "batch-1")
	require.Error(t, err)
	assert.Equal(t, errors.CodeImportNoMatch, errors.GetCode(err))
}

func TestSeaLclRun_RejectsAirShapedHeader(t *testing.T) {
	// A sheet carrying the LCL anchor plus air weight tiers is an AIR
	// export; loading it as LCL must fail loudly, not fall through.
	wb := singleSheet("Sheet1", [][]string{
		{"Origin_Port_Code", "Destination_Port_Code", "+45", "+100", "+1000"},
		{"PVG", "LAX", "6.1", "5.2", "4.0"},
	})

	imp := NewSeaLclImporter(nil, 10)
	_, err := imp.Run(context.Background(), wb, "batch-1")
	require.Error(t, err)
	assert.Equal(t, errors.CodeImportNoMatch, errors.GetCode(err))
	assert.Contains(t, err.Error(), "AIR")
}

func TestAirRun_AnchorMissing(t *testing.T) {
	// Winning the scoring pass is not enough; the exact anchor columns
	// must exist before any row is mapped.
	wb := singleSheet("Sheet1", [][]string{
		{"origin_port", "destination_port", "+45"},
	})

	imp := NewAirImporter(nil, 10)
	_, err := imp.Run(context.Background(), wb, "batch-1")
	require.Error(t, err)
	assert.Equal(t, errors.CodeImportNoMatch, errors.GetCode(err))
}
