package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ratehub/internal/errors"
)

func buildFclWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"origin", "destination", "rate_20gp", "rate_40gp", "rate_40hc"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestImport_EmptyBuffer(t *testing.T) {
	svc := NewImportService(stubRepos(nil, nil, nil), 10)

	_, err := svc.Import(context.Background(), nil, "")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestImport_NotAWorkbook(t *testing.T) {
	svc := NewImportService(stubRepos(nil, nil, nil), 10)

	_, err := svc.Import(context.Background(), []byte("not an xlsx"), "")
	require.Error(t, err)
}

func TestImport_EndToEndFcl(t *testing.T) {
	data := buildFclWorkbook(t, [][]interface{}{
		{"CNSHA", "USLAX", 1500, 2800, 2900},
		{"CNNGB", "USLGB", 1450, 2700, 2750},
		{"", "USOAK", 1400, 2600, 2650}, // dropped: no origin
	})

	svc := NewImportService(stubRepos(nil, &stubSeaFclRepo{}, nil), 10)

	result, err := svc.Import(context.Background(), data, "batch-7")
	require.NoError(t, err)

	assert.Equal(t, "seaFcl", result.Importer)
	assert.Equal(t, "Sheet1", result.Sheet)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.Inserted)
	assert.Zero(t, result.Skipped)
	assert.Equal(t, "batch-7", result.BatchID)
}

func TestImport_GeneratesBatchID(t *testing.T) {
	data := buildFclWorkbook(t, [][]interface{}{
		{"CNSHA", "USLAX", 1500, 2800, 2900},
	})

	svc := NewImportService(stubRepos(nil, &stubSeaFclRepo{}, nil), 10)

	result, err := svc.Import(context.Background(), data, "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.BatchID)
}

func TestImport_DuplicatesSkipped(t *testing.T) {
	data := buildFclWorkbook(t, [][]interface{}{
		{"CNSHA", "USLAX", 1500, 2800, 2900},
		{"CNNGB", "USLGB", 1450, 2700, 2750},
	})

	// Every row collides on the fingerprint key.
	svc := NewImportService(stubRepos(nil, &stubSeaFclRepo{err: errors.DuplicateKey(nil)}, nil), 10)

	result, err := svc.Import(context.Background(), data, "batch-7")
	require.NoError(t, err)
	assert.Zero(t, result.Inserted)
	assert.Equal(t, 2, result.Skipped)
}
