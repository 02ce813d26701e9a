package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ratehub/adapters/excel"
	"ratehub/internal"
	"ratehub/internal/errors"
	"ratehub/internal/importer"
	"ratehub/ports"
)

// ImportService runs the ingestion pipeline for one uploaded workbook:
// scan, classify, map, fingerprint, load. The pipeline is linear and
// synchronous; concurrent uploads are independent and rely on the
// store's fingerprint uniqueness for correctness.
type ImportService struct {
	registry *importer.Registry
}

// NewImportService creates the import service over the rate stores.
func NewImportService(repos ports.RateRepositories, bulkThreshold int) *ImportService {
	return &ImportService{
		registry: importer.NewRegistry(repos, bulkThreshold),
	}
}

// Import decodes the workbook buffer and loads it under the given batch
// tag. When no tag is supplied a fresh one is generated so the whole
// invocation stays revertible as a unit.
func (s *ImportService) Import(ctx context.Context, data []byte, batchID string) (*importer.Result, error) {
	started := time.Now()

	if len(data) == 0 {
		return nil, errors.InvalidInput("empty workbook buffer")
	}

	wb, err := excel.ReadWorkbook(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode workbook")
	}

	if batchID == "" {
		batchID = uuid.NewString()
	}

	result, err := s.registry.Run(ctx, wb, batchID)
	if err != nil {
		internal.DefaultLogger.Error("[Import] ERR %v (ms=%d)", err, time.Since(started).Milliseconds())
		return nil, err
	}

	internal.DefaultLogger.Info("[Import] OK importer=%s sheet=%q totalRows=%d inserted=%d skipped=%d ms=%d",
		result.Importer, result.Sheet, result.TotalRows, result.Inserted, result.Skipped,
		time.Since(started).Milliseconds())

	return result, nil
}
