package app

import (
	"context"

	"ratehub/domain/rates"
	"ratehub/internal"
	"ratehub/internal/errors"
	"ratehub/ports"
)

// AdminService covers the destructive operations: removing a single
// record or everything loaded by one import invocation.
type AdminService struct {
	repos ports.RateRepositories
}

// NewAdminService creates the admin service.
func NewAdminService(repos ports.RateRepositories) *AdminService {
	return &AdminService{repos: repos}
}

// DeleteRate removes one record from the collection named by mode.
func (s *AdminService) DeleteRate(ctx context.Context, mode rates.Mode, id int64) error {
	var err error
	switch mode {
	case rates.ModeAir:
		err = s.repos.Air.DeleteByID(ctx, id)
	case rates.ModeSeaFCL:
		err = s.repos.SeaFcl.DeleteByID(ctx, id)
	case rates.ModeSeaLCL:
		err = s.repos.SeaLcl.DeleteByID(ctx, id)
	default:
		return errors.InvalidInput("unknown mode: " + mode.String())
	}
	if err != nil {
		return errors.Wrap(err, "delete failed")
	}

	internal.DefaultLogger.Info("[Admin] deleted %s rate id=%d", mode, id)
	return nil
}

// DeleteBatch reverts one import invocation. When mode is empty the
// batch tag is searched across all three collections, since the caller
// may not know which schema the workbook classified as.
func (s *AdminService) DeleteBatch(ctx context.Context, mode rates.Mode, batchID string) (int64, error) {
	if batchID == "" {
		return 0, errors.InvalidInput("batchId is required")
	}

	var total int64
	targets := []ports.BatchDeleter{s.repos.Air, s.repos.SeaFcl, s.repos.SeaLcl}
	switch mode {
	case rates.ModeAir:
		targets = []ports.BatchDeleter{s.repos.Air}
	case rates.ModeSeaFCL:
		targets = []ports.BatchDeleter{s.repos.SeaFcl}
	case rates.ModeSeaLCL:
		targets = []ports.BatchDeleter{s.repos.SeaLcl}
	}

	for _, repo := range targets {
		n, err := repo.DeleteByBatch(ctx, batchID)
		if err != nil {
			return total, errors.Wrap(err, "batch delete failed")
		}
		total += n
	}

	internal.DefaultLogger.Info("[Admin] deleted batch=%s mode=%s removed=%d", batchID, mode, total)
	return total, nil
}
