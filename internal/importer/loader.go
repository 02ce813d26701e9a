package importer

import (
	"context"

	"ratehub/internal"
	"ratehub/internal/errors"
)

// InsertIgnoreDuplicates persists a mapped batch, preferring one bulk
// insert that skips fingerprint collisions and falling back to row-by-row
// insertion for the entire batch when the bulk attempt fails for any
// reason. The downgrade happens at most once per batch; there is no retry.
//
// Bulk mode cannot distinguish rows skipped as duplicates from rows
// skipped for other reasons, so it reports skipped=0. This is an accepted
// limitation of the store's skip-duplicates option.
func InsertIgnoreDuplicates[T any](
	ctx context.Context,
	rows []T,
	bulkThreshold int,
	createOne func(context.Context, T) error,
	createMany func(context.Context, []T) (int64, error),
) (inserted, skipped int, err error) {
	if len(rows) == 0 {
		return 0, 0, nil
	}

	if createMany != nil && len(rows) > bulkThreshold {
		count, bulkErr := createMany(ctx, rows)
		if bulkErr == nil {
			return int(count), 0, nil
		}
		internal.DefaultLogger.Warn("[DB] bulk insert failed, falling back to row-by-row: %v", bulkErr)
	}

	for _, row := range rows {
		if insErr := createOne(ctx, row); insErr != nil {
			if errors.IsDuplicateKey(insErr) {
				skipped++
				continue
			}
			// Non-duplicate failure aborts the remainder of the batch;
			// rows already inserted are not rolled back.
			return inserted, skipped, errors.Wrap(insErr, "row insert failed")
		}
		inserted++
	}

	return inserted, skipped, nil
}
