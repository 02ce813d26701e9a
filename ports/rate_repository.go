package ports

import (
	"context"

	"ratehub/domain/rates"
)

// AirRateRepository persists air-cargo rate records.
// CreateMany inserts in one statement, silently discarding rows that
// collide on the fingerprint key, and reports the number inserted.
type AirRateRepository interface {
	Create(ctx context.Context, r *rates.AirRate) error
	CreateMany(ctx context.Context, rs []*rates.AirRate) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByBatch(ctx context.Context, batchID string) (int64, error)
	List(ctx context.Context, f rates.Filters) ([]*rates.AirRate, error)
	Count(ctx context.Context) (int64, error)
	DistinctLocations(ctx context.Context, q string, limit int) ([]string, error)
	DistinctPartners(ctx context.Context, q string, limit int) ([]string, error)
}

// SeaFclRateRepository persists full-container-load rate records.
type SeaFclRateRepository interface {
	Create(ctx context.Context, r *rates.SeaFclRate) error
	CreateMany(ctx context.Context, rs []*rates.SeaFclRate) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByBatch(ctx context.Context, batchID string) (int64, error)
	List(ctx context.Context, f rates.Filters) ([]*rates.SeaFclRate, error)
	Count(ctx context.Context) (int64, error)
	DistinctLocations(ctx context.Context, q string, limit int) ([]string, error)
	DistinctPartners(ctx context.Context, q string, limit int) ([]string, error)
}

// SeaLclRateRepository persists less-than-container-load rate records.
type SeaLclRateRepository interface {
	Create(ctx context.Context, r *rates.SeaLclRate) error
	CreateMany(ctx context.Context, rs []*rates.SeaLclRate) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByBatch(ctx context.Context, batchID string) (int64, error)
	List(ctx context.Context, f rates.Filters) ([]*rates.SeaLclRate, error)
	Count(ctx context.Context) (int64, error)
	DistinctLocations(ctx context.Context, q string, limit int) ([]string, error)
	DistinctPartners(ctx context.Context, q string, limit int) ([]string, error)
}

// BatchDeleter is the slice of the repositories batch reversion needs.
type BatchDeleter interface {
	DeleteByBatch(ctx context.Context, batchID string) (int64, error)
}

// RateRepositories bundles the three per-mode collections.
type RateRepositories struct {
	Air    AirRateRepository
	SeaFcl SeaFclRateRepository
	SeaLcl SeaLclRateRepository
}
