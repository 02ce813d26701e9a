package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"ratehub/internal/errors"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createAirRatesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create air_rates table")
	}

	if err := r.createSeaFclRatesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create sea_fcl_rates table")
	}

	if err := r.createSeaLclRatesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create sea_lcl_rates table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createAirRatesTable(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS air_rates (
		id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		min DOUBLE PRECISION,
		rate45 DOUBLE PRECISION,
		rate100 DOUBLE PRECISION,
		rate300 DOUBLE PRECISION,
		rate500 DOUBLE PRECISION,
		rate1000 DOUBLE PRECISION,
		surcharge1000 DOUBLE PRECISION,
		carrier TEXT,
		currency TEXT NOT NULL DEFAULT 'USD',
		valid_from TIMESTAMPTZ,
		valid_to TIMESTAMPTZ,
		etd TEXT,
		agency TEXT,
		fingerprint TEXT NOT NULL,
		batch_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createSeaFclRatesTable(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS sea_fcl_rates (
		id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		rate20gp DOUBLE PRECISION,
		rate40gp DOUBLE PRECISION,
		rate40hc DOUBLE PRECISION,
		rate20rf DOUBLE PRECISION,
		rate40rf DOUBLE PRECISION,
		carrier TEXT,
		currency TEXT NOT NULL DEFAULT 'USD',
		valid_from TIMESTAMPTZ,
		valid_to TIMESTAMPTZ,
		transit_time TEXT,
		etd TEXT,
		agency TEXT,
		fingerprint TEXT NOT NULL,
		batch_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createSeaLclRatesTable(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS sea_lcl_rates (
		id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		wm DOUBLE PRECISION,
		min_charge DOUBLE PRECISION,
		refund_freight DOUBLE PRECISION,
		carrier TEXT,
		currency TEXT NOT NULL DEFAULT 'USD',
		valid_from TIMESTAMPTZ,
		valid_to TIMESTAMPTZ,
		transit_time TEXT,
		agency TEXT,
		fingerprint TEXT NOT NULL,
		batch_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	_, err := db.ExecContext(ctx, query)
	return err
}

// createIndexes enforces fingerprint uniqueness per collection and keys
// batch deletion. The unique indexes are load-bearing: they are what
// makes concurrent imports of overlapping data safe.
func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_air_rates_fingerprint ON air_rates (fingerprint)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sea_fcl_rates_fingerprint ON sea_fcl_rates (fingerprint)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sea_lcl_rates_fingerprint ON sea_lcl_rates (fingerprint)`,
		`CREATE INDEX IF NOT EXISTS idx_air_rates_batch ON air_rates (batch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sea_fcl_rates_batch ON sea_fcl_rates (batch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sea_lcl_rates_batch ON sea_lcl_rates (batch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_air_rates_lane ON air_rates (origin, destination)`,
		`CREATE INDEX IF NOT EXISTS idx_sea_fcl_rates_lane ON sea_fcl_rates (origin, destination)`,
		`CREATE INDEX IF NOT EXISTS idx_sea_lcl_rates_lane ON sea_lcl_rates (origin, destination)`,
	}

	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}
