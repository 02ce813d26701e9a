package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"ratehub/domain/rates"
	"ratehub/internal/errors"
	"ratehub/ports"
)

// seaFclRateRepository implements the SeaFclRateRepository interface
type seaFclRateRepository struct {
	db *sqlx.DB
}

// NewSeaFclRateRepository creates a new FCL rate repository
func NewSeaFclRateRepository(db *sqlx.DB) ports.SeaFclRateRepository {
	return &seaFclRateRepository{db: db}
}

const seaFclColumns = `origin, destination, rate20gp, rate40gp, rate40hc, rate20rf, rate40rf,
	carrier, currency, valid_from, valid_to, transit_time, etd, agency,
	fingerprint, batch_id, created_at`

// Create inserts a single FCL rate record
func (r *seaFclRateRepository) Create(ctx context.Context, rate *rates.SeaFclRate) error {
	query := `INSERT INTO sea_fcl_rates (` + seaFclColumns + `) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
	) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		rate.Origin, rate.Destination, rate.Rate20GP, rate.Rate40GP, rate.Rate40HC,
		rate.Rate20RF, rate.Rate40RF, rate.Carrier, rate.Currency,
		rate.ValidFrom, rate.ValidTo, rate.TransitTime, rate.ETD, rate.Agency,
		rate.Fingerprint, rate.BatchID, rate.CreatedAt,
	).Scan(&rate.ID)

	if err != nil {
		return translateError(err)
	}
	return nil
}

// CreateMany bulk-inserts FCL rate records, skipping fingerprint
// collisions, and returns the number actually inserted.
func (r *seaFclRateRepository) CreateMany(ctx context.Context, rs []*rates.SeaFclRate) (int64, error) {
	if len(rs) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO sea_fcl_rates (` + seaFclColumns + `) VALUES `)

	args := make([]interface{}, 0, len(rs)*17)
	for i, rate := range rs {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 17
		sb.WriteString("(")
		for j := 1; j <= 17; j++ {
			if j > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", base+j)
		}
		sb.WriteString(")")
		args = append(args,
			rate.Origin, rate.Destination, rate.Rate20GP, rate.Rate40GP, rate.Rate40HC,
			rate.Rate20RF, rate.Rate40RF, rate.Carrier, rate.Currency,
			rate.ValidFrom, rate.ValidTo, rate.TransitTime, rate.ETD, rate.Agency,
			rate.Fingerprint, rate.BatchID, rate.CreatedAt,
		)
	}
	sb.WriteString(" ON CONFLICT (fingerprint) DO NOTHING")

	result, err := r.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert FCL rates: %w", err)
	}
	return result.RowsAffected()
}

// DeleteByID removes one FCL rate record
func (r *seaFclRateRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sea_fcl_rates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete FCL rate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.New(errors.CodeNotFound, fmt.Sprintf("FCL rate not found: %d", id))
	}
	return nil
}

// DeleteByBatch removes all records created by one import invocation
func (r *seaFclRateRepository) DeleteByBatch(ctx context.Context, batchID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sea_fcl_rates WHERE batch_id = $1`, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete FCL rate batch: %w", err)
	}
	return result.RowsAffected()
}

// List returns filtered records up to the fetch cap, in insertion order.
func (r *seaFclRateRepository) List(ctx context.Context, f rates.Filters) ([]*rates.SeaFclRate, error) {
	query := `SELECT id, ` + seaFclColumns + ` FROM sea_fcl_rates
		WHERE origin ILIKE $1 AND destination ILIKE $2
		  AND ($3 = '' OR carrier ILIKE $4)
		  AND ($5::timestamptz IS NULL OR valid_to IS NULL OR valid_to >= $5)
		  AND ($6::timestamptz IS NULL OR valid_from IS NULL OR valid_from <= $6)
		ORDER BY id
		LIMIT $7`

	var out []*rates.SeaFclRate
	err := r.db.SelectContext(ctx, &out, query,
		containsPattern(f.Origin), containsPattern(f.Destination),
		f.Carrier, containsPattern(f.Carrier),
		f.ValidFrom, f.ValidTo, f.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list FCL rates: %w", err)
	}
	return out, nil
}

// Count returns the total number of stored FCL rate records
func (r *seaFclRateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sea_fcl_rates`); err != nil {
		return 0, fmt.Errorf("failed to count FCL rates: %w", err)
	}
	return count, nil
}

// DistinctLocations returns origin and destination codes matching a prefix
func (r *seaFclRateRepository) DistinctLocations(ctx context.Context, q string, limit int) ([]string, error) {
	query := `SELECT DISTINCT origin AS loc FROM sea_fcl_rates WHERE origin ILIKE $1
		UNION
		SELECT DISTINCT destination AS loc FROM sea_fcl_rates WHERE destination ILIKE $1
		ORDER BY loc
		LIMIT $2`

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, prefixPattern(q), limit); err != nil {
		return nil, fmt.Errorf("failed to list FCL locations: %w", err)
	}
	return out, nil
}

// DistinctPartners returns carrier and agency names matching a prefix
func (r *seaFclRateRepository) DistinctPartners(ctx context.Context, q string, limit int) ([]string, error) {
	query := `SELECT DISTINCT carrier AS partner FROM sea_fcl_rates WHERE carrier IS NOT NULL AND carrier ILIKE $1
		UNION
		SELECT DISTINCT agency AS partner FROM sea_fcl_rates WHERE agency IS NOT NULL AND agency ILIKE $1
		ORDER BY partner
		LIMIT $2`

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, prefixPattern(q), limit); err != nil {
		return nil, fmt.Errorf("failed to list FCL partners: %w", err)
	}
	return out, nil
}
