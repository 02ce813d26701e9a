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

// seaLclRateRepository implements the SeaLclRateRepository interface
type seaLclRateRepository struct {
	db *sqlx.DB
}

// NewSeaLclRateRepository creates a new LCL rate repository
func NewSeaLclRateRepository(db *sqlx.DB) ports.SeaLclRateRepository {
	return &seaLclRateRepository{db: db}
}

const seaLclColumns = `origin, destination, wm, min_charge, refund_freight,
	carrier, currency, valid_from, valid_to, transit_time, agency,
	fingerprint, batch_id, created_at`

// Create inserts a single LCL rate record
func (r *seaLclRateRepository) Create(ctx context.Context, rate *rates.SeaLclRate) error {
	query := `INSERT INTO sea_lcl_rates (` + seaLclColumns + `) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
	) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		rate.Origin, rate.Destination, rate.WM, rate.MinCharge, rate.RefundFreight,
		rate.Carrier, rate.Currency, rate.ValidFrom, rate.ValidTo,
		rate.TransitTime, rate.Agency,
		rate.Fingerprint, rate.BatchID, rate.CreatedAt,
	).Scan(&rate.ID)

	if err != nil {
		return translateError(err)
	}
	return nil
}

// CreateMany bulk-inserts LCL rate records, skipping fingerprint
// collisions, and returns the number actually inserted.
func (r *seaLclRateRepository) CreateMany(ctx context.Context, rs []*rates.SeaLclRate) (int64, error) {
	if len(rs) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO sea_lcl_rates (` + seaLclColumns + `) VALUES `)

	args := make([]interface{}, 0, len(rs)*14)
	for i, rate := range rs {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 14
		sb.WriteString("(")
		for j := 1; j <= 14; j++ {
			if j > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", base+j)
		}
		sb.WriteString(")")
		args = append(args,
			rate.Origin, rate.Destination, rate.WM, rate.MinCharge, rate.RefundFreight,
			rate.Carrier, rate.Currency, rate.ValidFrom, rate.ValidTo,
			rate.TransitTime, rate.Agency,
			rate.Fingerprint, rate.BatchID, rate.CreatedAt,
		)
	}
	sb.WriteString(" ON CONFLICT (fingerprint) DO NOTHING")

	result, err := r.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert LCL rates: %w", err)
	}
	return result.RowsAffected()
}

// DeleteByID removes one LCL rate record
func (r *seaLclRateRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sea_lcl_rates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete LCL rate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.New(errors.CodeNotFound, fmt.Sprintf("LCL rate not found: %d", id))
	}
	return nil
}

// DeleteByBatch removes all records created by one import invocation
func (r *seaLclRateRepository) DeleteByBatch(ctx context.Context, batchID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sea_lcl_rates WHERE batch_id = $1`, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete LCL rate batch: %w", err)
	}
	return result.RowsAffected()
}

// List returns filtered records up to the fetch cap, in insertion order.
func (r *seaLclRateRepository) List(ctx context.Context, f rates.Filters) ([]*rates.SeaLclRate, error) {
	query := `SELECT id, ` + seaLclColumns + ` FROM sea_lcl_rates
		WHERE origin ILIKE $1 AND destination ILIKE $2
		  AND ($3 = '' OR carrier ILIKE $4)
		  AND ($5::timestamptz IS NULL OR valid_to IS NULL OR valid_to >= $5)
		  AND ($6::timestamptz IS NULL OR valid_from IS NULL OR valid_from <= $6)
		ORDER BY id
		LIMIT $7`

	var out []*rates.SeaLclRate
	err := r.db.SelectContext(ctx, &out, query,
		containsPattern(f.Origin), containsPattern(f.Destination),
		f.Carrier, containsPattern(f.Carrier),
		f.ValidFrom, f.ValidTo, f.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list LCL rates: %w", err)
	}
	return out, nil
}

// Count returns the total number of stored LCL rate records
func (r *seaLclRateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sea_lcl_rates`); err != nil {
		return 0, fmt.Errorf("failed to count LCL rates: %w", err)
	}
	return count, nil
}

// DistinctLocations returns origin and destination codes matching a prefix
func (r *seaLclRateRepository) DistinctLocations(ctx context.Context, q string, limit int) ([]string, error) {
	query := `SELECT DISTINCT origin AS loc FROM sea_lcl_rates WHERE origin ILIKE $1
		UNION
		SELECT DISTINCT destination AS loc FROM sea_lcl_rates WHERE destination ILIKE $1
		ORDER BY loc
		LIMIT $2`

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, prefixPattern(q), limit); err != nil {
		return nil, fmt.Errorf("failed to list LCL locations: %w", err)
	}
	return out, nil
}

// DistinctPartners returns carrier and agency names matching a prefix
func (r *seaLclRateRepository) DistinctPartners(ctx context.Context, q string, limit int) ([]string, error) {
	query := `SELECT DISTINCT carrier AS partner FROM sea_lcl_rates WHERE carrier IS NOT NULL AND carrier ILIKE $1
		UNION
		SELECT DISTINCT agency AS partner FROM sea_lcl_rates WHERE agency IS NOT NULL AND agency ILIKE $1
		ORDER BY partner
		LIMIT $2`

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, prefixPattern(q), limit); err != nil {
		return nil, fmt.Errorf("failed to list LCL partners: %w", err)
	}
	return out, nil
}
