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

// airRateRepository implements the AirRateRepository interface
type airRateRepository struct {
	db *sqlx.DB
}

// NewAirRateRepository creates a new air rate repository
func NewAirRateRepository(db *sqlx.DB) ports.AirRateRepository {
	return &airRateRepository{db: db}
}

const airColumns = `origin, destination, min, rate45, rate100, rate300, rate500, rate1000,
	surcharge1000, carrier, currency, valid_from, valid_to, etd, agency,
	fingerprint, batch_id, created_at`

// Create inserts a single air rate record
func (r *airRateRepository) Create(ctx context.Context, rate *rates.AirRate) error {
	query := `INSERT INTO air_rates (` + airColumns + `) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
	) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		rate.Origin, rate.Destination, rate.Min, rate.Rate45, rate.Rate100, rate.Rate300,
		rate.Rate500, rate.Rate1000, rate.Surcharge1000, rate.Carrier, rate.Currency,
		rate.ValidFrom, rate.ValidTo, rate.ETD, rate.Agency,
		rate.Fingerprint, rate.BatchID, rate.CreatedAt,
	).Scan(&rate.ID)

	if err != nil {
		return translateError(err)
	}
	return nil
}

// CreateMany bulk-inserts air rate records, skipping fingerprint
// collisions, and returns the number actually inserted.
func (r *airRateRepository) CreateMany(ctx context.Context, rs []*rates.AirRate) (int64, error) {
	if len(rs) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO air_rates (` + airColumns + `) VALUES `)

	args := make([]interface{}, 0, len(rs)*18)
	for i, rate := range rs {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 18
		sb.WriteString("(")
		for j := 1; j <= 18; j++ {
			if j > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", base+j)
		}
		sb.WriteString(")")
		args = append(args,
			rate.Origin, rate.Destination, rate.Min, rate.Rate45, rate.Rate100, rate.Rate300,
			rate.Rate500, rate.Rate1000, rate.Surcharge1000, rate.Carrier, rate.Currency,
			rate.ValidFrom, rate.ValidTo, rate.ETD, rate.Agency,
			rate.Fingerprint, rate.BatchID, rate.CreatedAt,
		)
	}
	sb.WriteString(" ON CONFLICT (fingerprint) DO NOTHING")

	result, err := r.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert air rates: %w", err)
	}
	return result.RowsAffected()
}

// DeleteByID removes one air rate record
func (r *airRateRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM air_rates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete air rate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.New(errors.CodeNotFound, fmt.Sprintf("air rate not found: %d", id))
	}
	return nil
}

// DeleteByBatch removes all records created by one import invocation
func (r *airRateRepository) DeleteByBatch(ctx context.Context, batchID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM air_rates WHERE batch_id = $1`, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete air rate batch: %w", err)
	}
	return result.RowsAffected()
}

// List returns filtered records up to the fetch cap, in insertion order.
// Sorting and pagination happen in the query engine, not here.
func (r *airRateRepository) List(ctx context.Context, f rates.Filters) ([]*rates.AirRate, error) {
	query := `SELECT id, ` + airColumns + ` FROM air_rates
		WHERE origin ILIKE $1 AND destination ILIKE $2
		  AND ($3 = '' OR carrier ILIKE $4)
		  AND ($5::timestamptz IS NULL OR valid_to IS NULL OR valid_to >= $5)
		  AND ($6::timestamptz IS NULL OR valid_from IS NULL OR valid_from <= $6)
		ORDER BY id
		LIMIT $7`

	var out []*rates.AirRate
	err := r.db.SelectContext(ctx, &out, query,
		containsPattern(f.Origin), containsPattern(f.Destination),
		f.Carrier, containsPattern(f.Carrier),
		f.ValidFrom, f.ValidTo, f.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list air rates: %w", err)
	}
	return out, nil
}

// Count returns the total number of stored air rate records
func (r *airRateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM air_rates`); err != nil {
		return 0, fmt.Errorf("failed to count air rates: %w", err)
	}
	return count, nil
}

// DistinctLocations returns origin and destination codes matching a prefix
func (r *airRateRepository) DistinctLocations(ctx context.Context, q string, limit int) ([]string, error) {
	query := `SELECT DISTINCT origin AS loc FROM air_rates WHERE origin ILIKE $1
		UNION
		SELECT DISTINCT destination AS loc FROM air_rates WHERE destination ILIKE $1
		ORDER BY loc
		LIMIT $2`

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, prefixPattern(q), limit); err != nil {
		return nil, fmt.Errorf("failed to list air locations: %w", err)
	}
	return out, nil
}

// DistinctPartners returns carrier and agency names matching a prefix
func (r *airRateRepository) DistinctPartners(ctx context.Context, q string, limit int) ([]string, error) {
	query := `SELECT DISTINCT carrier AS partner FROM air_rates WHERE carrier IS NOT NULL AND carrier ILIKE $1
		UNION
		SELECT DISTINCT agency AS partner FROM air_rates WHERE agency IS NOT NULL AND agency ILIKE $1
		ORDER BY partner
		LIMIT $2`

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, prefixPattern(q), limit); err != nil {
		return nil, fmt.Errorf("failed to list air partners: %w", err)
	}
	return out, nil
}
