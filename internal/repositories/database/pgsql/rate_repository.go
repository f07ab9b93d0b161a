package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/easyfx/fx_backend/internal/apperrors"
	"github.com/easyfx/fx_backend/internal/core/domain"
	portsrepo "github.com/easyfx/fx_backend/internal/core/ports/repositories"
	"github.com/easyfx/fx_backend/internal/models"
	"github.com/easyfx/fx_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateRepository implements the ports.RateRepositoryFacade interface using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new PgxRateRepository.
func newPgxRateRepository(pool *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

const rateColumns = `source_code, target_code, mean, buying, selling, last_updated`

func scanRate(row pgx.Row) (models.Rate, error) {
	var m models.Rate
	err := row.Scan(
		&m.SourceCode,
		&m.TargetCode,
		&m.Mean,
		&m.Buying,
		&m.Selling,
		&m.LastUpdated,
	)
	return m, err
}

// UpsertRate creates or fully overwrites the rate row for an ordered pair.
// Last write wins; all three numeric fields and the timestamp come from one
// provider response, so there is no read-modify-write race.
func (r *PgxRateRepository) UpsertRate(ctx context.Context, rate domain.Rate) error {
	sourceCode := strings.ToUpper(rate.SourceCode)
	targetCode := strings.ToUpper(rate.TargetCode)

	if sourceCode == targetCode {
		return fmt.Errorf("%w: source and target currencies cannot be the same", apperrors.ErrValidation)
	}

	modelRate := mapping.ToModelRate(rate)
	modelRate.SourceCode = sourceCode
	modelRate.TargetCode = targetCode

	query := `
		INSERT INTO rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (source_code, target_code) DO UPDATE SET
			mean = EXCLUDED.mean,
			buying = EXCLUDED.buying,
			selling = EXCLUDED.selling,
			last_updated = EXCLUDED.last_updated;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelRate.SourceCode,
		modelRate.TargetCode,
		modelRate.Mean,
		modelRate.Buying,
		modelRate.Selling,
		modelRate.LastUpdated,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert rate %s/%s: %w", sourceCode, targetCode, err)
	}
	return nil
}

// FindRate retrieves the rate for the exact ordered pair. No inversion fallback.
func (r *PgxRateRepository) FindRate(ctx context.Context, sourceCode, targetCode string) (*domain.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates WHERE source_code = $1 AND target_code = $2;`

	modelRate, err := scanRate(r.Pool.QueryRow(ctx, query, strings.ToUpper(sourceCode), strings.ToUpper(targetCode)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate %s/%s: %w", sourceCode, targetCode, err)
	}

	domainRate := mapping.ToDomainRate(modelRate)
	return &domainRate, nil
}

// ListRates retrieves every stored rate row ordered by pair.
func (r *PgxRateRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates ORDER BY source_code, target_code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rate, error) {
		return scanRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rates: %w", err)
	}

	return mapping.ToDomainRateSlice(modelRates), nil
}

// FindLatestRateUpdate returns the most recent last_updated across all rate
// rows, or nil when the table is empty. Feeds the refresh staleness check.
func (r *PgxRateRepository) FindLatestRateUpdate(ctx context.Context) (*time.Time, error) {
	var latest *time.Time
	err := r.Pool.QueryRow(ctx, `SELECT MAX(last_updated) FROM rates;`).Scan(&latest)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest rate update: %w", err)
	}
	return latest, nil
}
