package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/easyfx/fx_backend/internal/apperrors"
	"github.com/easyfx/fx_backend/internal/core/domain"
	portsrepo "github.com/easyfx/fx_backend/internal/core/ports/repositories"
	"github.com/easyfx/fx_backend/internal/models"
	"github.com/easyfx/fx_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxQuoteRepository implements the ports.QuoteRepositoryFacade interface using pgxpool.
type PgxQuoteRepository struct {
	BaseRepository
}

// newPgxQuoteRepository creates a new PgxQuoteRepository.
func newPgxQuoteRepository(pool *pgxpool.Pool) *PgxQuoteRepository {
	return &PgxQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

const quoteColumns = `quote_id, source_currency_code, target_currency_code,
	amount, rate, result, time_created, time_updated, expiration_time`

// SaveQuote persists a newly issued quote. Quotes are append-only; this never
// updates an existing row.
func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	modelQuote := mapping.ToModelQuote(quote)

	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelQuote.QuoteID,
		modelQuote.SourceCurrencyCode,
		modelQuote.TargetCurrencyCode,
		modelQuote.Amount,
		modelQuote.Rate,
		modelQuote.Result,
		modelQuote.TimeCreated,
		modelQuote.TimeUpdated,
		modelQuote.ExpirationTime,
	)

	if err != nil {
		return fmt.Errorf("failed to save quote %s: %w", modelQuote.QuoteID, err)
	}
	return nil
}

// FindQuoteByID retrieves a quote by its UUID. Expired rows are returned as
// stored; expiry is a predicate evaluated by the service, not a deletion.
func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE quote_id = $1;`

	var m models.Quote
	err := r.Pool.QueryRow(ctx, query, quoteID).Scan(
		&m.QuoteID,
		&m.SourceCurrencyCode,
		&m.TargetCurrencyCode,
		&m.Amount,
		&m.Rate,
		&m.Result,
		&m.TimeCreated,
		&m.TimeUpdated,
		&m.ExpirationTime,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote by id %s: %w", quoteID, err)
	}

	domainQuote := mapping.ToDomainQuote(m)
	return &domainQuote, nil
}
