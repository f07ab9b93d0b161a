package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/easyfx/fx_backend/internal/apperrors"
	"github.com/easyfx/fx_backend/internal/core/domain"
	portsrepo "github.com/easyfx/fx_backend/internal/core/ports/repositories"
	"github.com/easyfx/fx_backend/internal/models"
	"github.com/easyfx/fx_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencyColumns = `code, name, symbol, decimal_places, symbol_position,
	thousands_separator, decimal_separator, active, created_at, updated_at`

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.Code,
		&m.Name,
		&m.Symbol,
		&m.DecimalPlaces,
		&m.SymbolPosition,
		&m.ThousandsSeparator,
		&m.DecimalSeparator,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveCurrency inserts or updates a currency. The code is the immutable key;
// only display metadata and the active flag are updated on conflict.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)
	modelCurr.Code = strings.ToUpper(modelCurr.Code)

	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			symbol = EXCLUDED.symbol,
			decimal_places = EXCLUDED.decimal_places,
			symbol_position = EXCLUDED.symbol_position,
			thousands_separator = EXCLUDED.thousands_separator,
			decimal_separator = EXCLUDED.decimal_separator,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.Code,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.DecimalPlaces,
		modelCurr.SymbolPosition,
		modelCurr.ThousandsSeparator,
		modelCurr.DecimalSeparator,
		modelCurr.Active,
		modelCurr.CreatedAt,
		modelCurr.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.Code, err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE code = $1;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, strings.ToUpper(currencyCode)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies, active or not.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.listCurrencies(ctx, `SELECT `+currencyColumns+` FROM currencies ORDER BY code;`)
}

// ListActiveCurrencies retrieves only currencies flagged active.
func (r *PgxCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.listCurrencies(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE active ORDER BY code;`)
}

func (r *PgxCurrencyRepository) listCurrencies(ctx context.Context, query string) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil
		}
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
