package pgsql

import (
	portsrepo "github.com/easyfx/fx_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the concrete pgx repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		RateRepo:     newPgxRateRepository(dbPool),
		QuoteRepo:    newPgxQuoteRepository(dbPool),
	}
}
