package repositories

import (
	"context"

	"github.com/easyfx/fx_backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency reference data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies known to the registry, active or not.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListActiveCurrencies retrieves only currencies flagged active.
	ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency reference data
type CurrencyWriter interface {
	// SaveCurrency persists a currency (insert or update of display metadata).
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
