package services

import (
	"context"

	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/easyfx/fx_backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code (case-insensitive).
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies known to the registry.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListActiveCurrencies retrieves only currencies flagged active.
	ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
