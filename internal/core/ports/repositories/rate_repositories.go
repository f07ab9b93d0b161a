package repositories

import (
	"context"
	"time"

	"github.com/easyfx/fx_backend/internal/core/domain"
)

// RateReader defines read operations for exchange rate data
type RateReader interface {
	// FindRate retrieves the rate for the exact ordered currency pair.
	// There is no inversion fallback: (target, source) is a different row.
	FindRate(ctx context.Context, sourceCode, targetCode string) (*domain.Rate, error)

	// ListRates retrieves every stored rate row.
	ListRates(ctx context.Context) ([]domain.Rate, error)

	// FindLatestRateUpdate returns the most recent last_updated timestamp
	// across all rate rows, or nil when no rates exist yet.
	FindLatestRateUpdate(ctx context.Context) (*time.Time, error)
}

// RateWriter defines write operations for exchange rate data
type RateWriter interface {
	// UpsertRate creates the rate row for the pair or overwrites
	// mean/buying/selling/last_updated if it already exists.
	UpsertRate(ctx context.Context, rate domain.Rate) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
