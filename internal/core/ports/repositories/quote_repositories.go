package repositories

import (
	"context"

	"github.com/easyfx/fx_backend/internal/core/domain"
)

// QuoteReader defines read operations for quotes
type QuoteReader interface {
	// FindQuoteByID retrieves a quote by its UUID. Expiry is not evaluated here;
	// expired quote rows stay in place and are returned as stored.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)
}

// QuoteWriter defines write operations for quotes
type QuoteWriter interface {
	// SaveQuote persists a newly issued quote. Quotes are append-only.
	SaveQuote(ctx context.Context, quote domain.Quote) error
}

// QuoteRepositoryFacade combines all quote-related repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}
