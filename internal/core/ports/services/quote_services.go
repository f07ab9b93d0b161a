package services

import (
	"context"

	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/easyfx/fx_backend/internal/dto"
)

// QuoteSvcFacade defines the quote issuance and lookup operations.
type QuoteSvcFacade interface {
	// CreateQuote validates the request, locks the current rate and persists a
	// new time-boxed quote. Validation failures return apperrors.FieldErrors.
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.QuoteDetail, error)

	// GetQuote retrieves a quote by id. Returns apperrors.ErrNotFound for an
	// unknown id and apperrors.ErrExpired for a known but expired quote.
	GetQuote(ctx context.Context, quoteID string) (*domain.QuoteDetail, error)
}
