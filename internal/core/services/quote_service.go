package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/easyfx/fx_backend/internal/apperrors"
	"github.com/easyfx/fx_backend/internal/core/domain"
	portsrepo "github.com/easyfx/fx_backend/internal/core/ports/repositories"
	portssvc "github.com/easyfx/fx_backend/internal/core/ports/services"
	"github.com/easyfx/fx_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxAmountDecimalPlaces is a business input constraint on the requested
// amount, not a storage constraint.
const maxAmountDecimalPlaces = 2

// QuoteService issues and retrieves time-boxed, rate-locked quotes.
type QuoteService struct {
	BaseService
	quoteRepo       portsrepo.QuoteRepositoryFacade
	rateRepo        portsrepo.RateReader
	currencyService portssvc.CurrencySvcFacade
	validity        time.Duration
	now             func() time.Time
}

var _ portssvc.QuoteSvcFacade = (*QuoteService)(nil)

// QuoteServiceOption configures a QuoteService.
type QuoteServiceOption func(*QuoteService)

// WithQuoteClock overrides the clock used for issuance and expiry checks.
func WithQuoteClock(now func() time.Time) QuoteServiceOption {
	return func(s *QuoteService) {
		s.now = now
	}
}

// NewQuoteService creates a new QuoteService. validity is the window during
// which an issued quote can be retrieved before it reports expired.
func NewQuoteService(
	quoteRepo portsrepo.QuoteRepositoryFacade,
	rateRepo portsrepo.RateReader,
	currencyService portssvc.CurrencySvcFacade,
	validity time.Duration,
	opts ...QuoteServiceOption,
) *QuoteService {
	s := &QuoteService{
		quoteRepo:       quoteRepo,
		rateRepo:        rateRepo,
		currencyService: currencyService,
		validity:        validity,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateQuote runs the ordered validation pipeline, locks the current mean
// rate for the pair and persists a new quote. All validation happens before
// any rate lookup or write.
func (s *QuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.QuoteDetail, error) {
	var fieldErrs apperrors.FieldErrors

	source, err := s.resolveActiveCurrency(ctx, req.SourceCurrency, "source_currency", &fieldErrs)
	if err != nil {
		return nil, err
	}
	target, err := s.resolveActiveCurrency(ctx, req.TargetCurrency, "target_currency", &fieldErrs)
	if err != nil {
		return nil, err
	}

	if source != nil && target != nil && source.Code == target.Code {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   "target_currency",
			Message: "source and target currencies must differ",
		})
	}

	amount := s.validateAmount(req.Amount, &fieldErrs)

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	rate, err := s.rateRepo.FindRate(ctx, source.Code, target.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldErrors("target_currency",
				fmt.Sprintf("no exchange rate available for pair %s/%s", source.Code, target.Code))
		}
		return nil, fmt.Errorf("failed to look up rate for quote: %w", err)
	}

	now := s.now()
	quote := domain.Quote{
		QuoteID:            uuid.NewString(),
		SourceCurrencyCode: source.Code,
		TargetCurrencyCode: target.Code,
		Amount:             amount,
		Rate:               rate.Mean,
		Result:             amount.Mul(rate.Mean),
		TimeCreated:        now,
		TimeUpdated:        now,
	}
	// Expiration is set exactly once, at first save, and never recomputed.
	if quote.ExpirationTime.IsZero() {
		quote.ExpirationTime = now.Add(s.validity)
	}

	if err := s.quoteRepo.SaveQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to save quote in service: %w", err)
	}

	s.LogInfo(ctx, "quote created",
		slog.String("quote_id", quote.QuoteID),
		slog.String("source_currency", source.Code),
		slog.String("target_currency", target.Code),
		slog.String("amount", amount.String()),
		slog.String("rate", rate.Mean.String()),
		slog.String("result", quote.Result.String()),
	)

	return &domain.QuoteDetail{
		Quote:          quote,
		SourceCurrency: *source,
		TargetCurrency: *target,
	}, nil
}

// GetQuote retrieves a quote by id, reporting expiry as a derived predicate.
// The quote row itself is left intact when expired.
func (s *QuoteService) GetQuote(ctx context.Context, quoteID string) (*domain.QuoteDetail, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: quote %s", apperrors.ErrNotFound, quoteID)
		}
		return nil, fmt.Errorf("failed to get quote in service: %w", err)
	}

	if quote.IsExpired(s.now()) {
		return nil, fmt.Errorf("%w: quote %s expired at %s",
			apperrors.ErrExpired, quoteID, quote.ExpirationTime.Format(time.RFC3339))
	}

	source, err := s.currencyService.GetCurrencyByCode(ctx, quote.SourceCurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load source currency for quote: %w", err)
	}
	target, err := s.currencyService.GetCurrencyByCode(ctx, quote.TargetCurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load target currency for quote: %w", err)
	}

	return &domain.QuoteDetail{
		Quote:          *quote,
		SourceCurrency: *source,
		TargetCurrency: *target,
	}, nil
}

// resolveActiveCurrency looks up a currency code case-insensitively and
// appends a field error when the code is unknown or inactive. Store failures
// are returned as errors and abort the pipeline.
func (s *QuoteService) resolveActiveCurrency(ctx context.Context, code, field string, fieldErrs *apperrors.FieldErrors) (*domain.Currency, error) {
	currency, err := s.currencyService.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			*fieldErrs = append(*fieldErrs, apperrors.FieldError{
				Field:   field,
				Message: fmt.Sprintf("unknown currency code %q", code),
			})
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve currency %q: %w", code, err)
	}
	if !currency.Active {
		*fieldErrs = append(*fieldErrs, apperrors.FieldError{
			Field:   field,
			Message: fmt.Sprintf("currency %q is not active", currency.Code),
		})
		return nil, nil
	}
	return currency, nil
}

// validateAmount parses the amount string and checks positivity and
// precision, appending field errors for each failure.
func (s *QuoteService) validateAmount(raw string, fieldErrs *apperrors.FieldErrors) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		*fieldErrs = append(*fieldErrs, apperrors.FieldError{
			Field:   "amount",
			Message: "amount must be a decimal number",
		})
		return decimal.Zero
	}
	if !amount.IsPositive() {
		*fieldErrs = append(*fieldErrs, apperrors.FieldError{
			Field:   "amount",
			Message: "amount must be positive",
		})
		return decimal.Zero
	}
	if amount.Exponent() < -maxAmountDecimalPlaces {
		*fieldErrs = append(*fieldErrs, apperrors.FieldError{
			Field:   "amount",
			Message: fmt.Sprintf("amount must have at most %d decimal places", maxAmountDecimalPlaces),
		})
		return decimal.Zero
	}
	return amount
}
