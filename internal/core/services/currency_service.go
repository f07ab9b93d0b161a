package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/easyfx/fx_backend/internal/core/domain"
	portsrepo "github.com/easyfx/fx_backend/internal/core/ports/repositories"
	portssvc "github.com/easyfx/fx_backend/internal/core/ports/services"
	"github.com/easyfx/fx_backend/internal/dto"
)

// CurrencyService provides access to the currency registry.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	now          func() time.Time
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		now:          time.Now,
	}
}

// CreateCurrency registers a new currency, applying the registry's display defaults.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	now := s.now()

	currency := domain.Currency{
		Code:               strings.ToUpper(req.Code),
		Name:               req.Name,
		Symbol:             req.Symbol,
		DecimalPlaces:      req.DecimalPlaces,
		SymbolPosition:     domain.SymbolPosition(req.SymbolPosition),
		ThousandsSeparator: req.ThousandsSeparator,
		DecimalSeparator:   req.DecimalSeparator,
		Active:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if currency.SymbolPosition == "" {
		currency.SymbolPosition = domain.SymbolBefore
	}
	if currency.ThousandsSeparator == "" {
		currency.ThousandsSeparator = ","
	}
	if currency.DecimalSeparator == "" {
		currency.DecimalSeparator = "."
	}
	if req.Active != nil {
		currency.Active = *req.Active
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByCode retrieves a currency, matching the code case-insensitively.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(strings.TrimSpace(currencyCode)))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies known to the registry.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// ListActiveCurrencies retrieves only currencies flagged active.
func (s *CurrencyService) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListActiveCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
