package services_test

import (
	"context"
	"time"

	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/easyfx/fx_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindRate(ctx context.Context, sourceCode, targetCode string) (*domain.Rate, error) {
	args := m.Called(ctx, sourceCode, targetCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepository) FindLatestRateUpdate(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockRateRepository) UpsertRate(ctx context.Context, rate domain.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// --- Mock RatesProvider ---
type MockRatesProvider struct {
	mock.Mock
}

func (m *MockRatesProvider) FetchRates(ctx context.Context, base string, symbols []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, base, symbols)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockRatesProvider) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// activeCurrency builds a minimal active currency for tests.
func activeCurrency(code string) *domain.Currency {
	return &domain.Currency{
		Code:               code,
		Name:               code,
		Symbol:             code,
		DecimalPlaces:      2,
		SymbolPosition:     domain.SymbolBefore,
		ThousandsSeparator: ",",
		DecimalSeparator:   ".",
		Active:             true,
	}
}
