package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/easyfx/fx_backend/internal/apperrors"
	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/easyfx/fx_backend/internal/core/services"
	"github.com/easyfx/fx_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type QuoteServiceTestSuite struct {
	suite.Suite
	quoteRepo   *MockQuoteRepository
	rateRepo    *MockRateRepository
	currencySvc *MockCurrencyService
	service     *services.QuoteService
	ctx         context.Context
	now         time.Time
}

func (s *QuoteServiceTestSuite) SetupTest() {
	s.quoteRepo = new(MockQuoteRepository)
	s.rateRepo = new(MockRateRepository)
	s.currencySvc = new(MockCurrencyService)
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	s.service = services.NewQuoteService(
		s.quoteRepo,
		s.rateRepo,
		s.currencySvc,
		60*time.Second,
		services.WithQuoteClock(func() time.Time { return s.now }),
	)
}

func (s *QuoteServiceTestSuite) expectCurrency(code string, currency *domain.Currency, err error) {
	s.currencySvc.On("GetCurrencyByCode", s.ctx, code).Return(currency, err)
}

func (s *QuoteServiceTestSuite) TestCreateQuote_Success() {
	s.expectCurrency("USD", activeCurrency("USD"), nil)
	s.expectCurrency("EUR", activeCurrency("EUR"), nil)
	s.rateRepo.On("FindRate", s.ctx, "USD", "EUR").Return(&domain.Rate{
		SourceCode: "USD",
		TargetCode: "EUR",
		Mean:       decimal.RequireFromString("0.92"),
	}, nil)
	s.quoteRepo.On("SaveQuote", s.ctx, mock.AnythingOfType("domain.Quote")).Return(nil)

	detail, err := s.service.CreateQuote(s.ctx, dto.CreateQuoteRequest{
		SourceCurrency: "USD",
		TargetCurrency: "EUR",
		Amount:         "100.50",
	})

	s.Require().NoError(err)
	s.Require().NotNil(detail)
	_, parseErr := uuid.Parse(detail.QuoteID)
	s.NoError(parseErr)
	s.Equal("USD", detail.SourceCurrencyCode)
	s.Equal("EUR", detail.TargetCurrencyCode)
	s.True(detail.Rate.Equal(decimal.RequireFromString("0.92")))
	s.True(detail.Result.Equal(decimal.RequireFromString("92.46")))
	s.Equal(s.now.Add(60*time.Second), detail.ExpirationTime)
	s.quoteRepo.AssertExpectations(s.T())
}

func (s *QuoteServiceTestSuite) TestCreateQuote_SameCurrency() {
	s.expectCurrency("USD", activeCurrency("USD"), nil)

	_, err := s.service.CreateQuote(s.ctx, dto.CreateQuoteRequest{
		SourceCurrency: "USD",
		TargetCurrency: "USD",
		Amount:         "100",
	})

	var fieldErrs apperrors.FieldErrors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Require().Len(fieldErrs, 1)
	s.Equal("target_currency", fieldErrs[0].Field)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.rateRepo.AssertNotCalled(s.T(), "FindRate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *QuoteServiceTestSuite) TestCreateQuote_UnknownCurrency() {
	s.expectCurrency("USD", activeCurrency("USD"), nil)
	s.expectCurrency("XXX", nil, fmt.Errorf("%w: currency XXX", apperrors.ErrNotFound))

	_, err := s.service.CreateQuote(s.ctx, dto.CreateQuoteRequest{
		SourceCurrency: "USD",
		TargetCurrency: "XXX",
		Amount:         "100",
	})

	var fieldErrs apperrors.FieldErrors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Require().Len(fieldErrs, 1)
	s.Equal("target_currency", fieldErrs[0].Field)
	s.Contains(fieldErrs[0].Message, "XXX")
}

func (s *QuoteServiceTestSuite) TestCreateQuote_InactiveCurrency() {
	inactive := activeCurrency("GBP")
	inactive.Active = false
	s.expectCurrency("GBP", inactive, nil)
	s.expectCurrency("EUR", activeCurrency("EUR"), nil)

	_, err := s.service.CreateQuote(s.ctx, dto.CreateQuoteRequest{
		SourceCurrency: "GBP",
		TargetCurrency: "EUR",
		Amount:         "50",
	})

	var fieldErrs apperrors.FieldErrors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Require().Len(fieldErrs, 1)
	s.Equal("source_currency", fieldErrs[0].Field)
	s.Contains(fieldErrs[0].Message, "not active")
}

func (s *QuoteServiceTestSuite) TestCreateQuote_InvalidAmounts() {
	testCases := []struct {
		name   string
		amount string
	}{
		{"not a number", "abc"},
		{"negative", "-5"},
		{"zero", "0"},
		{"too many decimal places", "1.234"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.expectCurrency("USD", activeCurrency("USD"), nil)
			s.expectCurrency("EUR", activeCurrency("EUR"), nil)

			_, err := s.service.CreateQuote(s.ctx, dto.CreateQuoteRequest{
				SourceCurrency: "USD",
				TargetCurrency: "EUR",
				Amount:         tc.amount,
			})

			var fieldErrs apperrors.FieldErrors
			s.Require().ErrorAs(err, &fieldErrs)
			s.Require().Len(fieldErrs, 1)
			s.Equal("amount", fieldErrs[0].Field)
			s.quoteRepo.AssertNotCalled(s.T(), "SaveQuote", mock.Anything, mock.Anything)
		})
	}
}

func (s *QuoteServiceTestSuite) TestCreateQuote_MissingRatePair() {
	s.expectCurrency("EUR", activeCurrency("EUR"), nil)
	s.expectCurrency("USD", activeCurrency("USD"), nil)
	s.rateRepo.On("FindRate", s.ctx, "EUR", "USD").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.CreateQuote(s.ctx, dto.CreateQuoteRequest{
		SourceCurrency: "EUR",
		TargetCurrency: "USD",
		Amount:         "10",
	})

	var fieldErrs apperrors.FieldErrors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Require().Len(fieldErrs, 1)
	s.Equal("target_currency", fieldErrs[0].Field)
	s.Contains(fieldErrs[0].Message, "EUR/USD")
	// The inverse pair must never be consulted.
	s.rateRepo.AssertNotCalled(s.T(), "FindRate", s.ctx, "USD", "EUR")
	s.quoteRepo.AssertNotCalled(s.T(), "SaveQuote", mock.Anything, mock.Anything)
}

func (s *QuoteServiceTestSuite) TestCreateQuote_LowercaseCodesResolved() {
	s.expectCurrency("usd", activeCurrency("USD"), nil)
	s.expectCurrency("eur", activeCurrency("EUR"), nil)
	s.rateRepo.On("FindRate", s.ctx, "USD", "EUR").Return(&domain.Rate{
		SourceCode: "USD",
		TargetCode: "EUR",
		Mean:       decimal.RequireFromString("0.9"),
	}, nil)
	s.quoteRepo.On("SaveQuote", s.ctx, mock.AnythingOfType("domain.Quote")).Return(nil)

	detail, err := s.service.CreateQuote(s.ctx, dto.CreateQuoteRequest{
		SourceCurrency: "usd",
		TargetCurrency: "eur",
		Amount:         "10",
	})

	s.Require().NoError(err)
	s.Equal("USD", detail.SourceCurrencyCode)
	s.Equal("EUR", detail.TargetCurrencyCode)
}

func (s *QuoteServiceTestSuite) TestGetQuote_NotFound() {
	quoteID := uuid.NewString()
	s.quoteRepo.On("FindQuoteByID", s.ctx, quoteID).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.GetQuote(s.ctx, quoteID)

	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *QuoteServiceTestSuite) TestGetQuote_Expired() {
	quoteID := uuid.NewString()
	s.quoteRepo.On("FindQuoteByID", s.ctx, quoteID).Return(&domain.Quote{
		QuoteID:            quoteID,
		SourceCurrencyCode: "USD",
		TargetCurrencyCode: "EUR",
		ExpirationTime:     s.now.Add(-time.Second),
	}, nil)

	_, err := s.service.GetQuote(s.ctx, quoteID)

	s.True(errors.Is(err, apperrors.ErrExpired))
	s.currencySvc.AssertNotCalled(s.T(), "GetCurrencyByCode", mock.Anything, mock.Anything)
}

func (s *QuoteServiceTestSuite) TestGetQuote_WithinValidity() {
	quoteID := uuid.NewString()
	s.quoteRepo.On("FindQuoteByID", s.ctx, quoteID).Return(&domain.Quote{
		QuoteID:            quoteID,
		SourceCurrencyCode: "USD",
		TargetCurrencyCode: "EUR",
		Amount:             decimal.RequireFromString("100"),
		Rate:               decimal.RequireFromString("0.92"),
		Result:             decimal.RequireFromString("92"),
		ExpirationTime:     s.now.Add(time.Second),
	}, nil)
	s.expectCurrency("USD", activeCurrency("USD"), nil)
	s.expectCurrency("EUR", activeCurrency("EUR"), nil)

	detail, err := s.service.GetQuote(s.ctx, quoteID)

	s.Require().NoError(err)
	s.Equal(quoteID, detail.QuoteID)
	s.Equal("USD", detail.SourceCurrency.Code)
	s.Equal("EUR", detail.TargetCurrency.Code)
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
