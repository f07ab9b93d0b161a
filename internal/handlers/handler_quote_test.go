package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/easyfx/fx_backend/internal/apperrors"
	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/easyfx/fx_backend/internal/dto"
	"github.com/easyfx/fx_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*domain.QuoteDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteDetail), args.Error(1)
}

func (m *MockQuoteService) GetQuote(ctx context.Context, quoteID string) (*domain.QuoteDetail, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteDetail), args.Error(1)
}

type QuoteHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockQuoteService *MockQuoteService
}

func (suite *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.mockQuoteService = new(MockQuoteService)
	suite.router = gin.New()

	noLimit := func(c *gin.Context) { c.Next() }
	fx := suite.router.Group("/fx")
	handlers.RegisterQuoteRoutes(fx, suite.mockQuoteService, noLimit)
}

func (suite *QuoteHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func quoteDetail(quoteID string) *domain.QuoteDetail {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return &domain.QuoteDetail{
		Quote: domain.Quote{
			QuoteID:            quoteID,
			SourceCurrencyCode: "USD",
			TargetCurrencyCode: "EUR",
			Amount:             decimal.RequireFromString("100.50"),
			Rate:               decimal.RequireFromString("0.92"),
			Result:             decimal.RequireFromString("92.46"),
			TimeCreated:        now,
			TimeUpdated:        now,
			ExpirationTime:     now.Add(60 * time.Second),
		},
		SourceCurrency: domain.Currency{Code: "USD", Name: "US Dollar", Symbol: "$", DecimalPlaces: 2, Active: true},
		TargetCurrency: domain.Currency{Code: "EUR", Name: "Euro", Symbol: "€", DecimalPlaces: 2, Active: true},
	}
}

func (suite *QuoteHandlerTestSuite) TestCreateQuote_Success() {
	reqBody := dto.CreateQuoteRequest{SourceCurrency: "USD", TargetCurrency: "EUR", Amount: "100.50"}
	detail := quoteDetail(uuid.NewString())
	suite.mockQuoteService.On("CreateQuote", mock.Anything, reqBody).Return(detail, nil)

	w := suite.performRequest(http.MethodPost, "/fx/", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(detail.QuoteID, resp.QuoteID)
	suite.Equal("USD", resp.SourceCurrency.Code)
	suite.Equal("EUR", resp.TargetCurrency.Code)
	suite.True(resp.Result.Equal(decimal.RequireFromString("92.46")))
	suite.mockQuoteService.AssertExpectations(suite.T())
}

func (suite *QuoteHandlerTestSuite) TestCreateQuote_BindingValidationFailure() {
	// 4-letter code fails the currencycode rule, amount is missing entirely.
	w := suite.performRequest(http.MethodPost, "/fx/", gin.H{
		"source_currency": "USDT",
		"target_currency": "EUR",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp struct {
		Errors apperrors.FieldErrors `json:"errors"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	fields := make([]string, 0, len(resp.Errors))
	for _, fe := range resp.Errors {
		fields = append(fields, fe.Field)
	}
	suite.Contains(fields, "source_currency")
	suite.Contains(fields, "amount")
	suite.mockQuoteService.AssertNotCalled(suite.T(), "CreateQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteHandlerTestSuite) TestCreateQuote_ServiceValidationFailure() {
	reqBody := dto.CreateQuoteRequest{SourceCurrency: "USD", TargetCurrency: "EUR", Amount: "1.234"}
	suite.mockQuoteService.On("CreateQuote", mock.Anything, reqBody).
		Return(nil, apperrors.NewFieldErrors("amount", "amount must have at most 2 decimal places"))

	w := suite.performRequest(http.MethodPost, "/fx/", reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp struct {
		Errors apperrors.FieldErrors `json:"errors"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Errors, 1)
	suite.Equal("amount", resp.Errors[0].Field)
}

func (suite *QuoteHandlerTestSuite) TestCreateQuote_ServiceFailure() {
	reqBody := dto.CreateQuoteRequest{SourceCurrency: "USD", TargetCurrency: "EUR", Amount: "100"}
	suite.mockQuoteService.On("CreateQuote", mock.Anything, reqBody).
		Return(nil, fmt.Errorf("database down"))

	w := suite.performRequest(http.MethodPost, "/fx/", reqBody)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *QuoteHandlerTestSuite) TestGetQuote_Success() {
	quoteID := uuid.NewString()
	suite.mockQuoteService.On("GetQuote", mock.Anything, quoteID).Return(quoteDetail(quoteID), nil)

	w := suite.performRequest(http.MethodGet, "/fx/"+quoteID+"/", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(quoteID, resp.QuoteID)
}

func (suite *QuoteHandlerTestSuite) TestGetQuote_NotFound() {
	quoteID := uuid.NewString()
	suite.mockQuoteService.On("GetQuote", mock.Anything, quoteID).
		Return(nil, fmt.Errorf("%w: quote %s", apperrors.ErrNotFound, quoteID))

	w := suite.performRequest(http.MethodGet, "/fx/"+quoteID+"/", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *QuoteHandlerTestSuite) TestGetQuote_MalformedID() {
	w := suite.performRequest(http.MethodGet, "/fx/not-a-uuid/", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockQuoteService.AssertNotCalled(suite.T(), "GetQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteHandlerTestSuite) TestGetQuote_Expired() {
	quoteID := uuid.NewString()
	suite.mockQuoteService.On("GetQuote", mock.Anything, quoteID).
		Return(nil, fmt.Errorf("%w: quote %s", apperrors.ErrExpired, quoteID))

	w := suite.performRequest(http.MethodGet, "/fx/"+quoteID+"/", nil)

	suite.Equal(http.StatusGone, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Quote has expired", resp["error"])
}

func TestQuoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}
