package dto

import (
	"time"

	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest defines the structure for requesting a conversion quote.
// Amount travels as a decimal string so clients never round through floats.
type CreateQuoteRequest struct {
	SourceCurrency string `json:"source_currency" binding:"required,currencycode"`
	TargetCurrency string `json:"target_currency" binding:"required,currencycode"`
	Amount         string `json:"amount" binding:"required"`
}

// QuoteResponse defines the structure for API responses containing a quote.
type QuoteResponse struct {
	QuoteID        string           `json:"quote_id"`
	SourceCurrency CurrencyResponse `json:"source_currency"`
	TargetCurrency CurrencyResponse `json:"target_currency"`
	Amount         decimal.Decimal  `json:"amount"`
	Rate           decimal.Decimal  `json:"rate"`
	Result         decimal.Decimal  `json:"result"`
	ExpirationTime time.Time        `json:"expiration_time"`
}

// ToQuoteResponse converts a domain.QuoteDetail to QuoteResponse DTO
func ToQuoteResponse(d *domain.QuoteDetail) QuoteResponse {
	return QuoteResponse{
		QuoteID:        d.QuoteID,
		SourceCurrency: ToCurrencyResponse(&d.SourceCurrency),
		TargetCurrency: ToCurrencyResponse(&d.TargetCurrency),
		Amount:         d.Amount,
		Rate:           d.Rate,
		Result:         d.Result,
		ExpirationTime: d.ExpirationTime,
	}
}
