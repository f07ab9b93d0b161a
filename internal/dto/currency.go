package dto

import (
	"github.com/easyfx/fx_backend/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to register a new currency.
type CreateCurrencyRequest struct {
	Code               string `json:"code" binding:"required,currencycode"`
	Name               string `json:"name" binding:"required"`
	Symbol             string `json:"symbol" binding:"required"`
	DecimalPlaces      int    `json:"decimal_places" binding:"omitempty,min=0,max=18"`
	SymbolPosition     string `json:"symbol_position" binding:"omitempty,oneof=before after"`
	ThousandsSeparator string `json:"thousands_separator" binding:"omitempty,len=1"`
	DecimalSeparator   string `json:"decimal_separator" binding:"omitempty,len=1"`
	Active             *bool  `json:"active"`
}

// CurrencyResponse carries the display metadata for a currency.
// Active flag and audit timestamps are internal and not echoed.
type CurrencyResponse struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	Symbol             string `json:"symbol"`
	DecimalPlaces      int    `json:"decimal_places"`
	SymbolPosition     string `json:"symbol_position"`
	ThousandsSeparator string `json:"thousands_separator"`
	DecimalSeparator   string `json:"decimal_separator"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:               curr.Code,
		Name:               curr.Name,
		Symbol:             curr.Symbol,
		DecimalPlaces:      curr.DecimalPlaces,
		SymbolPosition:     string(curr.SymbolPosition),
		ThousandsSeparator: curr.ThousandsSeparator,
		DecimalSeparator:   curr.DecimalSeparator,
	}
}

// ToListCurrencyResponse converts a slice of domain Currencies to response DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
