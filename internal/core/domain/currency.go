package domain

import "time"

// SymbolPosition controls where a currency symbol is rendered relative to the amount.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// Currency holds reference data for a supported currency.
// Code is immutable once created; only active currencies participate in
// rate refresh and quoting.
type Currency struct {
	Code               string         `json:"code"` // 3-letter ISO code, primary key
	Name               string         `json:"name"`
	Symbol             string         `json:"symbol"`
	DecimalPlaces      int            `json:"decimalPlaces"`
	SymbolPosition     SymbolPosition `json:"symbolPosition"`
	ThousandsSeparator string         `json:"thousandsSeparator"`
	DecimalSeparator   string         `json:"decimalSeparator"`
	Active             bool           `json:"active"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
