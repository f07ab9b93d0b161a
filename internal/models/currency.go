package models

import "time"

// Currency mirrors a row in the currencies table.
type Currency struct {
	Code               string    `json:"code"` // Primary Key (e.g., "USD")
	Name               string    `json:"name"`
	Symbol             string    `json:"symbol"`
	DecimalPlaces      int       `json:"decimalPlaces"`
	SymbolPosition     string    `json:"symbolPosition"` // "before" or "after"
	ThousandsSeparator string    `json:"thousandsSeparator"`
	DecimalSeparator   string    `json:"decimalSeparator"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
