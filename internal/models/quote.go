package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote mirrors a row in the quotes table.
type Quote struct {
	QuoteID            string          `json:"quoteID"` // Primary Key (UUID)
	SourceCurrencyCode string          `json:"sourceCurrencyCode"`
	TargetCurrencyCode string          `json:"targetCurrencyCode"`
	Amount             decimal.Decimal `json:"amount"`
	Rate               decimal.Decimal `json:"rate"`
	Result             decimal.Decimal `json:"result"`
	TimeCreated        time.Time       `json:"timeCreated"`
	TimeUpdated        time.Time       `json:"timeUpdated"`
	ExpirationTime     time.Time       `json:"expirationTime"`
}
