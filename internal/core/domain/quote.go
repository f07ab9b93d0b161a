package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is an immutable, time-boxed record locking a conversion rate and
// result for a requested amount. The rate is copied from the Rate table at
// creation time and never re-read.
type Quote struct {
	QuoteID            string          `json:"quoteID"` // UUID
	SourceCurrencyCode string          `json:"sourceCurrencyCode"`
	TargetCurrencyCode string          `json:"targetCurrencyCode"`
	Amount             decimal.Decimal `json:"amount"`
	Rate               decimal.Decimal `json:"rate"`
	Result             decimal.Decimal `json:"result"`
	TimeCreated        time.Time       `json:"timeCreated"`
	TimeUpdated        time.Time       `json:"timeUpdated"`
	ExpirationTime     time.Time       `json:"expirationTime"`
}

// IsExpired reports whether the quote is past its expiration at the given instant.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.ExpirationTime)
}

// QuoteDetail bundles a quote with the full currency records it references,
// for responses that echo currency display metadata.
type QuoteDetail struct {
	Quote
	SourceCurrency Currency `json:"sourceCurrency"`
	TargetCurrency Currency `json:"targetCurrency"`
}
