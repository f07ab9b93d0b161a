package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is the latest known exchange rate for one ordered currency pair.
// At most one Rate exists per (SourceCode, TargetCode); the reverse pair is a
// separate row and is never derived by inversion.
type Rate struct {
	SourceCode  string          `json:"sourceCode"`
	TargetCode  string          `json:"targetCode"`
	Mean        decimal.Decimal `json:"mean"`
	Buying      decimal.Decimal `json:"buying"`
	Selling     decimal.Decimal `json:"selling"`
	LastUpdated time.Time       `json:"lastUpdated"`
}
