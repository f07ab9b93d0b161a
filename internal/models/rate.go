package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate mirrors a row in the rates table. One row per ordered currency pair;
// refresh overwrites mean/buying/selling/last_updated in place.
type Rate struct {
	SourceCode  string          `json:"sourceCode"` // FK -> Currency.code
	TargetCode  string          `json:"targetCode"` // FK -> Currency.code
	Mean        decimal.Decimal `json:"mean"`
	Buying      decimal.Decimal `json:"buying"`
	Selling     decimal.Decimal `json:"selling"`
	LastUpdated time.Time       `json:"lastUpdated"`
}
