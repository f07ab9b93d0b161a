package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// RatesProvider abstracts the external exchange-rate API.
type RatesProvider interface {
	// FetchRates requests the rates from base to each of the symbol currencies
	// in a single call, returning a map of target code to mean rate.
	FetchRates(ctx context.Context, base string, symbols []string) (map[string]decimal.Decimal, error)

	// Ping verifies the provider is reachable with the configured credentials.
	Ping(ctx context.Context) error
}
