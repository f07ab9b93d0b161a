package utils

import (
	"strings"

	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount using a currency's display metadata.
// Example: 1234567.891 with USD ($, before, ",", ".", 2 places) returns "$1,234,567.89"
// Example: 1234.5 with EUR configured as after/"."/"," returns "1.234,50 €" style output
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	rounded := amount.Round(int32(currency.DecimalPlaces))

	negative := rounded.IsNegative()
	fixed := rounded.Abs().StringFixed(int32(currency.DecimalPlaces))

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx+1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(currency.ThousandsSeparator)
		}
		b.WriteRune(digit)
	}

	formatted := b.String()
	if fracPart != "" {
		formatted += currency.DecimalSeparator + fracPart
	}
	if negative {
		formatted = "-" + formatted
	}

	if currency.SymbolPosition == domain.SymbolAfter {
		return formatted + " " + currency.Symbol
	}
	return currency.Symbol + formatted
}

// FormatWithPrecision formats an amount with the given number of decimal places,
// without any currency decoration.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
