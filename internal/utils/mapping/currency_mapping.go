package mapping

import (
	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/easyfx/fx_backend/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		Code:               d.Code,
		Name:               d.Name,
		Symbol:             d.Symbol,
		DecimalPlaces:      d.DecimalPlaces,
		SymbolPosition:     string(d.SymbolPosition),
		ThousandsSeparator: d.ThousandsSeparator,
		DecimalSeparator:   d.DecimalSeparator,
		Active:             d.Active,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		Code:               m.Code,
		Name:               m.Name,
		Symbol:             m.Symbol,
		DecimalPlaces:      m.DecimalPlaces,
		SymbolPosition:     domain.SymbolPosition(m.SymbolPosition),
		ThousandsSeparator: m.ThousandsSeparator,
		DecimalSeparator:   m.DecimalSeparator,
		Active:             m.Active,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
