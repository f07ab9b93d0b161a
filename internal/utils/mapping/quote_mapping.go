package mapping

import (
	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/easyfx/fx_backend/internal/models"
)

// ToModelQuote converts a domain Quote to a model Quote
func ToModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID:            d.QuoteID,
		SourceCurrencyCode: d.SourceCurrencyCode,
		TargetCurrencyCode: d.TargetCurrencyCode,
		Amount:             d.Amount,
		Rate:               d.Rate,
		Result:             d.Result,
		TimeCreated:        d.TimeCreated,
		TimeUpdated:        d.TimeUpdated,
		ExpirationTime:     d.ExpirationTime,
	}
}

// ToDomainQuote converts a model Quote to a domain Quote
func ToDomainQuote(m models.Quote) domain.Quote {
	return domain.Quote{
		QuoteID:            m.QuoteID,
		SourceCurrencyCode: m.SourceCurrencyCode,
		TargetCurrencyCode: m.TargetCurrencyCode,
		Amount:             m.Amount,
		Rate:               m.Rate,
		Result:             m.Result,
		TimeCreated:        m.TimeCreated,
		TimeUpdated:        m.TimeUpdated,
		ExpirationTime:     m.ExpirationTime,
	}
}
