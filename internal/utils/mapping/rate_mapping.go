package mapping

import (
	"github.com/easyfx/fx_backend/internal/core/domain"
	"github.com/easyfx/fx_backend/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		SourceCode:  d.SourceCode,
		TargetCode:  d.TargetCode,
		Mean:        d.Mean,
		Buying:      d.Buying,
		Selling:     d.Selling,
		LastUpdated: d.LastUpdated,
	}
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		SourceCode:  m.SourceCode,
		TargetCode:  m.TargetCode,
		Mean:        m.Mean,
		Buying:      m.Buying,
		Selling:     m.Selling,
		LastUpdated: m.LastUpdated,
	}
}

// ToDomainRateSlice converts a slice of model Rates to a slice of domain Rates
func ToDomainRateSlice(ms []models.Rate) []domain.Rate {
	ds := make([]domain.Rate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRate(m)
	}
	return ds
}
