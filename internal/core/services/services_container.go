package services

import (
	portsprov "github.com/easyfx/fx_backend/internal/core/ports/providers"
	portsrepo "github.com/easyfx/fx_backend/internal/core/ports/repositories"
	portssvc "github.com/easyfx/fx_backend/internal/core/ports/services"
	"github.com/easyfx/fx_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider portsprov.RatesProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Quote = NewQuoteService(repos.QuoteRepo, repos.RateRepo, container.Currency, cfg.QuoteValidity)
	container.Refresher = NewRefresherService(repos.CurrencyRepo, repos.RateRepo, provider, cfg.RefreshInterval)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade  = (*CurrencyService)(nil)
	_ portssvc.QuoteSvcFacade     = (*QuoteService)(nil)
	_ portssvc.RefresherSvcFacade = (*RefresherService)(nil)
)
