package repositories

// RepositoryProvider bundles the repository facades the services depend on.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
	RateRepo     RateRepositoryFacade
	QuoteRepo    QuoteRepositoryFacade
}
