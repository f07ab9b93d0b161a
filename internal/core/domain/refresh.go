package domain

// RefreshSummary reports the outcome of one rate-refresh cycle.
type RefreshSummary struct {
	Skipped           bool   `json:"skipped"`
	SkipReason        string `json:"skipReason,omitempty"`
	ActiveCurrencies  int    `json:"activeCurrencies"`
	SuccessfulFetches int    `json:"successfulFetches"`
	FailedFetches     int    `json:"failedFetches"`
	RatesUpserted     int    `json:"ratesUpserted"`
}
