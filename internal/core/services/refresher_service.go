package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/easyfx/fx_backend/internal/core/domain"
	portsprov "github.com/easyfx/fx_backend/internal/core/ports/providers"
	portsrepo "github.com/easyfx/fx_backend/internal/core/ports/repositories"
	portssvc "github.com/easyfx/fx_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// rateSpread is the fixed symmetric spread applied to the provider's mean
// rate to derive buying and selling rates (0.5%).
var rateSpread = decimal.RequireFromString("0.005")

// RefresherService keeps the rate store fresh against the external provider.
// Every failure inside a cycle degrades to "these rates stay stale": provider
// and per-pair errors are logged and skipped, never raised to the caller.
type RefresherService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	rateRepo     portsrepo.RateRepositoryFacade
	provider     portsprov.RatesProvider
	interval     time.Duration
	now          func() time.Time
}

var _ portssvc.RefresherSvcFacade = (*RefresherService)(nil)

// RefresherServiceOption configures a RefresherService.
type RefresherServiceOption func(*RefresherService)

// WithRefresherClock overrides the clock used for the staleness check and
// rate timestamps.
func WithRefresherClock(now func() time.Time) RefresherServiceOption {
	return func(s *RefresherService) {
		s.now = now
	}
}

// NewRefresherService creates a new RefresherService. interval is the minimum
// time between refresh cycles (the staleness interval).
func NewRefresherService(
	currencyRepo portsrepo.CurrencyReader,
	rateRepo portsrepo.RateRepositoryFacade,
	provider portsprov.RatesProvider,
	interval time.Duration,
	opts ...RefresherServiceOption,
) *RefresherService {
	s := &RefresherService{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		provider:     provider,
		interval:     interval,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// shouldRefresh is the staleness policy as a pure function of the injected
// clock: due when no rate exists yet, or when the most recent update is at
// least one interval old.
func shouldRefresh(now time.Time, latest *time.Time, interval time.Duration) bool {
	if latest == nil {
		return true
	}
	return now.Sub(*latest) >= interval
}

// ShouldRefresh reports whether a refresh cycle is currently due.
func (s *RefresherService) ShouldRefresh(ctx context.Context) (bool, error) {
	latest, err := s.rateRepo.FindLatestRateUpdate(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check rate staleness: %w", err)
	}
	return shouldRefresh(s.now(), latest, s.interval), nil
}

// RefreshAll runs one refresh cycle: staleness gate, one provider call per
// active base currency, then per-pair upserts with the fixed spread applied.
func (s *RefresherService) RefreshAll(ctx context.Context) (domain.RefreshSummary, error) {
	var summary domain.RefreshSummary

	due, err := s.ShouldRefresh(ctx)
	if err != nil {
		return summary, err
	}
	if !due {
		summary.Skipped = true
		summary.SkipReason = "refresh_interval_not_reached"
		s.LogInfo(ctx, "rate refresh skipped", slog.String("reason", summary.SkipReason))
		return summary, nil
	}

	active, err := s.currencyRepo.ListActiveCurrencies(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to list active currencies for refresh: %w", err)
	}
	if len(active) == 0 {
		summary.Skipped = true
		summary.SkipReason = "no_active_currencies"
		s.LogWarn(ctx, "rate refresh skipped", slog.String("reason", summary.SkipReason))
		return summary, nil
	}
	summary.ActiveCurrencies = len(active)

	// The provider may return pairs outside the registry; those are skipped.
	// Membership is checked against the full registry, not just active rows.
	all, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to list currencies for refresh: %w", err)
	}
	known := make(map[string]bool, len(all))
	for _, c := range all {
		known[c.Code] = true
	}

	for _, base := range active {
		symbols := make([]string, 0, len(active)-1)
		for _, c := range active {
			if c.Code != base.Code {
				symbols = append(symbols, c.Code)
			}
		}
		if len(symbols) == 0 {
			continue
		}

		rates, err := s.provider.FetchRates(ctx, base.Code, symbols)
		if err != nil {
			s.LogError(ctx, err, "rate fetch failed",
				slog.String("base_currency", base.Code),
				slog.Int("target_count", len(symbols)),
			)
			summary.FailedFetches++
			continue
		}

		summary.SuccessfulFetches++
		summary.RatesUpserted += s.upsertRates(ctx, base.Code, rates, known)
	}

	s.LogInfo(ctx, "rate refresh completed",
		slog.Int("active_currencies", summary.ActiveCurrencies),
		slog.Int("successful_fetches", summary.SuccessfulFetches),
		slog.Int("failed_fetches", summary.FailedFetches),
		slog.Int("rates_upserted", summary.RatesUpserted),
	)
	return summary, nil
}

// upsertRates writes one provider response into the rate store. Unknown
// target codes are skipped silently; per-pair store failures are logged and
// do not abort the rest of the batch.
func (s *RefresherService) upsertRates(ctx context.Context, baseCode string, rates map[string]decimal.Decimal, known map[string]bool) int {
	one := decimal.NewFromInt(1)
	now := s.now()
	count := 0

	for targetCode, mean := range rates {
		targetCode = strings.ToUpper(targetCode)
		if targetCode == baseCode || !known[targetCode] {
			continue
		}

		rate := domain.Rate{
			SourceCode:  baseCode,
			TargetCode:  targetCode,
			Mean:        mean,
			Buying:      mean.Mul(one.Sub(rateSpread)),
			Selling:     mean.Mul(one.Add(rateSpread)),
			LastUpdated: now,
		}

		if err := s.rateRepo.UpsertRate(ctx, rate); err != nil {
			s.LogWarn(ctx, "rate upsert failed",
				slog.String("source_currency", baseCode),
				slog.String("target_currency", targetCode),
				slog.String("error", err.Error()),
			)
			continue
		}
		count++
	}
	return count
}
