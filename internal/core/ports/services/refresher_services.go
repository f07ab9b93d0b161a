package services

import (
	"context"

	"github.com/easyfx/fx_backend/internal/core/domain"
)

// RefresherSvcFacade defines the rate refresh operations.
type RefresherSvcFacade interface {
	// ShouldRefresh reports whether the refresh interval has elapsed since the
	// most recent stored rate update. Always true when no rates exist.
	ShouldRefresh(ctx context.Context) (bool, error)

	// RefreshAll runs one best-effort refresh cycle across all active
	// currencies. Provider failures degrade to stale rates, never errors.
	RefreshAll(ctx context.Context) (domain.RefreshSummary, error)
}
