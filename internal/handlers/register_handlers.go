package handlers

import (
	"html/template"
	"time"

	portsprov "github.com/easyfx/fx_backend/internal/core/ports/providers"
	portssvc "github.com/easyfx/fx_backend/internal/core/ports/services"
	"github.com/easyfx/fx_backend/internal/middleware"
	"github.com/easyfx/fx_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	dbPool *pgxpool.Pool,
	provider portsprov.RatesProvider,
) {
	RegisterCustomValidators()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	quoteLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.QuoteRateLimit,
	})

	fx := r.Group("/fx")

	RegisterQuoteRoutes(fx, services.Quote, middleware.RateLimit(quoteLimiter))
	RegisterCurrencyRoutes(fx, services.Currency)
	RegisterRefreshRoutes(fx, services.Refresher)
	RegisterHealthRoutes(fx, dbPool, provider)
	RegisterDemoRoutes(fx, services.Currency)
}
