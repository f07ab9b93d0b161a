package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portsprov "github.com/easyfx/fx_backend/internal/core/ports/providers"
	"github.com/easyfx/fx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const readinessCheckTimeout = 5 * time.Second

// healthHandler serves the liveness and readiness probes.
type healthHandler struct {
	dbPool   *pgxpool.Pool
	provider portsprov.RatesProvider
}

func newHealthHandler(dbPool *pgxpool.Pool, provider portsprov.RatesProvider) *healthHandler {
	return &healthHandler{
		dbPool:   dbPool,
		provider: provider,
	}
}

// RegisterHealthRoutes registers the health and readiness probe routes.
func RegisterHealthRoutes(rg *gin.RouterGroup, dbPool *pgxpool.Pool, provider portsprov.RatesProvider) {
	h := newHealthHandler(dbPool, provider)

	rg.GET("/health/", h.healthCheck)
	rg.GET("/ready/", h.readinessCheck)
}

// healthCheck godoc
// @Summary Liveness probe
// @Description Returns 200 while the process is serving requests
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /fx/health [get]
func (h *healthHandler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessCheck godoc
// @Summary Readiness probe
// @Description Verifies database connectivity and rate provider reachability
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /fx/ready [get]
func (h *healthHandler) readinessCheck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	checks := gin.H{}
	ready := true

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessCheckTimeout)
	defer cancel()

	if err := h.dbPool.Ping(ctx); err != nil {
		logger.Error("Readiness database check failed", slog.String("error", err.Error()))
		checks["database"] = "failed"
		ready = false
	} else {
		checks["database"] = "ok"
	}

	if err := h.provider.Ping(ctx); err != nil {
		logger.Error("Readiness provider check failed", slog.String("error", err.Error()))
		checks["exchange_rates_api"] = "failed"
		ready = false
	} else {
		checks["exchange_rates_api"] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": checks})
}
