package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/easyfx/fx_backend/internal/core/ports/services"
	"github.com/easyfx/fx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// refreshHandler exposes the on-demand rate refresh trigger.
type refreshHandler struct {
	refresherService portssvc.RefresherSvcFacade
}

func newRefreshHandler(rs portssvc.RefresherSvcFacade) *refreshHandler {
	return &refreshHandler{
		refresherService: rs,
	}
}

// RegisterRefreshRoutes registers the on-demand refresh trigger route.
func RegisterRefreshRoutes(rg *gin.RouterGroup, refresherService portssvc.RefresherSvcFacade) {
	h := newRefreshHandler(refresherService)

	rg.POST("/refresh/", h.triggerRefresh)
}

// triggerRefresh godoc
// @Summary Trigger a rate refresh cycle
// @Description Runs one refresh cycle; the staleness gate may skip it
// @Tags rates
// @Produce  json
// @Success 200 {object} domain.RefreshSummary
// @Failure 500 {object} map[string]string "Refresh failed"
// @Router /fx/refresh [post]
func (h *refreshHandler) triggerRefresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.refresherService.RefreshAll(c.Request.Context())
	if err != nil {
		logger.Error("Refresh cycle failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Refresh failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
