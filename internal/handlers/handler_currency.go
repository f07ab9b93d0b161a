package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/easyfx/fx_backend/internal/core/ports/services"
	"github.com/easyfx/fx_backend/internal/dto"
	"github.com/easyfx/fx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to the currency registry.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	rg.GET("/currencies/", h.listCurrencies)
}

// listCurrencies godoc
// @Summary List active currencies
// @Description Returns the active currencies with their display metadata
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /fx/currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListActiveCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
