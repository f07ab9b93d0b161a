package handlers

import (
	"embed"
	"log/slog"
	"net/http"

	portssvc "github.com/easyfx/fx_backend/internal/core/ports/services"
	"github.com/easyfx/fx_backend/internal/middleware"
	"github.com/easyfx/fx_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

// demoHandler serves the conversion demo page.
type demoHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newDemoHandler(cs portssvc.CurrencySvcFacade) *demoHandler {
	return &demoHandler{
		currencyService: cs,
	}
}

// RegisterDemoRoutes registers the demo page route.
func RegisterDemoRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newDemoHandler(currencyService)

	rg.GET("/demo/", h.demoPage)
}

type demoCurrency struct {
	Code   string
	Name   string
	Sample string
}

var demoSampleAmount = decimal.RequireFromString("1234567.89")

// demoPage renders a small HTML page listing the active currencies and a
// form that requests quotes against the API.
func (h *demoHandler) demoPage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListActiveCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load currencies for demo page", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "failed to load currencies")
		return
	}

	rows := make([]demoCurrency, len(currencies))
	for i, curr := range currencies {
		rows[i] = demoCurrency{
			Code:   curr.Code,
			Name:   curr.Name,
			Sample: utils.FormatAmount(demoSampleAmount, curr),
		}
	}

	c.HTML(http.StatusOK, "demo.html", gin.H{"Currencies": rows})
}
