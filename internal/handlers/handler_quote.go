package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/easyfx/fx_backend/internal/apperrors"
	portssvc "github.com/easyfx/fx_backend/internal/core/ports/services"
	"github.com/easyfx/fx_backend/internal/dto"
	"github.com/easyfx/fx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// quoteHandler handles HTTP requests related to conversion quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

// newQuoteHandler creates a new quoteHandler.
func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{
		quoteService: qs,
	}
}

// RegisterQuoteRoutes registers routes related to quotes.
func RegisterQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade, rateLimit gin.HandlerFunc) {
	h := newQuoteHandler(quoteService)

	rg.POST("/", rateLimit, h.createQuote)
	rg.GET("/:quoteID/", h.getQuote)
}

// createQuote godoc
// @Summary Create a conversion quote
// @Description Locks the current rate for a currency pair into a time-boxed quote
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.CreateQuoteRequest true "Quote request"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string][]apperrors.FieldError "Validation failure"
// @Failure 500 {object} map[string]string "Failed to create quote"
// @Router /fx [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			logger.Warn("Quote request failed binding validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"errors": bindingFieldErrors(vErrs)})
			return
		}
		logger.Warn("Failed to bind JSON for createQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("source_currency", req.SourceCurrency),
		slog.String("target_currency", req.TargetCurrency),
		slog.String("amount", req.Amount),
	)

	detail, err := h.quoteService.CreateQuote(c.Request.Context(), req)
	if err != nil {
		var fieldErrs apperrors.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			logger.Warn("Quote request failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Quote request failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create quote in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quote"})
		}
		return
	}

	logger.Info("Quote created successfully", slog.String("quote_id", detail.QuoteID))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(detail))
}

// getQuote godoc
// @Summary Retrieve a quote
// @Description Returns a previously issued quote while it is still valid
// @Tags quotes
// @Produce  json
// @Param   quoteID path string true "Quote ID (UUID)"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 410 {object} map[string]string "Quote has expired"
// @Failure 500 {object} map[string]string "Failed to retrieve quote"
// @Router /fx/{quoteID} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	// Mirrors routing on a uuid path converter: a malformed id is
	// indistinguishable from an id that never existed.
	if _, err := uuid.Parse(quoteID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}

	logger = logger.With(slog.String("quote_id", quoteID))

	detail, err := h.quoteService.GetQuote(c.Request.Context(), quoteID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Quote not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		case errors.Is(err, apperrors.ErrExpired):
			logger.Warn("Quote has expired")
			c.JSON(http.StatusGone, gin.H{"error": "Quote has expired"})
		default:
			logger.Error("Failed to get quote from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quote"})
		}
		return
	}

	logger.Info("Quote retrieved successfully")
	c.JSON(http.StatusOK, dto.ToQuoteResponse(detail))
}
