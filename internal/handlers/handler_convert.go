package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/currexo/currency_catalog_app/internal/apperrors"
	portssvc "github.com/currexo/currency_catalog_app/internal/core/ports/services"
	"github.com/currexo/currency_catalog_app/internal/dto"
	"github.com/currexo/currency_catalog_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// convertHandler handles HTTP requests for currency conversion.
type convertHandler struct {
	conversionService portssvc.ConversionSvc
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(cs portssvc.ConversionSvc) *convertHandler {
	return &convertHandler{
		conversionService: cs,
	}
}

// registerConvertRoutes registers the conversion route.
func registerConvertRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvc) {
	h := newConvertHandler(conversionService)
	rg.POST("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Rescales an amount from one catalog currency into another through the base-currency pivot
// @Tags convert
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConvertResult
// @Failure 400 {object} map[string]string "Invalid input or unknown currency code"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /convert [post]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to convert",
		slog.String("from", req.FromCode),
		slog.String("to", req.ToCode),
		slog.Float64("amount", req.Amount),
	)

	result, err := h.conversionService.Convert(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error converting", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to convert in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
		}
		return
	}

	logger.Info("Conversion completed", slog.Float64("converted", result.Converted))
	c.JSON(http.StatusOK, result)
}
