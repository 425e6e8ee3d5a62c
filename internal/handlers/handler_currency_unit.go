package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/currexo/currency_catalog_app/internal/apperrors"
	portssvc "github.com/currexo/currency_catalog_app/internal/core/ports/services"
	"github.com/currexo/currency_catalog_app/internal/dto"
	"github.com/currexo/currency_catalog_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyUnitHandler handles HTTP requests related to the currency catalog.
type currencyUnitHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newCurrencyUnitHandler creates a new currencyUnitHandler.
func newCurrencyUnitHandler(cs portssvc.CatalogSvcFacade) *currencyUnitHandler {
	return &currencyUnitHandler{
		catalogService: cs,
	}
}

// registerCurrencyUnitRoutes registers the public catalog read routes.
func registerCurrencyUnitRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCurrencyUnitHandler(catalogService)

	units := rg.Group("/units")
	{
		units.GET("", h.listUnits)
		units.GET("/:code", h.getUnitByCode)
	}
}

// registerAdminCurrencyUnitRoutes registers the JWT-guarded catalog write routes.
func registerAdminCurrencyUnitRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCurrencyUnitHandler(catalogService)

	units := rg.Group("/units")
	{
		units.POST("", h.upsertUnit)
	}
}

// upsertUnit godoc
// @Summary Override a catalog row
// @Description Rewrites the persisted row for a catalog currency (admin operation)
// @Tags units
// @Accept  json
// @Produce  json
// @Param   unit body dto.UpsertCurrencyUnitRequest true "Currency unit details"
// @Success 201 {object} dto.CurrencyUnitResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to upsert currency unit"
// @Security BearerAuth
// @Router /admin/units [post]
func (h *currencyUnitHandler) upsertUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertCurrencyUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertUnit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to upsert currency unit", slog.String("code", req.Code))

	entry, err := h.catalogService.UpsertUnit(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error upserting currency unit", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert currency unit in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upsert currency unit"})
		}
		return
	}

	logger.Info("Currency unit upserted successfully", slog.String("code", string(entry.Code)))
	c.JSON(http.StatusCreated, dto.ToCurrencyUnitResponse(entry))
}

// getUnitByCode godoc
// @Summary Get a catalog currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags units
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyUnitResponse
// @Failure 404 {object} map[string]string "Currency unit not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency unit"
// @Router /units/{code} [get]
func (h *currencyUnitHandler) getUnitByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("code", code))
	logger.Info("Received request to get currency unit by code")

	entry, err := h.catalogService.GetUnitByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency unit not found")
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency unit '%s' not found", code)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error getting currency unit", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get currency unit from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency unit"})
		}
		return
	}

	logger.Info("Currency unit retrieved successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyUnitResponse(entry))
}

// listUnits godoc
// @Summary List catalog currencies
// @Description Retrieves all currencies of the catalog
// @Tags units
// @Produce  json
// @Success 200 {array} dto.CurrencyUnitResponse
// @Failure 500 {object} map[string]string "Failed to list currency units"
// @Router /units [get]
func (h *currencyUnitHandler) listUnits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list currency units")

	entries, err := h.catalogService.ListUnits(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currency units from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currency units"})
		return
	}

	logger.Info("Currency units listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListCurrencyUnitResponse(entries))
}
