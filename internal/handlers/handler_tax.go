package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/core/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
	"github.com/ledgerly/ledgerly_backend/internal/middleware"
)

// taxHandler handles HTTP requests for tax rates.
type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

// newTaxHandler creates a new taxHandler.
func newTaxHandler(ts portssvc.TaxSvcFacade) *taxHandler {
	return &taxHandler{
		taxService: ts,
	}
}

// registerTaxRoutes registers routes related to tax rates.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := newTaxHandler(taxService)

	taxes := rg.Group("/tax-rates")
	{
		taxes.POST("", h.createTaxRate)
		taxes.GET("", h.listTaxRates)
		taxes.GET("/:id", h.getTaxRateByID)
		taxes.PUT("/:id", h.updateTaxRate)
		taxes.POST("/:id/set-default", h.setDefaultTaxRate)
		taxes.POST("/:id/deactivate", h.deactivateTaxRate)
	}
}

// taxError maps service errors shared by the tax handlers.
func taxError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tax rate not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNegativeTaxRate), errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to "+action+" tax rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action + " tax rate"})
	}
}

// createTaxRate godoc
// @Summary Create a tax rate
// @Tags tax-rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateTaxRateRequest true "Tax rate details"
// @Success 201 {object} dto.TaxRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Tax rate code already exists"
// @Security BearerAuth
// @Router /tax-rates [post]
func (h *taxHandler) createTaxRate(c *gin.Context) {
	var req dto.CreateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rate, err := h.taxService.CreateTaxRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		taxError(c, err, "create")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaxRateResponse(rate))
}

// listTaxRates godoc
// @Summary List tax rates
// @Tags tax-rates
// @Produce json
// @Param activeOnly query bool false "Only active rates"
// @Success 200 {array} dto.TaxRateResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax-rates [get]
func (h *taxHandler) listTaxRates(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))

	rates, err := h.taxService.ListTaxRates(c.Request.Context(), activeOnly)
	if err != nil {
		taxError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTaxRateResponse(rates))
}

// getTaxRateByID godoc
// @Summary Get a tax rate
// @Tags tax-rates
// @Produce json
// @Param id path string true "Tax rate ID"
// @Success 200 {object} dto.TaxRateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax-rates/{id} [get]
func (h *taxHandler) getTaxRateByID(c *gin.Context) {
	rate, err := h.taxService.GetTaxRateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		taxError(c, err, "retrieve")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxRateResponse(rate))
}

// updateTaxRate godoc
// @Summary Update a tax rate
// @Tags tax-rates
// @Accept json
// @Produce json
// @Param id path string true "Tax rate ID"
// @Param rate body dto.UpdateTaxRateRequest true "Fields to change"
// @Success 200 {object} dto.TaxRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax-rates/{id} [put]
func (h *taxHandler) updateTaxRate(c *gin.Context) {
	var req dto.UpdateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rate, err := h.taxService.UpdateTaxRate(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		taxError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxRateResponse(rate))
}

// setDefaultTaxRate godoc
// @Summary Make a tax rate the default
// @Description Exactly one rate is the default afterwards.
// @Tags tax-rates
// @Param id path string true "Tax rate ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Rate is inactive"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax-rates/{id}/set-default [post]
func (h *taxHandler) setDefaultTaxRate(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.taxService.SetDefaultTaxRate(c.Request.Context(), c.Param("id"), updaterUserID); err != nil {
		taxError(c, err, "set default")
		return
	}
	c.Status(http.StatusNoContent)
}

// deactivateTaxRate godoc
// @Summary Deactivate a tax rate
// @Description An inactive default loses its default flag.
// @Tags tax-rates
// @Param id path string true "Tax rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax-rates/{id}/deactivate [post]
func (h *taxHandler) deactivateTaxRate(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.taxService.DeactivateTaxRate(c.Request.Context(), c.Param("id"), updaterUserID); err != nil {
		taxError(c, err, "deactivate")
		return
	}
	c.Status(http.StatusNoContent)
}
