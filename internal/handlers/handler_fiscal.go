package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/core/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
	"github.com/ledgerly/ledgerly_backend/internal/middleware"
)

// fiscalHandler handles HTTP requests for fiscal years and periods.
type fiscalHandler struct {
	fiscalService portssvc.FiscalSvcFacade
}

// newFiscalHandler creates a new fiscalHandler.
func newFiscalHandler(fs portssvc.FiscalSvcFacade) *fiscalHandler {
	return &fiscalHandler{
		fiscalService: fs,
	}
}

// registerFiscalRoutes registers routes related to fiscal years and periods.
func registerFiscalRoutes(rg *gin.RouterGroup, fiscalService portssvc.FiscalSvcFacade) {
	h := newFiscalHandler(fiscalService)

	years := rg.Group("/fiscal-years")
	{
		years.POST("", h.createFiscalYear)
		years.GET("", h.listFiscalYears)
		years.GET("/current", h.getCurrentFiscalYear)
		years.GET("/:id", h.getFiscalYearByID)
		years.POST("/:id/set-current", h.setAsCurrent)
		years.POST("/:id/close", h.closeFiscalYear)
		years.GET("/:id/periods", h.listPeriods)
		years.POST("/:id/periods", h.generatePeriods)
	}

	periods := rg.Group("/periods")
	{
		periods.POST("/:id/close", h.closePeriod)
		periods.POST("/:id/reopen", h.reopenPeriod)
	}
}

// fiscalError maps service errors shared by the fiscal handlers.
func fiscalError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, services.ErrFiscalYearLocked):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidPeriodType),
		errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// createFiscalYear godoc
// @Summary Create a fiscal year
// @Description Opens a new fiscal year, optionally generating its periods and making it current.
// @Tags fiscal-years
// @Accept json
// @Produce json
// @Param year body dto.CreateFiscalYearRequest true "Fiscal year details"
// @Success 201 {object} dto.FiscalYearResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fiscal-years [post]
func (h *fiscalHandler) createFiscalYear(c *gin.Context) {
	var req dto.CreateFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	year, err := h.fiscalService.CreateFiscalYear(c.Request.Context(), req, creatorUserID)
	if err != nil {
		fiscalError(c, err, "create fiscal year")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFiscalYearResponse(year))
}

// listFiscalYears godoc
// @Summary List fiscal years
// @Tags fiscal-years
// @Produce json
// @Success 200 {array} dto.FiscalYearResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fiscal-years [get]
func (h *fiscalHandler) listFiscalYears(c *gin.Context) {
	years, err := h.fiscalService.ListFiscalYears(c.Request.Context())
	if err != nil {
		fiscalError(c, err, "list fiscal years")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFiscalYearResponse(years))
}

// getCurrentFiscalYear godoc
// @Summary Get the current fiscal year
// @Tags fiscal-years
// @Produce json
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 404 {object} ErrorResponse "No fiscal year is current"
// @Security BearerAuth
// @Router /fiscal-years/current [get]
func (h *fiscalHandler) getCurrentFiscalYear(c *gin.Context) {
	year, err := h.fiscalService.GetCurrentFiscalYear(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No fiscal year is current"})
			return
		}
		fiscalError(c, err, "get current fiscal year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(year))
}

// getFiscalYearByID godoc
// @Summary Get a fiscal year
// @Tags fiscal-years
// @Produce json
// @Param id path string true "Fiscal year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /fiscal-years/{id} [get]
func (h *fiscalHandler) getFiscalYearByID(c *gin.Context) {
	year, err := h.fiscalService.GetFiscalYearByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fiscalError(c, err, "get fiscal year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(year))
}

// setAsCurrent godoc
// @Summary Make a fiscal year current
// @Description Exactly one fiscal year is current afterwards.
// @Tags fiscal-years
// @Param id path string true "Fiscal year ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Fiscal year is locked"
// @Security BearerAuth
// @Router /fiscal-years/{id}/set-current [post]
func (h *fiscalHandler) setAsCurrent(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.fiscalService.SetAsCurrent(c.Request.Context(), c.Param("id"), updaterUserID); err != nil {
		fiscalError(c, err, "set current fiscal year")
		return
	}
	c.Status(http.StatusNoContent)
}

// closeFiscalYear godoc
// @Summary Close a fiscal year
// @Description Closes every period and locks the year. The lock is terminal.
// @Tags fiscal-years
// @Param id path string true "Fiscal year ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Fiscal year is already locked"
// @Security BearerAuth
// @Router /fiscal-years/{id}/close [post]
func (h *fiscalHandler) closeFiscalYear(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.fiscalService.CloseFiscalYear(c.Request.Context(), c.Param("id"), updaterUserID); err != nil {
		fiscalError(c, err, "close fiscal year")
		return
	}
	c.Status(http.StatusNoContent)
}

// listPeriods godoc
// @Summary List accounting periods of a fiscal year
// @Tags fiscal-years
// @Produce json
// @Param id path string true "Fiscal year ID"
// @Success 200 {array} dto.AccountingPeriodResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fiscal-years/{id}/periods [get]
func (h *fiscalHandler) listPeriods(c *gin.Context) {
	periods, err := h.fiscalService.ListPeriods(c.Request.Context(), c.Param("id"))
	if err != nil {
		fiscalError(c, err, "list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountingPeriodResponse(periods))
}

// generatePeriods godoc
// @Summary Generate accounting periods
// @Description Partitions the fiscal year into monthly, quarterly or semester periods, replacing existing ones.
// @Tags fiscal-years
// @Accept json
// @Produce json
// @Param id path string true "Fiscal year ID"
// @Param type body dto.GeneratePeriodsRequest true "Period type"
// @Success 201 {array} dto.AccountingPeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Fiscal year is locked"
// @Security BearerAuth
// @Router /fiscal-years/{id}/periods [post]
func (h *fiscalHandler) generatePeriods(c *gin.Context) {
	var req dto.GeneratePeriodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	periods, err := h.fiscalService.GeneratePeriods(c.Request.Context(), c.Param("id"), domain.PeriodType(req.Type), creatorUserID)
	if err != nil {
		fiscalError(c, err, "generate periods")
		return
	}

	c.JSON(http.StatusCreated, dto.ToListAccountingPeriodResponse(periods))
}

// closePeriod godoc
// @Summary Close an accounting period
// @Tags periods
// @Param id path string true "Period ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Fiscal year is locked"
// @Security BearerAuth
// @Router /periods/{id}/close [post]
func (h *fiscalHandler) closePeriod(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.fiscalService.ClosePeriod(c.Request.Context(), c.Param("id"), updaterUserID); err != nil {
		fiscalError(c, err, "close period")
		return
	}
	c.Status(http.StatusNoContent)
}

// reopenPeriod godoc
// @Summary Reopen an accounting period
// @Description Reopens a closed period unless its fiscal year is locked.
// @Tags periods
// @Param id path string true "Period ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Fiscal year is locked"
// @Security BearerAuth
// @Router /periods/{id}/reopen [post]
func (h *fiscalHandler) reopenPeriod(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.fiscalService.ReopenPeriod(c.Request.Context(), c.Param("id"), updaterUserID); err != nil {
		fiscalError(c, err, "reopen period")
		return
	}
	c.Status(http.StatusNoContent)
}
