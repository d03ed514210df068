package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
	"github.com/ledgerly/ledgerly_backend/internal/middleware"
	"github.com/ledgerly/ledgerly_backend/internal/utils"
)

// currencyHandler handles HTTP requests related to the currency registry and
// the selected display currency.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/selected", h.getSelectedCurrency)
		currencies.PUT("/selected", h.setSelectedCurrency)
		currencies.POST("/format", h.formatAmount)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the static currency registry.
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies()
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves registry details for a 3-letter currency code.
// @Tags currencies
// @Produce json
// @Param code path string true "Currency Code (3 letters)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	code := c.Param("code")
	currency := h.currencyService.GetCurrencyInfo(code)
	if currency == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Currency not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// getSelectedCurrency godoc
// @Summary Get the selected display currency
// @Description Returns the stored preference, or the default currency when none is stored.
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies/selected [get]
func (h *currencyHandler) getSelectedCurrency(c *gin.Context) {
	currency := h.currencyService.GetSelectedCurrency(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(&currency))
}

// setSelectedCurrency godoc
// @Summary Set the selected display currency
// @Description Persists the display currency preference.
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.SelectCurrencyRequest true "Currency selection"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/selected [put]
func (h *currencyHandler) setSelectedCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SelectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.currencyService.SetSelectedCurrency(c.Request.Context(), req.Code, updaterUserID); err != nil {
		logger.Error("Failed to set selected currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set selected currency"})
		return
	}

	currency := h.currencyService.GetSelectedCurrency(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(&currency))
}

// formatAmount godoc
// @Summary Format an amount
// @Description Renders an amount using a currency's locale convention, with optional overrides.
// @Tags currencies
// @Accept json
// @Produce json
// @Param format body dto.FormatAmountRequest true "Amount and formatting options"
// @Success 200 {object} dto.FormatAmountResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/format [post]
func (h *currencyHandler) formatAmount(c *gin.Context) {
	var req dto.FormatAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount: " + req.Amount})
		return
	}

	opts := utils.FormatOptions{
		Decimals:   req.Decimals,
		ShowSymbol: req.ShowSymbol,
	}
	if req.Position != nil {
		pos := domain.SymbolPosition(*req.Position)
		opts.Position = &pos
	}

	formatted := h.currencyService.FormatAmount(amount, req.CurrencyCode, opts)
	c.JSON(http.StatusOK, dto.FormatAmountResponse{Formatted: formatted})
}
