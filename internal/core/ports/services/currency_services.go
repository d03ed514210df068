package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/utils"
)

// CurrencySvcFacade exposes the static registry, the selected-currency
// preference and amount formatting.
type CurrencySvcFacade interface {
	// GetSelectedCurrency never fails; storage errors degrade to the default.
	GetSelectedCurrency(ctx context.Context) domain.Currency
	// SetSelectedCurrency persists the code as-is without registry validation.
	SetSelectedCurrency(ctx context.Context, code, updaterUserID string) error
	// GetCurrencyInfo is a pure registry lookup, nil for unknown codes.
	GetCurrencyInfo(code string) *domain.Currency
	ListCurrencies() []domain.Currency
	// FormatAmount never fails; unknown codes fall back to the bare number.
	FormatAmount(amount decimal.Decimal, code string, opts utils.FormatOptions) string
}
