package domain

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate between two currencies.
// Updating a pair also persists the reciprocal row, so every stored pair
// exists in both directions.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"` // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"` // Must be > 0
	AuditFields
}
