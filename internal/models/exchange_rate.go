package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate maps the exchange_rates table.
type ExchangeRate struct {
	ExchangeRateID   string
	FromCurrencyCode string
	ToCurrencyCode   string
	Rate             decimal.Decimal
	AuditFields
}
