package models

import (
	"github.com/shopspring/decimal"
)

// TaxRate maps the tax_rates table.
type TaxRate struct {
	TaxRateID   string
	Name        string
	Code        string
	Rate        decimal.Decimal
	IsDefault   bool
	IsActive    bool
	AccountCode *string
	Description *string
	AuditFields
}
