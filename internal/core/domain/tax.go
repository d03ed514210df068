package domain

import "github.com/shopspring/decimal"

// TaxRate is a configurable tax (e.g. VAT) applied to amounts and tied to a
// collection account in the chart of accounts. At most one rate is the
// default at a time.
type TaxRate struct {
	TaxRateID   string          `json:"taxRateID"` // Primary Key (UUID)
	Name        string          `json:"name"`
	Code        string          `json:"code"` // e.g. "TVA18"
	Rate        decimal.Decimal `json:"rate"` // Percentage, e.g. 18 for 18%
	IsDefault   bool            `json:"isDefault"`
	IsActive    bool            `json:"isActive"`
	AccountCode string          `json:"accountCode,omitempty"` // Chart-of-accounts code collecting this tax
	Description string          `json:"description,omitempty"`
	AuditFields
}

// Apply returns the tax amount for the given base amount.
func (t *TaxRate) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(t.Rate).Div(decimal.NewFromInt(100))
}
