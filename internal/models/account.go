package models

import (
	"github.com/shopspring/decimal"
)

// Account maps the accounting_accounts table.
type Account struct {
	AccountID   string
	Code        string
	Name        string
	AccountType string
	Balance     decimal.Decimal
	IsActive    bool
	ParentCode  *string
	Description *string
	AuditFields
}
