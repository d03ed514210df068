package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	Other     AccountType = "OTHER"
)

// Account represents one node of the chart of accounts. Codes are
// hierarchical strings ("5", "52", "52000000"); the level is derived from
// the code length for display grouping.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	ParentCode  string          `json:"parentCode,omitempty"`
	Description string          `json:"description,omitempty"`
	AuditFields
}

// Level buckets the account by code length: 1 for up to two characters,
// 2 for up to four, 3 for anything longer. Used for indentation and
// grouping, not enforcement.
func (a *Account) Level() int {
	return CalculateLevel(a.Code)
}

// CalculateLevel derives the display level from a raw account code.
func CalculateLevel(code string) int {
	switch {
	case len(code) <= 2:
		return 1
	case len(code) <= 4:
		return 2
	default:
		return 3
	}
}
