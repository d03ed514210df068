package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow aggregates validated journal lines for one account.
type TrialBalanceRow struct {
	AccountCode  string          `json:"accountCode"`
	AccountName  string          `json:"accountName"`
	AccountType  AccountType     `json:"accountType"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Balance      decimal.Decimal `json:"balance"` // debits - credits
}
