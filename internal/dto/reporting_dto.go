package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// TrialBalanceParams bounds the trial balance by entry date or by an
// accounting period. PeriodID wins when both are given.
type TrialBalanceParams struct {
	DateFrom *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"dateTo" time_format:"2006-01-02"`
	PeriodID string     `form:"periodID"`
}

// TrialBalanceRowResponse is one aggregated account line.
type TrialBalanceRowResponse struct {
	AccountCode  string          `json:"accountCode"`
	AccountName  string          `json:"accountName"`
	AccountType  string          `json:"accountType"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Balance      decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse is the full statement with grand totals.
type TrialBalanceResponse struct {
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  decimal.Decimal           `json:"totalDebits"`
	TotalCredits decimal.Decimal           `json:"totalCredits"`
}

// ToTrialBalanceResponse converts domain rows and computes grand totals.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		Rows:         make([]TrialBalanceRowResponse, len(rows)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for i, r := range rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountCode:  r.AccountCode,
			AccountName:  r.AccountName,
			AccountType:  string(r.AccountType),
			TotalDebits:  r.TotalDebits,
			TotalCredits: r.TotalCredits,
			Balance:      r.Balance,
		}
		resp.TotalDebits = resp.TotalDebits.Add(r.TotalDebits)
		resp.TotalCredits = resp.TotalCredits.Add(r.TotalCredits)
	}
	return resp
}
