package dto

import (
	"time"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// CreateFiscalYearRequest opens a new fiscal year. When PeriodType is set,
// periods are generated immediately.
type CreateFiscalYearRequest struct {
	Name       string    `json:"name" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
	PeriodType string    `json:"periodType" binding:"omitempty,oneof=MONTH QUARTER SEMESTER"`
	SetCurrent bool      `json:"setCurrent"`
}

// GeneratePeriodsRequest regenerates the periods of a fiscal year.
type GeneratePeriodsRequest struct {
	Type string `json:"type" binding:"required,oneof=MONTH QUARTER SEMESTER"`
}

// FiscalYearResponse describes one fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string    `json:"fiscalYearID"`
	Name         string    `json:"name"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	IsCurrent    bool      `json:"isCurrent"`
	IsLocked     bool      `json:"isLocked"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AccountingPeriodResponse describes one period of a fiscal year.
type AccountingPeriodResponse struct {
	PeriodID     string    `json:"periodID"`
	FiscalYearID string    `json:"fiscalYearID"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	IsClosed     bool      `json:"isClosed"`
	Sequence     int       `json:"sequence"`
}

// ToFiscalYearResponse converts a domain FiscalYear to its response DTO.
func ToFiscalYearResponse(y *domain.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		FiscalYearID: y.FiscalYearID,
		Name:         y.Name,
		StartDate:    y.StartDate,
		EndDate:      y.EndDate,
		IsCurrent:    y.IsCurrent,
		IsLocked:     y.IsLocked,
		CreatedAt:    y.CreatedAt,
	}
}

// ToListFiscalYearResponse converts domain fiscal years to response DTOs.
func ToListFiscalYearResponse(years []domain.FiscalYear) []FiscalYearResponse {
	res := make([]FiscalYearResponse, len(years))
	for i := range years {
		res[i] = ToFiscalYearResponse(&years[i])
	}
	return res
}

// ToAccountingPeriodResponse converts a domain AccountingPeriod to its DTO.
func ToAccountingPeriodResponse(p *domain.AccountingPeriod) AccountingPeriodResponse {
	return AccountingPeriodResponse{
		PeriodID:     p.PeriodID,
		FiscalYearID: p.FiscalYearID,
		Name:         p.Name,
		Type:         string(p.Type),
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		IsClosed:     p.IsClosed,
		Sequence:     p.Sequence,
	}
}

// ToListAccountingPeriodResponse converts domain periods to response DTOs.
func ToListAccountingPeriodResponse(periods []domain.AccountingPeriod) []AccountingPeriodResponse {
	res := make([]AccountingPeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToAccountingPeriodResponse(&periods[i])
	}
	return res
}
