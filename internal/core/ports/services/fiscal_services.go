package services

import (
	"context"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// FiscalSvcFacade exposes fiscal year and accounting period lifecycle.
type FiscalSvcFacade interface {
	CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error)
	GetFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)
	GetCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error)
	ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error)
	// SetAsCurrent leaves exactly one fiscal year current.
	SetAsCurrent(ctx context.Context, fiscalYearID string, updaterUserID string) error
	// GeneratePeriods replaces any existing periods of the year.
	GeneratePeriods(ctx context.Context, fiscalYearID string, periodType domain.PeriodType, creatorUserID string) ([]domain.AccountingPeriod, error)
	ListPeriods(ctx context.Context, fiscalYearID string) ([]domain.AccountingPeriod, error)
	ClosePeriod(ctx context.Context, periodID string, updaterUserID string) error
	ReopenPeriod(ctx context.Context, periodID string, updaterUserID string) error
	// CloseFiscalYear closes every period and locks the year; terminal.
	CloseFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string) error
}
