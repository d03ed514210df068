package repositories

import (
	"context"
	"time"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// FiscalRepository persists fiscal years and their accounting periods.
// Multi-row invariants (single current year, period regeneration, year close
// cascade) are executed inside one database transaction.
type FiscalRepository interface {
	SaveFiscalYear(ctx context.Context, year domain.FiscalYear) error
	FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)
	FindCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error)
	ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error)
	// SetCurrentFiscalYear clears is_current on every year and sets it on the
	// given one, atomically.
	SetCurrentFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string, now time.Time) error
	// ReplacePeriods deletes the year's existing periods and inserts the new
	// set, atomically.
	ReplacePeriods(ctx context.Context, fiscalYearID string, periods []domain.AccountingPeriod) error
	ListPeriods(ctx context.Context, fiscalYearID string) ([]domain.AccountingPeriod, error)
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)
	SetPeriodClosed(ctx context.Context, periodID string, closed bool, updaterUserID string, now time.Time) error
	// CloseFiscalYear closes every period of the year and locks it, atomically.
	CloseFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string, now time.Time) error
}
