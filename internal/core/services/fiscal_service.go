package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

var (
	// ErrFiscalYearLocked blocks any mutation of a locked fiscal year or its
	// periods.
	ErrFiscalYearLocked = errors.New("fiscal year is locked")
	// ErrInvalidDateRange rejects a fiscal year whose end precedes its start.
	ErrInvalidDateRange = errors.New("fiscal year end date must be after start date")
	// ErrInvalidPeriodType rejects an unknown period type.
	ErrInvalidPeriodType = errors.New("invalid period type")
)

// fiscalService implements fiscal year and accounting period lifecycle.
type fiscalService struct {
	BaseService
	fiscalRepo portsrepo.FiscalRepository
}

// NewFiscalService creates a new fiscal service.
func NewFiscalService(fiscalRepo portsrepo.FiscalRepository) portssvc.FiscalSvcFacade {
	return &fiscalService{fiscalRepo: fiscalRepo}
}

var _ portssvc.FiscalSvcFacade = (*fiscalService)(nil)

// CreateFiscalYear opens a new fiscal year, optionally generating its periods
// and making it current in the same call.
func (s *fiscalService) CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	now := time.Now().UTC()
	year := domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Name:         req.Name,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.fiscalRepo.SaveFiscalYear(ctx, year); err != nil {
		s.LogError(ctx, err, "Failed to save fiscal year", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save fiscal year: %w", err)
	}

	if req.PeriodType != "" {
		if _, err := s.GeneratePeriods(ctx, year.FiscalYearID, domain.PeriodType(req.PeriodType), creatorUserID); err != nil {
			return nil, err
		}
	}
	if req.SetCurrent {
		if err := s.SetAsCurrent(ctx, year.FiscalYearID, creatorUserID); err != nil {
			return nil, err
		}
		year.IsCurrent = true
	}

	s.LogInfo(ctx, "Fiscal year created", slog.String("fiscal_year_id", year.FiscalYearID), slog.String("name", year.Name))
	return &year, nil
}

// GetFiscalYearByID fetches one fiscal year.
func (s *fiscalService) GetFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	year, err := s.fiscalRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		}
		return nil, fmt.Errorf("failed to find fiscal year %s: %w", fiscalYearID, err)
	}
	return year, nil
}

// GetCurrentFiscalYear returns the year flagged as current.
func (s *fiscalService) GetCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error) {
	year, err := s.fiscalRepo.FindCurrentFiscalYear(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find current fiscal year")
		}
		return nil, fmt.Errorf("failed to find current fiscal year: %w", err)
	}
	return year, nil
}

// ListFiscalYears returns all fiscal years, newest first.
func (s *fiscalService) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	years, err := s.fiscalRepo.ListFiscalYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal years")
		return nil, fmt.Errorf("failed to list fiscal years: %w", err)
	}
	return years, nil
}

// SetAsCurrent makes the given year current. The repository clears the flag
// on every other year in the same transaction, so exactly one year is current
// afterwards.
func (s *fiscalService) SetAsCurrent(ctx context.Context, fiscalYearID string, updaterUserID string) error {
	year, err := s.fiscalRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return fmt.Errorf("failed to find fiscal year %s: %w", fiscalYearID, err)
	}
	if year.IsLocked {
		return fmt.Errorf("%w: %s", ErrFiscalYearLocked, year.Name)
	}

	if err := s.fiscalRepo.SetCurrentFiscalYear(ctx, fiscalYearID, updaterUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to set current fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		return fmt.Errorf("failed to set current fiscal year: %w", err)
	}

	s.LogInfo(ctx, "Current fiscal year changed", slog.String("fiscal_year_id", fiscalYearID))
	return nil
}

// GeneratePeriods partitions the fiscal year into contiguous periods of the
// given type and replaces any existing ones. The last period is clamped to the
// year's end date, so an off-cycle year still partitions cleanly.
func (s *fiscalService) GeneratePeriods(ctx context.Context, fiscalYearID string, periodType domain.PeriodType, creatorUserID string) ([]domain.AccountingPeriod, error) {
	step := periodType.Months()
	if step == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidPeriodType, periodType)
	}

	year, err := s.fiscalRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to find fiscal year %s: %w", fiscalYearID, err)
	}
	if year.IsLocked {
		return nil, fmt.Errorf("%w: %s", ErrFiscalYearLocked, year.Name)
	}

	now := time.Now().UTC()
	var periods []domain.AccountingPeriod
	sequence := 1
	for start := year.StartDate; !start.After(year.EndDate); start = start.AddDate(0, step, 0) {
		end := start.AddDate(0, step, 0).AddDate(0, 0, -1)
		if end.After(year.EndDate) {
			end = year.EndDate
		}
		periods = append(periods, domain.AccountingPeriod{
			PeriodID:     uuid.NewString(),
			FiscalYearID: fiscalYearID,
			Name:         periodName(periodType, sequence, start),
			Type:         periodType,
			StartDate:    start,
			EndDate:      end,
			Sequence:     sequence,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		})
		sequence++
	}

	if err := s.fiscalRepo.ReplacePeriods(ctx, fiscalYearID, periods); err != nil {
		s.LogError(ctx, err, "Failed to replace accounting periods", slog.String("fiscal_year_id", fiscalYearID))
		return nil, fmt.Errorf("failed to replace accounting periods: %w", err)
	}

	s.LogInfo(ctx, "Accounting periods generated",
		slog.String("fiscal_year_id", fiscalYearID),
		slog.String("type", string(periodType)),
		slog.Int("count", len(periods)))
	return periods, nil
}

// periodName labels a period for display: month periods by month and year,
// quarters and semesters by ordinal.
func periodName(t domain.PeriodType, sequence int, start time.Time) string {
	switch t {
	case domain.PeriodMonth:
		return start.Format("January 2006")
	case domain.PeriodQuarter:
		return fmt.Sprintf("Q%d %d", sequence, start.Year())
	case domain.PeriodSemester:
		return fmt.Sprintf("S%d %d", sequence, start.Year())
	default:
		return fmt.Sprintf("Period %d", sequence)
	}
}

// ListPeriods returns the year's periods ordered by sequence.
func (s *fiscalService) ListPeriods(ctx context.Context, fiscalYearID string) ([]domain.AccountingPeriod, error) {
	periods, err := s.fiscalRepo.ListPeriods(ctx, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounting periods", slog.String("fiscal_year_id", fiscalYearID))
		return nil, fmt.Errorf("failed to list accounting periods: %w", err)
	}
	return periods, nil
}

// ClosePeriod closes a single period. Idempotent for already-closed periods.
func (s *fiscalService) ClosePeriod(ctx context.Context, periodID string, updaterUserID string) error {
	return s.setPeriodClosed(ctx, periodID, true, updaterUserID)
}

// ReopenPeriod reopens a closed period, unless its fiscal year is locked.
func (s *fiscalService) ReopenPeriod(ctx context.Context, periodID string, updaterUserID string) error {
	return s.setPeriodClosed(ctx, periodID, false, updaterUserID)
}

func (s *fiscalService) setPeriodClosed(ctx context.Context, periodID string, closed bool, updaterUserID string) error {
	period, err := s.fiscalRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return fmt.Errorf("failed to find accounting period %s: %w", periodID, err)
	}

	year, err := s.fiscalRepo.FindFiscalYearByID(ctx, period.FiscalYearID)
	if err != nil {
		return fmt.Errorf("failed to find fiscal year %s: %w", period.FiscalYearID, err)
	}
	if year.IsLocked {
		return fmt.Errorf("%w: %s", ErrFiscalYearLocked, year.Name)
	}

	if err := s.fiscalRepo.SetPeriodClosed(ctx, periodID, closed, updaterUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to change period state", slog.String("period_id", periodID), slog.Bool("closed", closed))
		return fmt.Errorf("failed to change period state: %w", err)
	}

	s.LogInfo(ctx, "Accounting period state changed", slog.String("period_id", periodID), slog.Bool("closed", closed))
	return nil
}

// CloseFiscalYear closes every period of the year and locks it. The lock is
// terminal; a locked year cannot be made current or have periods reopened.
func (s *fiscalService) CloseFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string) error {
	year, err := s.fiscalRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return fmt.Errorf("failed to find fiscal year %s: %w", fiscalYearID, err)
	}
	if year.IsLocked {
		return fmt.Errorf("%w: %s already closed", ErrFiscalYearLocked, year.Name)
	}

	if err := s.fiscalRepo.CloseFiscalYear(ctx, fiscalYearID, updaterUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to close fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		return fmt.Errorf("failed to close fiscal year: %w", err)
	}

	s.LogInfo(ctx, "Fiscal year closed", slog.String("fiscal_year_id", fiscalYearID), slog.String("name", year.Name))
	return nil
}
