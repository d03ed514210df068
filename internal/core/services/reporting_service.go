package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// reportingService implements read-only statements over validated entries.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	fiscalRepo    portsrepo.FiscalRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, fiscalRepo portsrepo.FiscalRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		fiscalRepo:    fiscalRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance aggregates validated journal lines per account. A period ID
// resolves to the period's date range and overrides explicit dates.
func (s *reportingService) TrialBalance(ctx context.Context, params dto.TrialBalanceParams) ([]domain.TrialBalanceRow, error) {
	dateFrom, dateTo := params.DateFrom, params.DateTo
	if params.PeriodID != "" {
		period, err := s.fiscalRepo.FindPeriodByID(ctx, params.PeriodID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve accounting period %s: %w", params.PeriodID, err)
		}
		dateFrom, dateTo = &period.StartDate, &period.EndDate
	}

	rows, err := s.reportingRepo.TrialBalance(ctx, dateFrom, dateTo)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance")
		return nil, fmt.Errorf("failed to compute trial balance: %w", err)
	}

	s.LogDebug(ctx, "Trial balance computed", slog.Int("rows", len(rows)))
	return rows, nil
}
