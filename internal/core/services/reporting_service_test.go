package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/core/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockFiscalRepo    *MockFiscalRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockFiscalRepo = new(MockFiscalRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockFiscalRepo)
}

func sampleRows() []domain.TrialBalanceRow {
	return []domain.TrialBalanceRow{
		{
			AccountCode:  "521",
			AccountName:  "Banques locales",
			AccountType:  domain.Asset,
			TotalDebits:  decimal.NewFromInt(450000),
			TotalCredits: decimal.Zero,
			Balance:      decimal.NewFromInt(450000),
		},
		{
			AccountCode:  "701",
			AccountName:  "Ventes de marchandises",
			AccountType:  domain.Revenue,
			TotalDebits:  decimal.Zero,
			TotalCredits: decimal.NewFromInt(450000),
			Balance:      decimal.NewFromInt(-450000),
		},
	}
}

// --- TrialBalance ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_ExplicitDates() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockReportingRepo.On("TrialBalance", ctx, &from, &to).Return(sampleRows(), nil).Once()

	rows, err := suite.service.TrialBalance(ctx, dto.TrialBalanceParams{DateFrom: &from, DateTo: &to})

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	// Grand totals agree, so the statement balances.
	suite.True(rows[0].TotalDebits.Equal(rows[1].TotalCredits))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_PeriodOverridesDates() {
	ctx := context.Background()
	explicitFrom := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	period := &domain.AccountingPeriod{
		PeriodID:  uuid.NewString(),
		StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockFiscalRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()
	suite.mockReportingRepo.On("TrialBalance", ctx, &period.StartDate, &period.EndDate).Return(sampleRows(), nil).Once()

	_, err := suite.service.TrialBalance(ctx, dto.TrialBalanceParams{
		DateFrom: &explicitFrom,
		PeriodID: period.PeriodID,
	})

	suite.Require().NoError(err)
	suite.mockFiscalRepo.AssertExpectations(suite.T())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_UnknownPeriod() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockFiscalRepo.On("FindPeriodByID", ctx, periodID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.TrialBalance(ctx, dto.TrialBalanceParams{PeriodID: periodID})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_NoBounds() {
	ctx := context.Background()

	suite.mockReportingRepo.On("TrialBalance", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.TrialBalanceRow{}, nil).Once()

	rows, err := suite.service.TrialBalance(ctx, dto.TrialBalanceParams{})

	suite.Require().NoError(err)
	suite.Empty(rows)
}

// --- Run Test Suite ---

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
