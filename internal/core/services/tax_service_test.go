package services_test

import (
	"context"
	"testing"

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

type TaxServiceTestSuite struct {
	suite.Suite
	mockTaxRepo *MockTaxRateRepository
	service     portssvc.TaxSvcFacade
	userID      string
}

func (suite *TaxServiceTestSuite) SetupTest() {
	suite.mockTaxRepo = new(MockTaxRateRepository)
	suite.service = services.NewTaxService(suite.mockTaxRepo)
	suite.userID = uuid.NewString()
}

// --- CreateTaxRate ---

func (suite *TaxServiceTestSuite) TestCreateTaxRate_Success() {
	ctx := context.Background()
	req := dto.CreateTaxRateRequest{
		Name:        "TVA 18%",
		Code:        "TVA18",
		Rate:        decimal.NewFromInt(18),
		AccountCode: "443",
	}

	suite.mockTaxRepo.On("SaveTaxRate", ctx, mock.MatchedBy(func(r domain.TaxRate) bool {
		return r.Code == "TVA18" && r.IsActive && !r.IsDefault
	})).Return(nil).Once()

	rate, err := suite.service.CreateTaxRate(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(rate.IsActive)
	suite.False(rate.IsDefault)
	suite.mockTaxRepo.AssertExpectations(suite.T())
}

func (suite *TaxServiceTestSuite) TestCreateTaxRate_AsDefault() {
	ctx := context.Background()
	req := dto.CreateTaxRateRequest{
		Name:      "TVA 18%",
		Code:      "TVA18",
		Rate:      decimal.NewFromInt(18),
		IsDefault: true,
	}

	suite.mockTaxRepo.On("SaveTaxRate", ctx, mock.Anything).Return(nil).Once()
	suite.mockTaxRepo.On("FindTaxRateByID", ctx, mock.AnythingOfType("string")).
		Return(&domain.TaxRate{Code: "TVA18", IsActive: true}, nil).Once()
	suite.mockTaxRepo.On("SetDefaultTaxRate", ctx, mock.AnythingOfType("string"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	rate, err := suite.service.CreateTaxRate(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(rate.IsDefault)
	suite.mockTaxRepo.AssertExpectations(suite.T())
}

func (suite *TaxServiceTestSuite) TestCreateTaxRate_NegativeRate() {
	ctx := context.Background()
	req := dto.CreateTaxRateRequest{Name: "Bad", Code: "BAD", Rate: decimal.NewFromInt(-1)}

	_, err := suite.service.CreateTaxRate(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNegativeTaxRate)
	suite.mockTaxRepo.AssertNotCalled(suite.T(), "SaveTaxRate", mock.Anything, mock.Anything)
}

func (suite *TaxServiceTestSuite) TestCreateTaxRate_ZeroRateAllowed() {
	// Exempt operations carry a legitimate 0% rate.
	ctx := context.Background()
	req := dto.CreateTaxRateRequest{Name: "Exonéré", Code: "EXO", Rate: decimal.Zero}

	suite.mockTaxRepo.On("SaveTaxRate", ctx, mock.Anything).Return(nil).Once()

	rate, err := suite.service.CreateTaxRate(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(rate.Rate.IsZero())
}

// --- UpdateTaxRate ---

func (suite *TaxServiceTestSuite) TestUpdateTaxRate_NegativeRateRejected() {
	ctx := context.Background()
	taxRateID := uuid.NewString()
	bad := decimal.NewFromInt(-5)

	suite.mockTaxRepo.On("FindTaxRateByID", ctx, taxRateID).
		Return(&domain.TaxRate{TaxRateID: taxRateID, Rate: decimal.NewFromInt(18)}, nil).Once()

	_, err := suite.service.UpdateTaxRate(ctx, taxRateID, dto.UpdateTaxRateRequest{Rate: &bad}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNegativeTaxRate)
	suite.mockTaxRepo.AssertNotCalled(suite.T(), "UpdateTaxRate", mock.Anything, mock.Anything)
}

// --- SetDefaultTaxRate ---

func (suite *TaxServiceTestSuite) TestSetDefaultTaxRate_InactiveRefused() {
	ctx := context.Background()
	taxRateID := uuid.NewString()

	suite.mockTaxRepo.On("FindTaxRateByID", ctx, taxRateID).
		Return(&domain.TaxRate{TaxRateID: taxRateID, Code: "OLD", IsActive: false}, nil).Once()

	err := suite.service.SetDefaultTaxRate(ctx, taxRateID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaxRepo.AssertNotCalled(suite.T(), "SetDefaultTaxRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaxServiceTestSuite) TestSetDefaultTaxRate_Active() {
	ctx := context.Background()
	taxRateID := uuid.NewString()

	suite.mockTaxRepo.On("FindTaxRateByID", ctx, taxRateID).
		Return(&domain.TaxRate{TaxRateID: taxRateID, Code: "TVA18", IsActive: true}, nil).Once()
	suite.mockTaxRepo.On("SetDefaultTaxRate", ctx, taxRateID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.SetDefaultTaxRate(ctx, taxRateID, suite.userID)

	suite.Require().NoError(err)
	suite.mockTaxRepo.AssertExpectations(suite.T())
}

// --- DeactivateTaxRate ---

func (suite *TaxServiceTestSuite) TestDeactivateTaxRate() {
	ctx := context.Background()
	taxRateID := uuid.NewString()

	suite.mockTaxRepo.On("SetTaxRateActive", ctx, taxRateID, false, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateTaxRate(ctx, taxRateID, suite.userID)

	suite.Require().NoError(err)
	suite.mockTaxRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestTaxService(t *testing.T) {
	suite.Run(t, new(TaxServiceTestSuite))
}
