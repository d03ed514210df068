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

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo    *MockExchangeRateRepository
	mockCurrencySvc *MockCurrencyService
	service         portssvc.ExchangeRateSvcFacade
	userID          string
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, suite.mockCurrencySvc)
	suite.userID = uuid.NewString()
}

func storedRate(from, to string, rate float64) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.NewFromFloat(rate),
		AuditFields:      domain.AuditFields{LastUpdatedAt: time.Now().UTC()},
	}
}

// --- GetExchangeRate ---

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_SameCurrencyIsIdentity() {
	ctx := context.Background()

	rate, err := suite.service.GetExchangeRate(ctx, "XOF", "XOF")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_DirectRate() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindRate", ctx, "EUR", "XOF").Return(storedRate("EUR", "XOF", 655.957), nil).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "eur", "xof")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromFloat(655.957)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_MissingPair() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindRate", ctx, "GHS", "CDF").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetExchangeRate(ctx, "GHS", "CDF")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNoExchangeRate)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_BadCode() {
	ctx := context.Background()

	_, err := suite.service.GetExchangeRate(ctx, "EURO", "XOF")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateExchangeRate ---

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_WritesReciprocalPair() {
	ctx := context.Background()
	req := dto.UpdateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "XOF",
		Rate:             decimal.NewFromInt(600),
	}

	usd := domain.Currency{Code: "USD"}
	xof := domain.Currency{Code: "XOF"}
	suite.mockCurrencySvc.On("GetCurrencyInfo", "USD").Return(&usd).Once()
	suite.mockCurrencySvc.On("GetCurrencyInfo", "XOF").Return(&xof).Once()

	suite.mockRateRepo.On("SaveRatePair", ctx,
		mock.MatchedBy(func(r domain.ExchangeRate) bool {
			return r.FromCurrencyCode == "USD" && r.ToCurrencyCode == "XOF" && r.Rate.Equal(decimal.NewFromInt(600))
		}),
		mock.MatchedBy(func(inv domain.ExchangeRate) bool {
			expected := decimal.NewFromInt(1).Div(decimal.NewFromInt(600))
			return inv.FromCurrencyCode == "XOF" && inv.ToCurrencyCode == "USD" && inv.Rate.Equal(expected)
		}),
	).Return(nil).Once()

	saved, err := suite.service.UpdateExchangeRate(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("USD", saved.FromCurrencyCode)
	suite.Equal(suite.userID, saved.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_RejectsNonPositiveRate() {
	ctx := context.Background()
	req := dto.UpdateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "XOF",
		Rate:             decimal.Zero,
	}

	_, err := suite.service.UpdateExchangeRate(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRatePair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_RejectsSamePair() {
	ctx := context.Background()
	req := dto.UpdateExchangeRateRequest{
		FromCurrencyCode: "XOF",
		ToCurrencyCode:   "XOF",
		Rate:             decimal.NewFromInt(2),
	}

	_, err := suite.service.UpdateExchangeRate(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_RejectsUnknownCurrency() {
	ctx := context.Background()
	req := dto.UpdateExchangeRateRequest{
		FromCurrencyCode: "ZZZ",
		ToCurrencyCode:   "XOF",
		Rate:             decimal.NewFromInt(2),
	}

	suite.mockCurrencySvc.On("GetCurrencyInfo", "ZZZ").Return(nil).Once()

	_, err := suite.service.UpdateExchangeRate(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ConvertAmount ---

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount_UsesDirectRate() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindRate", ctx, "EUR", "XOF").Return(storedRate("EUR", "XOF", 655.957), nil).Once()

	converted, err := suite.service.ConvertAmount(ctx, decimal.NewFromInt(100), "EUR", "XOF")

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromFloat(65595.7)))
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount_SameCurrency() {
	ctx := context.Background()
	amount := decimal.NewFromFloat(123.45)

	converted, err := suite.service.ConvertAmount(ctx, amount, "USD", "USD")

	suite.Require().NoError(err)
	suite.True(converted.Equal(amount))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount_MissingRateIsNotZero() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindRate", ctx, "NGN", "GHS").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ConvertAmount(ctx, decimal.NewFromInt(50), "NGN", "GHS")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNoExchangeRate)
}

// --- Caching ---

func (suite *ExchangeRateServiceTestSuite) TestGetAllExchangeRates_CachesUntilInvalidated() {
	ctx := context.Background()
	rates := []domain.ExchangeRate{*storedRate("EUR", "XOF", 655.957)}

	suite.mockRateRepo.On("ListRates", ctx).Return(rates, nil).Once()

	first, err := suite.service.GetAllExchangeRates(ctx)
	suite.Require().NoError(err)
	second, err := suite.service.GetAllExchangeRates(ctx)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "ListRates", 1)

	// An update invalidates the cache, so the next read reloads.
	usd := domain.Currency{Code: "USD"}
	xof := domain.Currency{Code: "XOF"}
	suite.mockCurrencySvc.On("GetCurrencyInfo", "USD").Return(&usd).Once()
	suite.mockCurrencySvc.On("GetCurrencyInfo", "XOF").Return(&xof).Once()
	suite.mockRateRepo.On("SaveRatePair", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	_, err = suite.service.UpdateExchangeRate(ctx, dto.UpdateExchangeRateRequest{
		FromCurrencyCode: "USD", ToCurrencyCode: "XOF", Rate: decimal.NewFromInt(600),
	}, suite.userID)
	suite.Require().NoError(err)

	suite.mockRateRepo.On("ListRates", ctx).Return(rates, nil).Once()
	_, err = suite.service.GetAllExchangeRates(ctx)
	suite.Require().NoError(err)
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "ListRates", 2)
}

// --- Run Test Suite ---

func TestExchangeRateService(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
