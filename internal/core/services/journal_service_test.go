package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/core/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalSvcFacade
	bankAccount     domain.Account
	salesAccount    domain.Account
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)

	suite.userID = uuid.NewString()
	suite.bankAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "521",
		Name:        "Banques locales",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.salesAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "701",
		Name:        "Ventes de marchandises",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Reference:    "JRN-2025-0042",
		Date:         time.Now(),
		Description:  "Vente au comptant",
		CurrencyCode: "XOF",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "521", Debit: decimal.NewFromInt(450000)},
			{AccountCode: "701", Credit: decimal.NewFromInt(450000)},
		},
	}
}

// --- CreateEntry ---

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "521").Return(&suite.bankAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "701").Return(&suite.salesAccount, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.StatusPending, entry.Status)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.Len(entry.Lines, 2)
	suite.Equal("Banques locales", entry.Lines[0].AccountName)
	suite.True(entry.IsBalanced())

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnbalancedStillPendingAllowed() {
	// An unbalanced draft may be stored; balance is enforced at validation.
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[1].Credit = decimal.NewFromInt(440000)

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "521").Return(&suite.bankAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "701").Return(&suite.salesAccount, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, entry.Status)
	suite.False(entry.IsBalanced())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_LessThanTwoLines() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines = req.Lines[:1]

	_, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryMinLines)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnknownCurrency() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.CurrencyCode = "XXX"

	_, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_LineWithBothSides() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[0].Credit = decimal.NewFromInt(10)

	_, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrLineAmounts)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_LineWithNeitherSide() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[0].Debit = decimal.Zero

	_, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrLineAmounts)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NegativeAmount() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[0].Debit = decimal.NewFromInt(-5)

	_, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrLineAmounts)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_AccountNotFound() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "521").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InactiveAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()
	inactive := suite.bankAccount
	inactive.IsActive = false

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "521").Return(&inactive, nil).Once()

	_, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SaveError() {
	ctx := context.Background()
	req := suite.balancedRequest()
	repoErr := assert.AnError

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "521").Return(&suite.bankAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "701").Return(&suite.salesAccount, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).Return(repoErr).Once()

	_, err := suite.service.CreateEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Contains(err.Error(), repoErr.Error())
}

// --- ValidateEntry ---

func (suite *JournalServiceTestSuite) pendingEntry(debit, credit int64) *domain.JournalEntry {
	entryID := uuid.NewString()
	return &domain.JournalEntry{
		EntryID:      entryID,
		Reference:    "JRN-2025-0007",
		EntryDate:    time.Now(),
		CurrencyCode: "XOF",
		Status:       domain.StatusPending,
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "521", Debit: decimal.NewFromInt(debit)},
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "701", Credit: decimal.NewFromInt(credit)},
		},
	}
}

func (suite *JournalServiceTestSuite) TestValidateEntry_Success() {
	ctx := context.Background()
	entry := suite.pendingEntry(450000, 450000)
	lines := entry.Lines

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatus", ctx, entry.EntryID, domain.StatusValidated,
		mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	validated, err := suite.service.ValidateEntry(ctx, entry.EntryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusValidated, validated.Status)
	suite.Require().NotNil(validated.ValidatedBy)
	suite.Equal(suite.userID, *validated.ValidatedBy)
	suite.NotNil(validated.ValidatedAt)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestValidateEntry_Unbalanced() {
	ctx := context.Background()
	entry := suite.pendingEntry(450000, 440000)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(entry.Lines, nil).Once()

	_, err := suite.service.ValidateEntry(ctx, entry.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnbalancedEntry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateEntryStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestValidateEntry_AlreadyValidated() {
	ctx := context.Background()
	entry := suite.pendingEntry(100, 100)
	entry.Status = domain.StatusValidated

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(entry.Lines, nil).Once()

	_, err := suite.service.ValidateEntry(ctx, entry.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryNotPending)
}

func (suite *JournalServiceTestSuite) TestValidateEntry_CanceledIsTerminal() {
	ctx := context.Background()
	entry := suite.pendingEntry(100, 100)
	entry.Status = domain.StatusCanceled

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(entry.Lines, nil).Once()

	_, err := suite.service.ValidateEntry(ctx, entry.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryNotPending)
}

// --- CancelEntry / DeleteEntry ---

func (suite *JournalServiceTestSuite) TestCancelEntry_Success() {
	ctx := context.Background()
	entry := suite.pendingEntry(100, 100)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatus", ctx, entry.EntryID, domain.StatusCanceled,
		(*string)(nil), (*time.Time)(nil), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	canceled, err := suite.service.CancelEntry(ctx, entry.EntryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCanceled, canceled.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCancelEntry_NotPending() {
	ctx := context.Background()
	entry := suite.pendingEntry(100, 100)
	entry.Status = domain.StatusValidated

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.CancelEntry(ctx, entry.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryNotPending)
}

func (suite *JournalServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	entry := suite.pendingEntry(100, 100)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("DeleteEntry", ctx, entry.EntryID).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, entry.EntryID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDeleteEntry_ValidatedIsImmutable() {
	ctx := context.Background()
	entry := suite.pendingEntry(100, 100)
	entry.Status = domain.StatusValidated

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	err := suite.service.DeleteEntry(ctx, entry.EntryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryNotPending)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

// --- UpdateEntry ---

func (suite *JournalServiceTestSuite) TestUpdateEntry_NotPending() {
	ctx := context.Background()
	entry := suite.pendingEntry(100, 100)
	entry.Status = domain.StatusCanceled
	ref := "JRN-NEW"

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.UpdateEntry(ctx, entry.EntryID, dto.UpdateJournalEntryRequest{Reference: &ref}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryNotPending)
}

func (suite *JournalServiceTestSuite) TestUpdateEntry_ReplacesLines() {
	ctx := context.Background()
	entry := suite.pendingEntry(100, 100)

	newLines := []dto.JournalLineRequest{
		{AccountCode: "521", Debit: decimal.NewFromInt(250)},
		{AccountCode: "701", Credit: decimal.NewFromInt(250)},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "521").Return(&suite.bankAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "701").Return(&suite.salesAccount, nil).Once()
	suite.mockJournalRepo.On("UpdateEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(ctx, entry.EntryID, dto.UpdateJournalEntryRequest{Lines: newLines}, suite.userID)

	suite.Require().NoError(err)
	suite.Len(updated.Lines, 2)
	suite.True(updated.Lines[0].Debit.Equal(decimal.NewFromInt(250)))
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

// --- ListEntries ---

func (suite *JournalServiceTestSuite) TestListEntries_StatusMapping() {
	ctx := context.Background()

	suite.mockJournalRepo.On("ListEntries", ctx, mock.MatchedBy(func(f portsrepo.JournalEntryFilter) bool {
		return f.Status == domain.StatusValidated && f.SortBy == "date" && f.SortDesc
	})).Return([]domain.JournalEntry{}, nil).Once()

	_, err := suite.service.ListEntries(ctx, dto.ListJournalEntriesParams{Status: "validated"})

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_UnknownStatus() {
	ctx := context.Background()

	_, err := suite.service.ListEntries(ctx, dto.ListJournalEntriesParams{Status: "draft"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListEntries_AscendingSort() {
	ctx := context.Background()

	suite.mockJournalRepo.On("ListEntries", ctx, mock.MatchedBy(func(f portsrepo.JournalEntryFilter) bool {
		return f.SortBy == "amount" && !f.SortDesc && f.Status == ""
	})).Return([]domain.JournalEntry{}, nil).Once()

	_, err := suite.service.ListEntries(ctx, dto.ListJournalEntriesParams{Status: "all", SortBy: "amount", SortDir: "asc"})

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
