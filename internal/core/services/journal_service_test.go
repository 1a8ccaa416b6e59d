package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	"github.com/bizopshq/ledger_engine/internal/core/domain"
	portssvc "github.com/bizopshq/ledger_engine/internal/core/ports/services"
	"github.com/bizopshq/ledger_engine/internal/core/services"
	"github.com/bizopshq/ledger_engine/internal/dto"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalRepository
	mockSequenceRepo *MockSequenceRepository
	mockAccountRepo  *MockAccountRepository
	service          portssvc.JournalSvcFacade

	cashAccount    domain.Account
	revenueAccount domain.Account
	vatAccount     domain.Account
	headerAccount  domain.Account
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockSequenceRepo = new(MockSequenceRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	accountSvc := services.NewAccountService(suite.mockAccountRepo)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockSequenceRepo, accountSvc)

	suite.cashAccount = domain.Account{AccountID: uuid.NewString(), Code: "1110", Category: domain.Asset, IsActive: true}
	suite.revenueAccount = domain.Account{AccountID: uuid.NewString(), Code: "4100", Category: domain.Revenue, IsActive: true}
	suite.vatAccount = domain.Account{AccountID: uuid.NewString(), Code: "2150", Category: domain.Liability, IsActive: true}
	suite.headerAccount = domain.Account{AccountID: uuid.NewString(), Code: "1000", Category: domain.Asset, IsActive: true, IsHeader: true}
}

func (suite *JournalServiceTestSuite) expectAccounts(accounts ...domain.Account) {
	result := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		result[acc.AccountID] = acc
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.Anything).Return(result, nil).Once()
}

func (suite *JournalServiceTestSuite) validCreateRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		EntryDate:   time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC),
		Description: "Vehicle sale, cash",
		BranchCode:  "BD",
		Lines: []dto.EntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Side: domain.Debit, Amount: decimal.RequireFromString("1150.00")},
			{AccountID: suite.revenueAccount.AccountID, Side: domain.Credit, Amount: decimal.RequireFromString("1000.00")},
			{AccountID: suite.vatAccount.AccountID, Side: domain.Credit, Amount: decimal.RequireFromString("150.00")},
		},
	}
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	creator := uuid.NewString()
	req := suite.validCreateRequest()

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount, suite.vatAccount)
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Status == domain.Draft &&
			e.EntryNumber == "" &&
			e.TotalDebit == 115000 &&
			e.TotalCredit == 115000 &&
			e.EntryType == domain.EntryTypeManual
	}), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, creator)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.Draft, entry.Status)
	suite.Empty(entry.EntryNumber)
	suite.Len(entry.Lines, 3)
	suite.Equal(int64(115000), entry.Lines[0].Amount)
	suite.Equal(creator, entry.CreatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Unbalanced() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Lines[0].Amount = decimal.RequireFromString("1150.01")

	_, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SingleLine() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Lines = req.Lines[:1]

	_, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SingleAccountBothSides() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Lines = []dto.EntryLineRequest{
		{AccountID: suite.cashAccount.AccountID, Side: domain.Debit, Amount: decimal.RequireFromString("100.00")},
		{AccountID: suite.cashAccount.AccountID, Side: domain.Credit, Amount: decimal.RequireFromString("100.00")},
	}

	_, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_HeaderAccountRejected() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Lines[0].AccountID = suite.headerAccount.AccountID

	suite.expectAccounts(suite.headerAccount, suite.revenueAccount, suite.vatAccount)

	_, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "header")
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnknownAccount() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	// Cash account missing from the lookup result
	suite.expectAccounts(suite.revenueAccount, suite.vatAccount)

	_, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SubCentAmount() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Lines[0].Amount = decimal.RequireFromString("100.005")

	_, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) draftEntry() *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC),
		EntryType:   domain.EntryTypeManual,
		BranchCode:  "BD",
		Status:      domain.Draft,
		TotalDebit:  115000,
		TotalCredit: 115000,
	}
}

func (suite *JournalServiceTestSuite) draftLines(entryID string) []domain.JournalLine {
	return []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, LineNo: 1, AccountID: suite.cashAccount.AccountID, Side: domain.Debit, Amount: 115000},
		{LineID: uuid.NewString(), EntryID: entryID, LineNo: 2, AccountID: suite.revenueAccount.AccountID, Side: domain.Credit, Amount: 100000},
		{LineID: uuid.NewString(), EntryID: entryID, LineNo: 3, AccountID: suite.vatAccount.AccountID, Side: domain.Credit, Amount: 15000},
	}
}

func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	actor := uuid.NewString()
	entry := suite.draftEntry()
	lines := suite.draftLines(entry.EntryID)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockSequenceRepo.On("NextValue", ctx, mock.Anything, "JE", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).Return(int64(41), nil).Once()
	suite.mockJournalRepo.On("MarkPosted", ctx, mock.Anything, entry.EntryID, "JE-2025-0041", actor, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockJournalRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	posted, err := suite.service.PostEntry(ctx, entry.EntryID, actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, posted.Status)
	suite.Equal("JE-2025-0041", posted.EntryNumber)
	suite.Require().NotNil(posted.PostedAt)
	suite.Equal(actor, posted.PostedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockSequenceRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_AlreadyPosted() {
	ctx := context.Background()
	entry := suite.draftEntry()
	entry.Status = domain.Posted

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.PostEntry(ctx, entry.EntryID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockSequenceRepo.AssertNotCalled(suite.T(), "NextValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_ContentionPropagates() {
	ctx := context.Background()
	entry := suite.draftEntry()
	lines := suite.draftLines(entry.EntryID)

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockSequenceRepo.On("NextValue", ctx, mock.Anything, "JE", mock.Anything).Return(int64(0), apperrors.ErrContention).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.PostEntry(ctx, entry.EntryID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrContention)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "MarkPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestVoidEntry_Success() {
	ctx := context.Background()
	actor := uuid.NewString()
	entry := suite.draftEntry()
	entry.Status = domain.Posted
	entry.EntryNumber = "JE-2025-0041"

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("MarkVoided", ctx, entry.EntryID, actor, "duplicate capture", mock.AnythingOfType("time.Time")).Return(nil).Once()

	voided, err := suite.service.VoidEntry(ctx, entry.EntryID, actor, "duplicate capture")

	suite.Require().NoError(err)
	suite.Equal(domain.Void, voided.Status)
	suite.Equal("duplicate capture", voided.VoidReason)
	// Lines and totals stay untouched
	suite.Equal(int64(115000), voided.TotalDebit)
	suite.Equal("JE-2025-0041", voided.EntryNumber)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestVoidEntry_ReasonRequired() {
	ctx := context.Background()

	_, err := suite.service.VoidEntry(ctx, uuid.NewString(), uuid.NewString(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "MarkVoided", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestVoidEntry_DraftRejected() {
	ctx := context.Background()
	entry := suite.draftEntry()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.VoidEntry(ctx, entry.EntryID, uuid.NewString(), "mistake")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *JournalServiceTestSuite) TestUpdateEntry_PostedRejected() {
	ctx := context.Background()
	entry := suite.draftEntry()
	entry.Status = domain.Posted

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	desc := "amended"
	_, err := suite.service.UpdateEntry(ctx, entry.EntryID, dto.UpdateEntryRequest{Description: &desc}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *JournalServiceTestSuite) TestDeleteEntry_DraftSuccess() {
	ctx := context.Background()
	entry := suite.draftEntry()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("DeleteEntry", ctx, entry.EntryID).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, entry.EntryID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDeleteEntry_PostedRejected() {
	ctx := context.Background()
	entry := suite.draftEntry()
	entry.Status = domain.Posted

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	err := suite.service.DeleteEntry(ctx, entry.EntryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
