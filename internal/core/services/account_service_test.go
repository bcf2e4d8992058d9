package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/core/services"
	"github.com/ledgerline/ledgerline/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryWithTx interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveBook(ctx context.Context, book domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateCashFundsInTx(ctx context.Context, tx pgx.Tx, accountID string, newTotal decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, tx, accountID, newTotal, updatedAt)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateInvestmentWorthInTx(ctx context.Context, tx pgx.Tx, accountID string, newTotal decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, tx, accountID, newTotal, updatedAt)
	return args.Error(0)
}

// MockAssetRepository is a mock type for the AssetRepositoryFacade interface
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssetsByAccountID(ctx context.Context, accountID string) ([]domain.Asset, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetByNameForUpdate(ctx context.Context, tx pgx.Tx, accountID, name string) (*domain.Asset, error) {
	args := m.Called(ctx, tx, accountID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) InsertAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	args := m.Called(ctx, tx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAssetValuesInTx(ctx context.Context, tx pgx.Tx, assetID string, quantity, marketValue decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, tx, assetID, quantity, marketValue, updatedAt)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccounts *MockAccountRepository
	mockAssets   *MockAssetRepository
	mockRecords  *MockRecordRepo
	service      portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockAssets = new(MockAssetRepository)
	suite.mockRecords = new(MockRecordRepo)
	suite.service = services.NewAccountService(suite.mockAccounts, suite.mockAssets, suite.mockRecords)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_NewBook() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:      "Checking",
		Purpose:   "daily spending",
		CashFunds: decimal.RequireFromString("100.005"),
	}

	var savedBook domain.Book
	suite.mockAccounts.On("SaveBook", ctx, mock.AnythingOfType("domain.Book")).
		Run(func(args mock.Arguments) { savedBook = args.Get(1).(domain.Book) }).
		Return(nil).Once()
	suite.mockAccounts.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(savedBook.BookID, account.BookID)
	// The book inherits the account name when none is given.
	suite.Equal("Checking", savedBook.Name)
	suite.Equal("100.01", account.CashFunds.StringFixed(2))
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ExistingBook() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{BookID: "book-1", Name: "Brokerage"}

	suite.mockAccounts.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("book-1", account.BookID)
	suite.mockAccounts.AssertNotCalled(suite.T(), "SaveBook", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateCashFunds_Credit() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "acc-1", CashFunds: decimal.RequireFromString("100.00")}

	suite.mockAccounts.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAccounts.On("FindAccountByIDForUpdate", ctx, nil, "acc-1").Return(account, nil).Once()
	suite.mockAccounts.On("UpdateCashFundsInTx", ctx, nil, "acc-1",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("57.83")) }),
		mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAccounts.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockAccounts.On("Rollback", ctx, nil).Return(nil).Maybe()

	err := suite.service.UpdateCashFunds(ctx, "acc-1", decimal.RequireFromString("42.17"), domain.CreditAccount)

	suite.Require().NoError(err)
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateCashFunds_MarketUpdateRejected() {
	ctx := context.Background()

	err := suite.service.UpdateCashFunds(ctx, "acc-1", decimal.NewFromInt(10), domain.MarketUpdate)

	suite.Require().ErrorIs(err, apperrors.ErrUnsupportedChangeType)
	// No transaction is ever opened for a rejected change type.
	suite.mockAccounts.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateDebtTotal_NotImplemented() {
	ctx := context.Background()

	err := suite.service.UpdateDebtTotal(ctx, "acc-1", decimal.NewFromInt(10), domain.CreditAccount)

	suite.Require().ErrorIs(err, apperrors.ErrNotImplemented)
}

func (suite *AccountServiceTestSuite) TestListRecords_UnknownAccount() {
	ctx := context.Background()

	suite.mockAccounts.On("FindAccountByID", ctx, "acc-missing").
		Return(nil, fmt.Errorf("%w: account", apperrors.ErrNotFound)).Once()

	_, err := suite.service.ListRecords(ctx, "acc-missing", 10)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRecords.AssertNotCalled(suite.T(), "ListRecordsByAccountID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAsset() {
	ctx := context.Background()
	asset := &domain.Asset{AssetID: "asset-1", AccountID: "acc-1", Name: "Total Stock Market Index"}

	suite.mockAssets.On("FindAssetByID", ctx, "asset-1").Return(asset, nil).Once()

	got, err := suite.service.GetAsset(ctx, "acc-1", "asset-1")

	suite.Require().NoError(err)
	suite.Equal("Total Stock Market Index", got.Name)
}

func (suite *AccountServiceTestSuite) TestGetAsset_WrongAccount() {
	ctx := context.Background()
	asset := &domain.Asset{AssetID: "asset-1", AccountID: "acc-other"}

	suite.mockAssets.On("FindAssetByID", ctx, "asset-1").Return(asset, nil).Once()

	_, err := suite.service.GetAsset(ctx, "acc-1", "asset-1")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
