package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/dto"
	"github.com/ledgerline/ledgerline/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListRecords(ctx context.Context, accountID string, limit int) ([]domain.Record, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockAccountService) ListAssets(ctx context.Context, accountID string) ([]domain.Asset, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAccountService) GetAsset(ctx context.Context, accountID, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, accountID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAccountService) UpdateCashFunds(ctx context.Context, accountID string, amount decimal.Decimal, changeType domain.RecordChangeType) error {
	args := m.Called(ctx, accountID, amount, changeType)
	return args.Error(0)
}

func (m *MockAccountService) UpdateInvestmentWorth(ctx context.Context, accountID string, delta decimal.Decimal) error {
	args := m.Called(ctx, accountID, delta)
	return args.Error(0)
}

func (m *MockAccountService) UpdateDebtTotal(ctx context.Context, accountID string, amount decimal.Decimal, changeType domain.RecordChangeType) error {
	args := m.Called(ctx, accountID, amount, changeType)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite Setup ---

type AccountHandlerTestSuite struct {
	suite.Suite
	mockService *MockAccountService
	router      *gin.Engine
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockAccountService)
	handler := handlers.NewAccountHandler(suite.mockService)

	suite.router = gin.New()
	api := suite.router.Group("/api/v1")
	api.POST("/accounts", handler.CreateAccount)
	api.GET("/accounts/:id", handler.GetAccount)
	api.GET("/accounts/:id/records", handler.ListRecords)
	api.GET("/accounts/:id/assets/:assetID", handler.GetAsset)
}

func (suite *AccountHandlerTestSuite) testAccount() *domain.Account {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return &domain.Account{
		AccountID:       "acc-1",
		BookID:          "book-1",
		Name:            "Checking",
		Purpose:         "daily spending",
		CashFunds:       decimal.RequireFromString("100.25"),
		InvestmentWorth: decimal.Zero,
		DebtTotal:       decimal.Zero,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestGetAccount_Success() {
	suite.mockService.On("GetAccountByID", mock.Anything, "acc-1").Return(suite.testAccount(), nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/acc-1", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal("Checking", resp.Name)
	suite.True(resp.CashFunds.Equal(decimal.RequireFromString("100.25")))
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockService.On("GetAccountByID", mock.Anything, "acc-missing").
		Return(nil, fmt.Errorf("%w: account", apperrors.ErrNotFound)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/acc-missing", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	suite.mockService.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(suite.testAccount(), nil).Once()

	body := `{"name":"Checking","purpose":"daily spending","cashFunds":"100.25"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingName() {
	body := `{"purpose":"daily spending"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAsset_Success() {
	asset := &domain.Asset{
		AssetID:     "asset-1",
		AccountID:   "acc-1",
		Name:        "Total Stock Market Index",
		Quantity:    decimal.RequireFromString("10.5"),
		MarketValue: decimal.RequireFromString("110.00"),
	}
	suite.mockService.On("GetAsset", mock.Anything, "acc-1", "asset-1").Return(asset, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/acc-1/assets/asset-1", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp domain.Asset
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Total Stock Market Index", resp.Name)
}

func (suite *AccountHandlerTestSuite) TestGetAsset_NotFound() {
	suite.mockService.On("GetAsset", mock.Anything, "acc-1", "asset-missing").
		Return(nil, fmt.Errorf("%w: asset", apperrors.ErrNotFound)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/acc-1/assets/asset-missing", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListRecords_PassesLimit() {
	suite.mockService.On("ListRecords", mock.Anything, "acc-1", 25).Return([]domain.Record{}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/acc-1/records?limit=25", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
