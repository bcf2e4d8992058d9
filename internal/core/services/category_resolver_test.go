package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockRecordReader is a mock type for the RecordReader interface
type MockRecordReader struct {
	mock.Mock
}

func (m *MockRecordReader) FindRecordIDByKey(ctx context.Context, key domain.RecordKey) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRecordReader) ListRecordsByAccountID(ctx context.Context, accountID string, limit int) ([]domain.Record, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordReader) FindCategoryForCounterparty(ctx context.Context, accountID, business, note string) (*domain.CategoryChoice, error) {
	args := m.Called(ctx, accountID, business, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryChoice), args.Error(1)
}

func (m *MockRecordReader) ListDistinctCategories(ctx context.Context, accountID string) ([]domain.CategoryChoice, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryChoice), args.Error(1)
}

// MockDecider is a mock type for the CategoryDecider interface
type MockDecider struct {
	mock.Mock
}

func (m *MockDecider) Decide(ctx context.Context, prompt portssvc.CategoryPrompt) (portssvc.CategoryDecision, error) {
	args := m.Called(ctx, prompt)
	return args.Get(0).(portssvc.CategoryDecision), args.Error(1)
}

// --- Test Suite Setup ---

type CategoryResolverTestSuite struct {
	suite.Suite
	mockRepo    *MockRecordReader
	mockDecider *MockDecider
	resolver    portssvc.CategoryResolverSvc
	candidate   domain.CanonicalRecord
}

func (suite *CategoryResolverTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecordReader)
	suite.mockDecider = new(MockDecider)
	suite.resolver = services.NewCategoryResolver(suite.mockRepo)
	suite.candidate = domain.CanonicalRecord{
		Amount:          decimal.NewFromFloat(42.17),
		Business:        "WINCO",
		Note:            "POS Debit",
		TransactionDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *CategoryResolverTestSuite) TestResolve_HistoryHit() {
	ctx := context.Background()
	known := &domain.CategoryChoice{Category: "Groceries", ChangeType: domain.CreditAccount}

	suite.mockRepo.On("FindCategoryForCounterparty", ctx, "acc-1", "WINCO", "POS Debit").Return(known, nil).Once()

	choice, err := suite.resolver.Resolve(ctx, "acc-1", suite.candidate, suite.mockDecider)

	suite.Require().NoError(err)
	suite.Equal(*known, choice)
	// The decider is never consulted when history answers.
	suite.mockDecider.AssertNotCalled(suite.T(), "Decide", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryResolverTestSuite) TestResolve_DeciderPicksExistingChoice() {
	ctx := context.Background()
	choices := []domain.CategoryChoice{
		{Category: "Groceries", ChangeType: domain.CreditAccount},
		{Category: "Paycheck", ChangeType: domain.DebitAccount},
	}

	suite.mockRepo.On("FindCategoryForCounterparty", ctx, "acc-1", "WINCO", "POS Debit").
		Return(nil, fmt.Errorf("%w: no category", apperrors.ErrNotFound)).Once()
	suite.mockRepo.On("ListDistinctCategories", ctx, "acc-1").Return(choices, nil).Once()
	suite.mockDecider.On("Decide", ctx, mock.AnythingOfType("services.CategoryPrompt")).
		Return(portssvc.CategoryDecision{SelectedIndex: 2}, nil).Once()

	choice, err := suite.resolver.Resolve(ctx, "acc-1", suite.candidate, suite.mockDecider)

	suite.Require().NoError(err)
	suite.Equal(choices[1], choice)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockDecider.AssertExpectations(suite.T())
}

func (suite *CategoryResolverTestSuite) TestResolve_DeciderCreatesNewCategory() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategoryForCounterparty", ctx, "acc-1", "WINCO", "POS Debit").
		Return(nil, fmt.Errorf("%w: no category", apperrors.ErrNotFound)).Once()
	suite.mockRepo.On("ListDistinctCategories", ctx, "acc-1").Return([]domain.CategoryChoice{}, nil).Once()
	suite.mockDecider.On("Decide", ctx, mock.AnythingOfType("services.CategoryPrompt")).
		Return(portssvc.CategoryDecision{NewCategory: "Groceries", NewChangeType: domain.CreditAccount}, nil).Once()

	choice, err := suite.resolver.Resolve(ctx, "acc-1", suite.candidate, suite.mockDecider)

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryChoice{Category: "Groceries", ChangeType: domain.CreditAccount}, choice)
}

func (suite *CategoryResolverTestSuite) TestResolve_InvalidDecisionIsReRequested() {
	ctx := context.Background()
	choices := []domain.CategoryChoice{{Category: "Groceries", ChangeType: domain.CreditAccount}}

	suite.mockRepo.On("FindCategoryForCounterparty", ctx, "acc-1", "WINCO", "POS Debit").
		Return(nil, fmt.Errorf("%w: no category", apperrors.ErrNotFound)).Once()
	suite.mockRepo.On("ListDistinctCategories", ctx, "acc-1").Return(choices, nil).Once()
	// Out-of-range index first, then a valid selection.
	suite.mockDecider.On("Decide", ctx, mock.AnythingOfType("services.CategoryPrompt")).
		Return(portssvc.CategoryDecision{SelectedIndex: 9}, nil).Once()
	suite.mockDecider.On("Decide", ctx, mock.AnythingOfType("services.CategoryPrompt")).
		Return(portssvc.CategoryDecision{SelectedIndex: 1}, nil).Once()

	choice, err := suite.resolver.Resolve(ctx, "acc-1", suite.candidate, suite.mockDecider)

	suite.Require().NoError(err)
	suite.Equal(choices[0], choice)
	suite.mockDecider.AssertNumberOfCalls(suite.T(), "Decide", 2)
}

func (suite *CategoryResolverTestSuite) TestResolve_AbandonsAfterExhaustedAttempts() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategoryForCounterparty", ctx, "acc-1", "WINCO", "POS Debit").
		Return(nil, fmt.Errorf("%w: no category", apperrors.ErrNotFound)).Once()
	suite.mockRepo.On("ListDistinctCategories", ctx, "acc-1").Return([]domain.CategoryChoice{}, nil).Once()
	// New category without a valid change type, every time.
	suite.mockDecider.On("Decide", ctx, mock.AnythingOfType("services.CategoryPrompt")).
		Return(portssvc.CategoryDecision{NewCategory: "Misc"}, nil).Times(3)

	_, err := suite.resolver.Resolve(ctx, "acc-1", suite.candidate, suite.mockDecider)

	suite.Require().ErrorIs(err, apperrors.ErrResolutionAbandoned)
	suite.mockDecider.AssertNumberOfCalls(suite.T(), "Decide", 3)
}

func (suite *CategoryResolverTestSuite) TestResolve_DeciderErrorAbandons() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategoryForCounterparty", ctx, "acc-1", "WINCO", "POS Debit").
		Return(nil, fmt.Errorf("%w: no category", apperrors.ErrNotFound)).Once()
	suite.mockRepo.On("ListDistinctCategories", ctx, "acc-1").Return([]domain.CategoryChoice{}, nil).Once()
	suite.mockDecider.On("Decide", ctx, mock.AnythingOfType("services.CategoryPrompt")).
		Return(portssvc.CategoryDecision{}, fmt.Errorf("input closed")).Once()

	_, err := suite.resolver.Resolve(ctx, "acc-1", suite.candidate, suite.mockDecider)

	suite.Require().ErrorIs(err, apperrors.ErrResolutionAbandoned)
}

func (suite *CategoryResolverTestSuite) TestResolve_NilDeciderAbandons() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategoryForCounterparty", ctx, "acc-1", "WINCO", "POS Debit").
		Return(nil, fmt.Errorf("%w: no category", apperrors.ErrNotFound)).Once()

	_, err := suite.resolver.Resolve(ctx, "acc-1", suite.candidate, nil)

	suite.Require().ErrorIs(err, apperrors.ErrResolutionAbandoned)
}

func TestCategoryResolverTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryResolverTestSuite))
}
