package services

import (
	"context"

	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/ledgerline/ledgerline/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations over accounts and their holdings.
type AccountReaderSvc interface {
	// GetAccountByID fetches a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns every account ordered by name.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListRecords returns the newest records for an account.
	ListRecords(ctx context.Context, accountID string, limit int) ([]domain.Record, error)

	// ListAssets returns an account's asset positions.
	ListAssets(ctx context.Context, accountID string) ([]domain.Asset, error)

	// GetAsset fetches a single asset position. An asset owned by a different
	// account fails with apperrors.ErrNotFound.
	GetAsset(ctx context.Context, accountID, assetID string) (*domain.Asset, error)
}

// AccountWriterSvc defines account bootstrap and the balance update protocols.
type AccountWriterSvc interface {
	// CreateAccount persists a new account, creating its book first when the
	// request carries no book id. Seeded balances are rounded to cents.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateCashFunds applies a signed cash change derived from amount and
	// changeType. Change types without a cash leg fail with
	// apperrors.ErrUnsupportedChangeType.
	UpdateCashFunds(ctx context.Context, accountID string, amount decimal.Decimal, changeType domain.RecordChangeType) error

	// UpdateInvestmentWorth adds a signed value delta to the account's
	// investment worth.
	UpdateInvestmentWorth(ctx context.Context, accountID string, delta decimal.Decimal) error

	// UpdateDebtTotal is a known stub and always fails with
	// apperrors.ErrNotImplemented.
	UpdateDebtTotal(ctx context.Context, accountID string, amount decimal.Decimal, changeType domain.RecordChangeType) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
