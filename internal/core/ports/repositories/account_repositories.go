package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts, ordered by name.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveBook persists a new book grouping.
	SaveBook(ctx context.Context, book domain.Book) error

	// SaveAccount persists a new account with its seeded balances.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountBalanceWriter defines the balance propagation operations. The InTx
// forms run against an open transaction so that a record insert and its
// balance updates commit or fail together.
type AccountBalanceWriter interface {
	// FindAccountByIDForUpdate retrieves an account inside tx with a row lock.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// UpdateCashFundsInTx persists a new cash-funds total rounded to cents.
	UpdateCashFundsInTx(ctx context.Context, tx pgx.Tx, accountID string, newTotal decimal.Decimal, updatedAt time.Time) error

	// UpdateInvestmentWorthInTx persists a new investment-worth total rounded to cents.
	UpdateInvestmentWorthInTx(ctx context.Context, tx pgx.Tx, accountID string, newTotal decimal.Decimal, updatedAt time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
