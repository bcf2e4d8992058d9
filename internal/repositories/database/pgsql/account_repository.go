package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portsrepo "github.com/ledgerline/ledgerline/internal/core/ports/repositories"
	"github.com/ledgerline/ledgerline/internal/models"
	"github.com/ledgerline/ledgerline/internal/utils/accounting"
	"github.com/ledgerline/ledgerline/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, book_id, name, purpose, cash_funds, investment_worth, debt_total, created_at, last_updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.BookID,
		&m.Name,
		&m.Purpose,
		&m.CashFunds,
		&m.InvestmentWorth,
		&m.DebtTotal,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveBook inserts a new book grouping.
func (r *PgxAccountRepository) SaveBook(ctx context.Context, book domain.Book) error {
	query := `
		INSERT INTO books (book_id, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, book.BookID, book.Name, book.CreatedAt, book.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: book with ID %s already exists", apperrors.ErrDuplicate, book.BookID)
		}
		return fmt.Errorf("failed to save book %s: %w", book.BookID, err)
	}
	return nil
}

// SaveAccount inserts a new account with its seeded balances.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.BookID,
		modelAcc.Name,
		modelAcc.Purpose,
		modelAcc.CashFunds,
		modelAcc.InvestmentWorth,
		modelAcc.DebtTotal,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique violation
				return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
			case "23503": // foreign key violation
				return fmt.Errorf("%w: book %s does not exist", apperrors.ErrValidation, modelAcc.BookID)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(*modelAcc)
	return &account, nil
}

// ListAccounts retrieves all accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var modelAccounts []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		modelAccounts = append(modelAccounts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows: %w", err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// FindAccountByIDForUpdate retrieves an account inside tx with a row lock so
// that concurrent balance propagation cannot interleave.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`

	modelAcc, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(*modelAcc)
	return &account, nil
}

// UpdateCashFundsInTx persists a new cash-funds total rounded to cents.
func (r *PgxAccountRepository) UpdateCashFundsInTx(ctx context.Context, tx pgx.Tx, accountID string, newTotal decimal.Decimal, updatedAt time.Time) error {
	return r.updateBalanceColumn(ctx, tx, "cash_funds", accountID, newTotal, updatedAt)
}

// UpdateInvestmentWorthInTx persists a new investment-worth total rounded to cents.
func (r *PgxAccountRepository) UpdateInvestmentWorthInTx(ctx context.Context, tx pgx.Tx, accountID string, newTotal decimal.Decimal, updatedAt time.Time) error {
	return r.updateBalanceColumn(ctx, tx, "investment_worth", accountID, newTotal, updatedAt)
}

func (r *PgxAccountRepository) updateBalanceColumn(ctx context.Context, tx pgx.Tx, column, accountID string, newTotal decimal.Decimal, updatedAt time.Time) error {
	query := fmt.Sprintf(`UPDATE accounts SET %s = $1, last_updated_at = $2 WHERE account_id = $3;`, column)

	tag, err := tx.Exec(ctx, query, accounting.RoundToCents(newTotal), updatedAt, accountID)
	if err != nil {
		return fmt.Errorf("failed to update %s for account %s: %w", column, accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
