package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portsrepo "github.com/ledgerline/ledgerline/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/dto"
	"github.com/ledgerline/ledgerline/internal/middleware"
	"github.com/ledgerline/ledgerline/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// accountService provides account bootstrap, reads and the balance update
// protocols.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryWithTx
	assetRepo   portsrepo.AssetRepositoryFacade
	recordRepo  portsrepo.RecordRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryWithTx, assetRepo portsrepo.AssetRepositoryFacade, recordRepo portsrepo.RecordRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		assetRepo:   assetRepo,
		recordRepo:  recordRepo,
	}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount bootstraps an account, creating its book when none is given.
// Seeded balances let an account start mid-history.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()

	bookID := req.BookID
	if bookID == "" {
		bookName := req.BookName
		if bookName == "" {
			bookName = req.Name
		}
		book := domain.Book{
			BookID:      uuid.NewString(),
			Name:        bookName,
			AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if err := s.accountRepo.SaveBook(ctx, book); err != nil {
			logger.Error("Failed to save book", slog.String("error", err.Error()))
			return nil, err
		}
		bookID = book.BookID
	}

	account := domain.Account{
		AccountID:       uuid.NewString(),
		BookID:          bookID,
		Name:            req.Name,
		Purpose:         req.Purpose,
		CashFunds:       accounting.RoundToCents(req.CashFunds),
		InvestmentWorth: accounting.RoundToCents(req.InvestmentWorth),
		DebtTotal:       accounting.RoundToCents(req.DebtTotal),
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("name", account.Name))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves every account.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// ListRecords retrieves an account's records, newest first.
func (s *accountService) ListRecords(ctx context.Context, accountID string, limit int) ([]domain.Record, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.recordRepo.ListRecordsByAccountID(ctx, accountID, limit)
}

// ListAssets retrieves the assets owned by an account.
func (s *accountService) ListAssets(ctx context.Context, accountID string) ([]domain.Asset, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.assetRepo.ListAssetsByAccountID(ctx, accountID)
}

// GetAsset retrieves a single asset position, checking it belongs to the
// given account so one account cannot read another's holdings by id.
func (s *accountService) GetAsset(ctx context.Context, accountID, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.AccountID != accountID {
		return nil, fmt.Errorf("%w: asset %s for account %s", apperrors.ErrNotFound, assetID, accountID)
	}
	return asset, nil
}

// UpdateCashFunds applies a signed cash change derived from amount and
// changeType. Unsupported change types fail hard; they never no-op.
func (s *accountService) UpdateCashFunds(ctx context.Context, accountID string, amount decimal.Decimal, changeType domain.RecordChangeType) error {
	delta, err := accounting.CashDelta(amount, changeType)
	if err != nil {
		return err
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return err
	}
	newTotal := account.CashFunds.Add(delta)
	if err := s.accountRepo.UpdateCashFundsInTx(ctx, tx, accountID, newTotal, time.Now().UTC()); err != nil {
		return err
	}
	return s.accountRepo.Commit(ctx, tx)
}

// UpdateInvestmentWorth adds a signed value delta to the account's investment
// worth.
func (s *accountService) UpdateInvestmentWorth(ctx context.Context, accountID string, delta decimal.Decimal) error {
	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return err
	}
	newTotal := account.InvestmentWorth.Add(delta)
	if err := s.accountRepo.UpdateInvestmentWorthInTx(ctx, tx, accountID, newTotal, time.Now().UTC()); err != nil {
		return err
	}
	return s.accountRepo.Commit(ctx, tx)
}

// UpdateDebtTotal is the liability-side stub. Callers must treat the failure
// as a hard stop until amortization support lands.
func (s *accountService) UpdateDebtTotal(ctx context.Context, accountID string, amount decimal.Decimal, changeType domain.RecordChangeType) error {
	return fmt.Errorf("%w: debt total update (%s, account %s)", apperrors.ErrNotImplemented, changeType, accountID)
}
