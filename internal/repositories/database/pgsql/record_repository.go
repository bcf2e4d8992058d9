package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
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

type PgxRecordRepository struct {
	BaseRepository
	accountRepo   portsrepo.AccountRepositoryFacade
	assetRepo     portsrepo.AssetRepositoryFacade
	liabilityRepo portsrepo.LiabilityRepositoryFacade
}

// newPgxRecordRepository creates a new repository for record data. Account,
// asset and liability repositories are injected so the record unit of work
// can run their in-tx operations against a single transaction.
func newPgxRecordRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade, assetRepo portsrepo.AssetRepositoryFacade, liabilityRepo portsrepo.LiabilityRepositoryFacade) portsrepo.RecordRepositoryWithTx {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		assetRepo:      assetRepo,
		liabilityRepo:  liabilityRepo,
	}
}

// Ensure PgxRecordRepository implements portsrepo.RecordRepositoryWithTx
var _ portsrepo.RecordRepositoryWithTx = (*PgxRecordRepository)(nil)

const recordColumns = `record_id, account_id, asset_id, liability_id, amount, business, category, quantity, change_type, note, transaction_date, created_at`

func scanRecord(row pgx.Row) (*models.Record, error) {
	var m models.Record
	err := row.Scan(
		&m.RecordID,
		&m.AccountID,
		&m.AssetID,
		&m.LiabilityID,
		&m.Amount,
		&m.Business,
		&m.Category,
		&m.Quantity,
		&m.ChangeType,
		&m.Note,
		&m.TransactionDate,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindRecordIDByKey looks a record up by its seven-field natural key. All
// seven fields must match exactly; two records differing only in note are
// distinct.
func (r *PgxRecordRepository) FindRecordIDByKey(ctx context.Context, key domain.RecordKey) (string, error) {
	query := `
		SELECT record_id FROM records
		WHERE account_id = $1 AND amount = $2 AND business = $3 AND category = $4
			AND change_type = $5 AND note = $6 AND transaction_date = $7;
	`
	var recordID string
	err := r.Pool.QueryRow(ctx, query,
		key.AccountID,
		key.Amount,
		key.Business,
		key.Category,
		string(key.ChangeType),
		key.Note,
		key.TransactionDate,
	).Scan(&recordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to look up record by natural key for account %s: %w", key.AccountID, err)
	}
	return recordID, nil
}

// ListRecordsByAccountID retrieves records for an account, newest transaction
// date first.
func (r *PgxRecordRepository) ListRecordsByAccountID(ctx context.Context, accountID string, limit int) ([]domain.Record, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE account_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var modelRecords []models.Record
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		modelRecords = append(modelRecords, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating record rows: %w", err)
	}
	return mapping.ToDomainRecordSlice(modelRecords), nil
}

// FindCategoryForCounterparty retrieves the (category, change type) pair
// previously recorded for this account/business/note combination. Business
// and note are matched with ILIKE, mirroring how statement exports vary the
// casing of the same counterparty.
func (r *PgxRecordRepository) FindCategoryForCounterparty(ctx context.Context, accountID, business, note string) (*domain.CategoryChoice, error) {
	query := `
		SELECT category, change_type FROM records
		WHERE account_id = $1 AND business ILIKE $2 AND note ILIKE $3
		ORDER BY created_at
		LIMIT 1;
	`
	var choice domain.CategoryChoice
	var changeType string
	err := r.Pool.QueryRow(ctx, query, accountID, business, note).Scan(&choice.Category, &changeType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category for business %q on account %s: %w", business, accountID, err)
	}
	choice.ChangeType = domain.RecordChangeType(changeType)
	return &choice, nil
}

// ListDistinctCategories retrieves the distinct (category, change type) pairs
// ever used for an account, in stable order.
func (r *PgxRecordRepository) ListDistinctCategories(ctx context.Context, accountID string) ([]domain.CategoryChoice, error) {
	query := `
		SELECT DISTINCT category, change_type FROM records
		WHERE account_id = $1
		ORDER BY category, change_type;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var choices []domain.CategoryChoice
	for rows.Next() {
		var choice domain.CategoryChoice
		var changeType string
		if err := rows.Scan(&choice.Category, &changeType); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		choice.ChangeType = domain.RecordChangeType(changeType)
		choices = append(choices, choice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating category rows: %w", err)
	}
	return choices, nil
}

// SaveRecord persists a categorized record as one unit of work inside a
// single transaction: the asset leg is applied first so the asset row exists
// for the record's foreign key, then the liability leg, then the record row,
// then the cash-funds propagation. A failure at any step rolls everything
// back, so an account balance is never incremented without its record.
func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record domain.Record, assetLeg *domain.AssetLeg, liability *domain.Liability) (*domain.Record, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	now := record.CreatedAt

	account, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, record.AccountID)
	if err != nil {
		return nil, err
	}

	// 1. Asset leg first, so the generated asset_id is available below.
	if assetLeg != nil {
		assetID, err := r.applyAssetChange(ctx, tx, account, *assetLeg, record.ChangeType, now)
		if err != nil {
			return nil, err
		}
		record.AssetID = &assetID
	}

	// 2. Liability leg. Currently always fails; the rollback keeps
	// debt_total and everything above untouched.
	if liability != nil {
		if err := r.liabilityRepo.ApplyLiabilityChangeInTx(ctx, tx, *liability, record.ChangeType); err != nil {
			return nil, err
		}
	}

	// 3. The record row itself.
	record.RecordID = uuid.NewString()
	if err := r.insertRecordInTx(ctx, tx, record); err != nil {
		return nil, err
	}

	// 4. Cash-side propagation. Pure re-pricing events have no cash leg.
	if accounting.HasCashLeg(record.ChangeType) {
		cashDelta, err := accounting.CashDelta(record.Amount, record.ChangeType)
		if err != nil {
			return nil, err
		}
		newTotal := account.CashFunds.Add(cashDelta)
		if err := r.accountRepo.UpdateCashFundsInTx(ctx, tx, account.AccountID, newTotal, now); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &record, nil
}

// applyAssetChange resolves the asset leg's identity and applies the quantity
// and market-value change, propagating the resulting value delta to the
// owning account's investment worth.
func (r *PgxRecordRepository) applyAssetChange(ctx context.Context, tx pgx.Tx, account *domain.Account, leg domain.AssetLeg, changeType domain.RecordChangeType, now time.Time) (string, error) {
	existing, err := r.assetRepo.FindAssetByNameForUpdate(ctx, tx, account.AccountID, leg.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	if existing == nil {
		// New asset: persist the parsed values as-is and propagate the full
		// initial value, not a delta.
		asset := domain.Asset{
			AssetID:     uuid.NewString(),
			AccountID:   account.AccountID,
			Name:        leg.Name,
			Quantity:    leg.Quantity,
			MarketValue: leg.MarketValue,
			Note:        leg.Note,
			AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if err := r.assetRepo.InsertAssetInTx(ctx, tx, asset); err != nil {
			return "", err
		}
		initialValue := accounting.ValueDelta(decimal.Zero, decimal.Zero, leg.Quantity, leg.MarketValue)
		newWorth := account.InvestmentWorth.Add(initialValue)
		if err := r.accountRepo.UpdateInvestmentWorthInTx(ctx, tx, account.AccountID, newWorth, now); err != nil {
			return "", err
		}
		return asset.AssetID, nil
	}

	quantityDelta, err := accounting.QuantityDelta(leg.Quantity, changeType)
	if err != nil {
		return "", err
	}

	// The incoming market value always overwrites the stored one: it models
	// the latest known price, even when the quantity delta is zero.
	newQuantity := existing.Quantity.Add(quantityDelta)
	newMarketValue := leg.MarketValue
	valueDelta := accounting.ValueDelta(existing.Quantity, existing.MarketValue, quantityDelta, newMarketValue)

	if err := r.assetRepo.UpdateAssetValuesInTx(ctx, tx, existing.AssetID, newQuantity, newMarketValue, now); err != nil {
		return "", err
	}
	newWorth := account.InvestmentWorth.Add(valueDelta)
	if err := r.accountRepo.UpdateInvestmentWorthInTx(ctx, tx, account.AccountID, newWorth, now); err != nil {
		return "", err
	}
	return existing.AssetID, nil
}

func (r *PgxRecordRepository) insertRecordInTx(ctx context.Context, tx pgx.Tx, record domain.Record) error {
	m := mapping.ToModelRecord(record)

	query := `
		INSERT INTO records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.RecordID,
		m.AccountID,
		m.AssetID,
		m.LiabilityID,
		m.Amount,
		m.Business,
		m.Category,
		m.Quantity,
		m.ChangeType,
		m.Note,
		m.TransactionDate,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: record %s references a missing row (%s)", apperrors.ErrValidation, m.RecordID, pgErr.ConstraintName)
		}
		return fmt.Errorf("failed to insert record %s for account %s: %w", m.RecordID, m.AccountID, err)
	}
	return nil
}
