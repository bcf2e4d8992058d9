package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portsrepo "github.com/ledgerline/ledgerline/internal/core/ports/repositories"
	"github.com/ledgerline/ledgerline/internal/models"
	"github.com/ledgerline/ledgerline/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAssetRepository implements portsrepo.AssetRepositoryFacade
var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, account_id, name, quantity, market_value, note, created_at, last_updated_at`

func scanAsset(row pgx.Row) (*models.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID,
		&m.AccountID,
		&m.Name,
		&m.Quantity,
		&m.MarketValue,
		&m.Note,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`

	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, assetID)
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}

	asset := mapping.ToDomainAsset(*m)
	return &asset, nil
}

// ListAssetsByAccountID retrieves all assets owned by an account.
func (r *PgxAssetRepository) ListAssetsByAccountID(ctx context.Context, accountID string) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE account_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, mapping.ToDomainAsset(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating asset rows: %w", err)
	}
	return assets, nil
}

// FindAssetByNameForUpdate resolves asset identity by (account, name) with a
// case-insensitive substring match, locking the row inside tx. Statement
// exports abbreviate fund names inconsistently, hence the substring match.
func (r *PgxAssetRepository) FindAssetByNameForUpdate(ctx context.Context, tx pgx.Tx, accountID, name string) (*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE account_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE;
	`
	m, err := scanAsset(tx.QueryRow(ctx, query, accountID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: asset %q for account %s", apperrors.ErrNotFound, name, accountID)
		}
		return nil, fmt.Errorf("failed to resolve asset %q for account %s: %w", name, accountID, err)
	}

	asset := mapping.ToDomainAsset(*m)
	return &asset, nil
}

// InsertAssetInTx persists a brand-new asset row.
func (r *PgxAssetRepository) InsertAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.AssetID,
		m.AccountID,
		m.Name,
		m.Quantity,
		m.MarketValue,
		m.Note,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset %q for account %s: %w", m.Name, m.AccountID, err)
	}
	return nil
}

// UpdateAssetValuesInTx persists a new quantity and market value for an
// existing asset.
func (r *PgxAssetRepository) UpdateAssetValuesInTx(ctx context.Context, tx pgx.Tx, assetID string, quantity, marketValue decimal.Decimal, updatedAt time.Time) error {
	query := `
		UPDATE assets
		SET quantity = $1, market_value = $2, last_updated_at = $3
		WHERE asset_id = $4;
	`
	tag, err := tx.Exec(ctx, query, quantity, marketValue, updatedAt, assetID)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, assetID)
	}
	return nil
}
