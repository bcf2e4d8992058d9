package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssetsByAccountID retrieves all assets owned by an account.
	ListAssetsByAccountID(ctx context.Context, accountID string) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data. Asset mutation always
// happens inside the transaction of the record that triggered it.
type AssetWriter interface {
	// FindAssetByNameForUpdate resolves asset identity by (account, name) with
	// a case-insensitive substring match, locking the row inside tx. Returns
	// apperrors.ErrNotFound for a new asset.
	FindAssetByNameForUpdate(ctx context.Context, tx pgx.Tx, accountID, name string) (*domain.Asset, error)

	// InsertAssetInTx persists a brand-new asset row.
	InsertAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error

	// UpdateAssetValuesInTx persists a new quantity and market value for an
	// existing asset.
	UpdateAssetValuesInTx(ctx context.Context, tx pgx.Tx, assetID string, quantity, marketValue decimal.Decimal, updatedAt time.Time) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
