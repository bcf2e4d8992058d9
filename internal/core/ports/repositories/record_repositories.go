package repositories

import (
	"context"

	"github.com/ledgerline/ledgerline/internal/core/domain"
)

// RecordReader defines read operations for ledger records
type RecordReader interface {
	// FindRecordIDByKey looks up an existing record by its natural key.
	// Returns apperrors.ErrNotFound when no matching record exists.
	FindRecordIDByKey(ctx context.Context, key domain.RecordKey) (string, error)

	// ListRecordsByAccountID returns the newest records for an account,
	// ordered by transaction date descending. A limit <= 0 applies a default.
	ListRecordsByAccountID(ctx context.Context, accountID string, limit int) ([]domain.Record, error)

	// FindCategoryForCounterparty returns the category and change type of the
	// earliest record matching the given business and note, or
	// apperrors.ErrNotFound when no prior record matches.
	FindCategoryForCounterparty(ctx context.Context, accountID, business, note string) (*domain.CategoryChoice, error)

	// ListDistinctCategories returns every (category, change type) pair
	// already used on the account, ordered by category.
	ListDistinctCategories(ctx context.Context, accountID string) ([]domain.CategoryChoice, error)
}

// RecordWriter defines write operations for ledger records
type RecordWriter interface {
	// SaveRecord persists a record and propagates its balance effects in a
	// single transaction. assetLeg carries parsed asset details for records
	// whose change type affects an asset; liability is reserved for liability
	// legs and currently always fails with apperrors.ErrNotImplemented.
	// Returns the record as persisted, with its generated id.
	SaveRecord(ctx context.Context, record domain.Record, assetLeg *domain.AssetLeg, liability *domain.Liability) (*domain.Record, error)
}

// RecordRepositoryFacade combines all record-related repository interfaces.
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}

// RecordRepositoryWithTx extends the record facade with transaction management.
type RecordRepositoryWithTx interface {
	RecordRepositoryFacade
	TransactionManager
}
