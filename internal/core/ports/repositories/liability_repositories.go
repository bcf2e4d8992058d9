package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerline/ledgerline/internal/core/domain"
)

// LiabilityWriter defines write operations for liability data. The update
// protocol is a known stub: implementations fail with
// apperrors.ErrNotImplemented and must not mutate anything. A read side comes
// back with amortization support; until liability rows can be written there is
// nothing to read.
type LiabilityWriter interface {
	// ApplyLiabilityChangeInTx applies a record's liability leg inside tx.
	ApplyLiabilityChangeInTx(ctx context.Context, tx pgx.Tx, liability domain.Liability, changeType domain.RecordChangeType) error
}

// LiabilityRepositoryFacade combines all liability-related repository interfaces.
type LiabilityRepositoryFacade interface {
	LiabilityWriter
}
