package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerline/ledgerline/internal/apperrors"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portsrepo "github.com/ledgerline/ledgerline/internal/core/ports/repositories"
)

type PgxLiabilityRepository struct {
	BaseRepository
}

// newPgxLiabilityRepository creates a new repository for liability data.
func newPgxLiabilityRepository(pool *pgxpool.Pool) portsrepo.LiabilityRepositoryFacade {
	return &PgxLiabilityRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxLiabilityRepository implements portsrepo.LiabilityRepositoryFacade
var _ portsrepo.LiabilityRepositoryFacade = (*PgxLiabilityRepository)(nil)

// ApplyLiabilityChangeInTx is the liability-side stub. Amortization logic has
// not landed; callers treat this as a hard stop and the surrounding
// transaction rolls back, leaving debt_total untouched.
func (r *PgxLiabilityRepository) ApplyLiabilityChangeInTx(ctx context.Context, tx pgx.Tx, liability domain.Liability, changeType domain.RecordChangeType) error {
	return fmt.Errorf("%w: liability update for change type %s", apperrors.ErrNotImplemented, changeType)
}
