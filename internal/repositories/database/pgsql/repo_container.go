package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ledgerline/ledgerline/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx repositories into the provider handed
// to the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	assetRepo := newPgxAssetRepository(dbPool)
	liabilityRepo := newPgxLiabilityRepository(dbPool)
	recordRepo := newPgxRecordRepository(dbPool, accountRepo, assetRepo, liabilityRepo)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		AssetRepo:     assetRepo,
		LiabilityRepo: liabilityRepo,
		RecordRepo:    recordRepo,
	}
}
