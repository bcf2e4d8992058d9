package services

import (
	portsrepo "github.com/ledgerline/ledgerline/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	resolver := NewCategoryResolver(repos.RecordRepo)

	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, repos.AssetRepo, repos.RecordRepo),
		Resolver:  resolver,
		Ingestion: NewIngestionService(repos.AccountRepo, repos.RecordRepo, resolver),
	}
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.AccountSvcFacade    = (*accountService)(nil)
	_ portssvc.CategoryResolverSvc = (*categoryResolver)(nil)
	_ portssvc.IngestionSvcFacade  = (*ingestionService)(nil)
)
