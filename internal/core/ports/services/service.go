package services

// ServiceContainer bundles the service interfaces exposed to transports.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Resolver  CategoryResolverSvc
	Ingestion IngestionSvcFacade
}
