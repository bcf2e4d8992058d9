package repositories

// RepositoryProvider bundles every repository facade the service layer needs.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryWithTx
	AssetRepo     AssetRepositoryFacade
	LiabilityRepo LiabilityRepositoryFacade
	RecordRepo    RecordRepositoryWithTx
}
