package repositories

// RepositoryProvider bundles all repository facades for dependency injection.
type RepositoryProvider struct {
	CompanyRepo   CompanyRepositoryFacade
	VehicleRepo   VehicleRepositoryFacade
	VoucherRepo   VoucherRepositoryFacade
	ReportingRepo ReportingRepository
}
