package services

// ServiceContainer bundles all services for dependency injection into the
// HTTP layer.
type ServiceContainer struct {
	Company   CompanySvc
	Sequence  SequenceSvc
	Vehicle   VehicleSvc
	Voucher   VoucherSvc
	Ledger    LedgerSvc
	Reporting ReportingSvc
	Import    ImportSvc
}
