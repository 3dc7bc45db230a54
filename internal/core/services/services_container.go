package services

import (
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	sequence := NewSequenceService(repos.CompanyRepo)

	return &portssvc.ServiceContainer{
		Company:   NewCompanyService(repos.CompanyRepo),
		Sequence:  sequence,
		Vehicle:   NewVehicleService(repos.VehicleRepo),
		Voucher:   NewVoucherService(repos.VoucherRepo, repos.VehicleRepo, sequence),
		Ledger:    NewLedgerService(repos.VoucherRepo, repos.VehicleRepo),
		Reporting: NewReportingService(repos.ReportingRepo, repos.VoucherRepo, repos.VehicleRepo),
		Import:    NewImportService(repos.VehicleRepo, repos.VoucherRepo, sequence),
	}
}
