package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	vehicleRepo := newPgxVehicleRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:   companyRepo,
		VehicleRepo:   vehicleRepo,
		VoucherRepo:   voucherRepo,
		ReportingRepo: reportingRepo,
	}
}
