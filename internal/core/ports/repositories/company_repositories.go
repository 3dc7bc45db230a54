package repositories

import (
	"context"
	"time"

	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// CompanyReader defines read operations for company data.
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves all companies, active first, by name.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data.
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany updates a company's details. The voucher counter is not
	// touched here; it moves only through SetLastVoucherNumber.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// SetLastVoucherNumber advances the company's voucher counter to n, but
	// only when n is greater than the stored value. A stale advance no-ops.
	SetLastVoucherNumber(ctx context.Context, companyID string, n int64, now time.Time) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
