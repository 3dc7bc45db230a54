package services

import (
	"context"

	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
)

// CompanySvc manages companies.
type CompanySvc interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// SequenceSvc is the voucher-number allocator. NextNumber is an advisory
// peek: two racing callers can observe the same value, and the storage
// uniqueness constraint is the final arbiter.
type SequenceSvc interface {
	// NextNumber returns last_voucher_number + 1 without mutating state.
	NextNumber(ctx context.Context, companyID string) (int64, error)

	// Advance durably moves the counter up to n. Stale advances (n <= current)
	// no-op; the counter only ever increases.
	Advance(ctx context.Context, companyID string, n int64) error
}
