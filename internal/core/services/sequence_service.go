package services

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
)

// sequenceService hands out per-company voucher numbers. It holds no state
// of its own: the counter lives in the companies row and the peek is
// advisory. Two racing callers can both see the same "next" number; the
// unique constraint on (company, voucher_number) decides the winner.
type sequenceService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewSequenceService creates a new voucher-number allocator.
func NewSequenceService(repo portsrepo.CompanyRepositoryFacade) portssvc.SequenceSvc {
	return &sequenceService{companyRepo: repo}
}

var _ portssvc.SequenceSvc = (*sequenceService)(nil)

// NextNumber returns last_voucher_number + 1 without mutating anything.
func (s *sequenceService) NextNumber(ctx context.Context, companyID string) (int64, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return 0, fmt.Errorf("failed to peek next voucher number for company %s: %w", companyID, err)
	}
	return company.LastVoucherNumber + 1, nil
}

// Advance durably moves the counter up to n. The repository guard makes a
// stale advance (n <= current) a no-op, so the counter only ever increases
// even when a smaller advance arrives late.
func (s *sequenceService) Advance(ctx context.Context, companyID string, n int64) error {
	if err := s.companyRepo.SetLastVoucherNumber(ctx, companyID, n, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to advance voucher sequence for company %s: %w", companyID, err)
	}
	return nil
}
