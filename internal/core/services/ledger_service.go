package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/ledgermath"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/pagination"
)

// ledgerService implements the LedgerSvc interface.
type ledgerService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	vehicleRepo portsrepo.VehicleRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(voucherRepo portsrepo.VoucherRepositoryFacade, vehicleRepo portsrepo.VehicleRepositoryFacade) portssvc.LedgerSvc {
	return &ledgerService{
		voucherRepo: voucherRepo,
		vehicleRepo: vehicleRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// Balance returns the vehicle's signed balance as of the cutoff (nil means
// all time). The sum runs storage-side in exact numeric arithmetic; a vehicle
// with no postings balances to zero.
func (s *ledgerService) Balance(ctx context.Context, companyID, vehicleID string, asOf *time.Time) (decimal.Decimal, error) {
	if err := s.checkVehicle(ctx, companyID, vehicleID); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.voucherRepo.SumSignedByVehicle(ctx, vehicleID, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance for vehicle %s: %w", vehicleID, err)
	}
	return balance, nil
}

// GetLedger assembles one display window of the vehicle's history. The
// running balance is folded over the FULL chronological history first and
// only then sliced to the window, so a row's balance is identical no matter
// which page it is viewed through. Rows within the window come back most
// recent first for display.
func (s *ledgerService) GetLedger(ctx context.Context, companyID, vehicleID string, page pagination.Page) (*domain.LedgerPage, error) {
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := s.checkVehicle(ctx, companyID, vehicleID); err != nil {
		return nil, err
	}

	vouchers, err := s.voucherRepo.ListVouchersByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers for vehicle %s: %w", vehicleID, err)
	}

	rows, err := ledgermath.RunningBalances(vouchers)
	if err != nil {
		return nil, fmt.Errorf("failed to compute running balances for vehicle %s: %w", vehicleID, err)
	}

	start, end, hasMore := page.Bounds(len(rows))
	window := rows[start:end]

	// Display order is (date desc, id desc); the computation above already
	// happened in chronological order, so reversing here cannot change any
	// balance value.
	display := make([]domain.LedgerRow, len(window))
	for i, row := range window {
		display[len(window)-1-i] = row
	}

	return &domain.LedgerPage{
		Rows:       display,
		TotalCount: len(rows),
		HasMore:    hasMore,
	}, nil
}

func (s *ledgerService) checkVehicle(ctx context.Context, companyID, vehicleID string) error {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	if vehicle.CompanyID != companyID {
		return apperrors.NewNotFoundError(fmt.Sprintf("vehicle %s not found in company %s", vehicleID, companyID))
	}
	return nil
}
