package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
)

// maxAllocationAttempts bounds the number-allocation retry loop. The peek is
// advisory, so two racing writers can collide on the unique constraint; a
// retry re-peeks and tries the next number.
const maxAllocationAttempts = 3

// voucherService implements the VoucherSvc interface.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	vehicleRepo portsrepo.VehicleRepositoryFacade
	sequence    portssvc.SequenceSvc
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, vehicleRepo portsrepo.VehicleRepositoryFacade, sequence portssvc.SequenceSvc) portssvc.VoucherSvc {
	return &voucherService{
		voucherRepo: voucherRepo,
		vehicleRepo: vehicleRepo,
		sequence:    sequence,
	}
}

var _ portssvc.VoucherSvc = (*voucherService)(nil)

// CreateVoucher posts a new voucher. The voucher number comes from the
// company sequence: peek, insert, then advance the counter. A number
// collision from a racing writer is retried with a fresh peek; the counter
// only advances after the insert succeeded, so a failed advance leaves a gap
// in the visible sequence rather than a reused number.
func (s *voucherService) CreateVoucher(ctx context.Context, companyID string, req dto.CreateVoucherRequest) (*domain.Voucher, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: voucher amount must be positive", apperrors.ErrValidation)
	}
	side := domain.VoucherSide(req.Side)
	if side != domain.Debit && side != domain.Credit {
		return nil, fmt.Errorf("%w: voucher side must be DEBIT or CREDIT", apperrors.ErrValidation)
	}

	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle %s: %w", req.VehicleID, err)
	}
	if vehicle.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("vehicle %s not found in company %s", req.VehicleID, companyID))
	}
	if !vehicle.IsActive {
		return nil, fmt.Errorf("%w: vehicle %s is inactive", apperrors.ErrValidation, vehicle.Code)
	}

	var lastErr error
	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		number, err := s.sequence.NextNumber(ctx, companyID)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		voucher := domain.Voucher{
			CompanyID:     companyID,
			VehicleID:     req.VehicleID,
			VoucherNumber: number,
			Date:          req.Date,
			Amount:        req.Amount,
			Side:          side,
			Narration:     req.Narration,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}

		voucherID, err := s.voucherRepo.SaveVoucher(ctx, voucher)
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogDebug(ctx, "Voucher number taken, retrying", "company_id", companyID, "number", number)
			lastErr = err
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to save voucher: %w", err)
		}
		voucher.VoucherID = voucherID

		if err := s.sequence.Advance(ctx, companyID, number); err != nil {
			// The voucher is already durable under its number; the counter
			// catches up on the next successful allocation.
			s.LogError(ctx, err, "Voucher saved but sequence advance failed", "company_id", companyID, "number", number)
		}

		s.LogInfo(ctx, "Voucher created", "voucher_id", voucherID, "number", number, "vehicle_id", req.VehicleID)
		return &voucher, nil
	}

	return nil, fmt.Errorf("voucher number allocation contended after %d attempts: %w", maxAllocationAttempts, lastErr)
}

// GetVoucherByID retrieves a voucher, scoped to the company.
func (s *voucherService) GetVoucherByID(ctx context.Context, companyID string, voucherID int64) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voucher %d: %w", voucherID, err)
	}
	if voucher.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("voucher %d not found in company %s", voucherID, companyID))
	}
	return voucher, nil
}

// UpdateVoucher amends a voucher's date, amount, side or narration. The
// voucher number is assigned once at creation and never changes.
func (s *voucherService) UpdateVoucher(ctx context.Context, companyID string, voucherID int64, req dto.UpdateVoucherRequest) (*domain.Voucher, error) {
	voucher, err := s.GetVoucherByID(ctx, companyID, voucherID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		voucher.Date = *req.Date
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: voucher amount must be positive", apperrors.ErrValidation)
		}
		voucher.Amount = *req.Amount
	}
	if req.Side != nil {
		side := domain.VoucherSide(*req.Side)
		if side != domain.Debit && side != domain.Credit {
			return nil, fmt.Errorf("%w: voucher side must be DEBIT or CREDIT", apperrors.ErrValidation)
		}
		voucher.Side = side
	}
	if req.Narration != nil {
		voucher.Narration = *req.Narration
	}
	voucher.LastUpdatedAt = time.Now().UTC()

	if err := s.voucherRepo.UpdateVoucher(ctx, *voucher); err != nil {
		return nil, fmt.Errorf("failed to update voucher %d: %w", voucherID, err)
	}
	return voucher, nil
}

// DeleteVoucher removes a voucher. The sequence counter is untouched;
// numbers are never reused.
func (s *voucherService) DeleteVoucher(ctx context.Context, companyID string, voucherID int64) error {
	if _, err := s.GetVoucherByID(ctx, companyID, voucherID); err != nil {
		return err
	}
	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		return fmt.Errorf("failed to delete voucher %d: %w", voucherID, err)
	}
	s.LogInfo(ctx, "Voucher deleted", "voucher_id", voucherID)
	return nil
}
