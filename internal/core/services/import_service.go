package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
)

// importService implements the ImportSvc interface.
type importService struct {
	BaseService
	vehicleRepo portsrepo.VehicleRepositoryFacade
	voucherRepo portsrepo.VoucherRepositoryFacade
	sequence    portssvc.SequenceSvc
}

// NewImportService creates a new reconciliation import service.
func NewImportService(vehicleRepo portsrepo.VehicleRepositoryFacade, voucherRepo portsrepo.VoucherRepositoryFacade, sequence portssvc.SequenceSvc) portssvc.ImportSvc {
	return &importService{
		vehicleRepo: vehicleRepo,
		voucherRepo: voucherRepo,
		sequence:    sequence,
	}
}

var _ portssvc.ImportSvc = (*importService)(nil)

// Import reconciles an external account/voucher dump into a company.
// Accounts are matched case-insensitively by code and created when
// CreateMissingVehicles is set; vouchers whose external number already exists
// for the company are skipped with a warning, never overwritten. The voucher
// sequence is advanced once at the end, to the maximum number seen, and only
// on a live run. A dry run issues zero writes but walks the exact same
// matching and dedup logic so its result previews the live run faithfully.
func (s *importService) Import(ctx context.Context, companyID string, records domain.ImportRecords, opts domain.ImportOptions) (*domain.ImportResult, error) {
	result := &domain.ImportResult{
		VehiclesParsed: len(records.Vehicles),
		VouchersParsed: len(records.Vouchers),
		Warnings:       []string{},
		Errors:         []string{},
	}

	// code (lowercased) -> vehicle id; empty string marks "known missing".
	vehicleIDs := map[string]string{}

	for _, rec := range records.Vehicles {
		key := strings.ToLower(strings.TrimSpace(rec.Code))
		if key == "" {
			result.Errors = append(result.Errors, "account record with empty code skipped")
			continue
		}
		if _, seen := vehicleIDs[key]; seen {
			continue
		}
		id, err := s.resolveVehicle(ctx, companyID, rec.Code, rec.Narration, opts, result)
		if err != nil {
			return nil, err
		}
		vehicleIDs[key] = id
	}

	var maxSeen int64
	seenNumbers := map[int64]bool{}

	for _, rec := range records.Vouchers {
		if rec.Number <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("voucher with non-positive number %d skipped", rec.Number))
			continue
		}
		if !rec.Amount.IsPositive() {
			result.Errors = append(result.Errors, fmt.Sprintf("voucher %d with non-positive amount skipped", rec.Number))
			continue
		}
		if rec.Side != domain.Debit && rec.Side != domain.Credit {
			result.Errors = append(result.Errors, fmt.Sprintf("voucher %d with unknown side '%s' skipped", rec.Number, rec.Side))
			continue
		}

		key := strings.ToLower(strings.TrimSpace(rec.VehicleCode))
		vehicleID, known := vehicleIDs[key]
		if !known {
			id, err := s.resolveVehicle(ctx, companyID, rec.VehicleCode, "", opts, result)
			if err != nil {
				return nil, err
			}
			vehicleIDs[key] = id
			vehicleID = id
		}
		if vehicleID == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("voucher %d skipped: account '%s' not found", rec.Number, rec.VehicleCode))
			continue
		}

		if seenNumbers[rec.Number] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("voucher %d already seen in this import, skipped", rec.Number))
			continue
		}
		existing, err := s.voucherRepo.FindVoucherByNumber(ctx, companyID, rec.Number)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check voucher number %d: %w", rec.Number, err)
		}
		if existing != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("voucher %d already exists, skipped", rec.Number))
			continue
		}

		if !opts.DryRun {
			now := time.Now().UTC()
			voucher := domain.Voucher{
				CompanyID:     companyID,
				VehicleID:     vehicleID,
				VoucherNumber: rec.Number,
				Date:          rec.Date,
				Amount:        rec.Amount,
				Side:          rec.Side,
				Narration:     rec.Narration,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					LastUpdatedAt: now,
				},
			}
			if _, err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
				if errors.Is(err, apperrors.ErrDuplicate) {
					result.Warnings = append(result.Warnings, fmt.Sprintf("voucher %d already exists, skipped", rec.Number))
					continue
				}
				return nil, fmt.Errorf("failed to save imported voucher %d: %w", rec.Number, err)
			}
		}

		seenNumbers[rec.Number] = true
		result.VouchersInserted++
		if rec.Number > maxSeen {
			maxSeen = rec.Number
		}
	}

	// One atomic bump at the end, not one per voucher. The repository guard
	// makes it a no-op when the counter is already past maxSeen.
	if !opts.DryRun && maxSeen > 0 {
		if err := s.sequence.Advance(ctx, companyID, maxSeen); err != nil {
			return nil, fmt.Errorf("failed to advance voucher sequence after import: %w", err)
		}
	}

	s.LogInfo(ctx, "Import finished",
		"company_id", companyID,
		"dry_run", opts.DryRun,
		"vehicles_inserted", result.VehiclesInserted,
		"vouchers_inserted", result.VouchersInserted,
		"warnings", len(result.Warnings),
		"errors", len(result.Errors))
	return result, nil
}

// resolveVehicle looks up an account code case-insensitively, creating the
// vehicle when permitted. Returns an empty id when the account is missing and
// must not be created; that decision is cached by the caller. On a dry run a
// would-be creation gets a placeholder id so later vouchers referencing the
// same code count as insertable.
func (s *importService) resolveVehicle(ctx context.Context, companyID, code, narration string, opts domain.ImportOptions, result *domain.ImportResult) (string, error) {
	existing, err := s.vehicleRepo.FindVehicleByCode(ctx, companyID, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to look up account '%s': %w", code, err)
	}
	if existing != nil {
		return existing.VehicleID, nil
	}

	if !opts.CreateMissingVehicles {
		result.Warnings = append(result.Warnings, fmt.Sprintf("account '%s' not found and creation disabled", code))
		return "", nil
	}

	id := uuid.NewString()
	if !opts.DryRun {
		now := time.Now().UTC()
		vehicle := domain.Vehicle{
			VehicleID: id,
			CompanyID: companyID,
			Code:      strings.TrimSpace(code),
			Narration: narration,
			IsActive:  true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
			return "", fmt.Errorf("failed to create account '%s': %w", code, err)
		}
	}
	result.VehiclesInserted++
	return id, nil
}
