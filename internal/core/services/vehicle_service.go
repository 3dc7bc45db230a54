package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
)

// vehicleService implements the VehicleSvc interface.
type vehicleService struct {
	BaseService
	vehicleRepo portsrepo.VehicleRepositoryFacade
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(repo portsrepo.VehicleRepositoryFacade) portssvc.VehicleSvc {
	return &vehicleService{vehicleRepo: repo}
}

var _ portssvc.VehicleSvc = (*vehicleService)(nil)

// CreateVehicle creates a new vehicle account. Codes are unique per company,
// case-insensitively; a clash surfaces as ErrDuplicate.
func (s *vehicleService) CreateVehicle(ctx context.Context, companyID string, req dto.CreateVehicleRequest) (*domain.Vehicle, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("%w: vehicle code is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	vehicle := domain.Vehicle{
		VehicleID: uuid.NewString(),
		CompanyID: companyID,
		Code:      req.Code,
		Narration: req.Narration,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to save vehicle: %w", err)
	}

	s.LogInfo(ctx, "Vehicle created", "vehicle_id", vehicle.VehicleID, "code", vehicle.Code)
	return &vehicle, nil
}

// GetVehicleByID retrieves a vehicle, scoped to the company.
func (s *vehicleService) GetVehicleByID(ctx context.Context, companyID, vehicleID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	if vehicle.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("vehicle %s not found in company %s", vehicleID, companyID))
	}
	return vehicle, nil
}

// ListVehicles retrieves vehicles for a company ordered by code.
func (s *vehicleService) ListVehicles(ctx context.Context, companyID string, activeOnly bool) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// UpdateVehicle applies the non-nil fields of the request. The code is
// immutable after creation.
func (s *vehicleService) UpdateVehicle(ctx context.Context, companyID, vehicleID string, req dto.UpdateVehicleRequest) (*domain.Vehicle, error) {
	vehicle, err := s.GetVehicleByID(ctx, companyID, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.Narration != nil {
		vehicle.Narration = *req.Narration
	}
	if req.IsActive != nil {
		vehicle.IsActive = *req.IsActive
	}
	vehicle.LastUpdatedAt = time.Now().UTC()

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle %s: %w", vehicleID, err)
	}
	return vehicle, nil
}

// MergeVehicles reassigns every voucher from source to target and deletes the
// source vehicle, atomically. History moves; nothing is lost.
func (s *vehicleService) MergeVehicles(ctx context.Context, companyID, sourceVehicleID, targetVehicleID string) error {
	if sourceVehicleID == targetVehicleID {
		return fmt.Errorf("%w: cannot merge a vehicle into itself", apperrors.ErrValidation)
	}

	if _, err := s.GetVehicleByID(ctx, companyID, sourceVehicleID); err != nil {
		return err
	}
	if _, err := s.GetVehicleByID(ctx, companyID, targetVehicleID); err != nil {
		return err
	}

	if err := s.vehicleRepo.MergeVehicles(ctx, companyID, sourceVehicleID, targetVehicleID); err != nil {
		s.LogError(ctx, err, "Vehicle merge failed", "source", sourceVehicleID, "target", targetVehicleID)
		return fmt.Errorf("failed to merge vehicle %s into %s: %w", sourceVehicleID, targetVehicleID, err)
	}

	s.LogInfo(ctx, "Vehicles merged", "source", sourceVehicleID, "target", targetVehicleID)
	return nil
}
