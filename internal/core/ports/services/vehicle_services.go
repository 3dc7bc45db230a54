package services

import (
	"context"

	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
)

// VehicleSvc manages vehicle accounts.
type VehicleSvc interface {
	CreateVehicle(ctx context.Context, companyID string, req dto.CreateVehicleRequest) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, companyID, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, companyID string, activeOnly bool) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, companyID, vehicleID string, req dto.UpdateVehicleRequest) (*domain.Vehicle, error)

	// MergeVehicles moves every voucher from source to target and deletes the
	// source vehicle, atomically. Financial history is preserved.
	MergeVehicles(ctx context.Context, companyID, sourceVehicleID, targetVehicleID string) error
}
