package repositories

import (
	"context"
	"time"

	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// VehicleReader defines read operations for vehicle account data.
type VehicleReader interface {
	// FindVehicleByID retrieves a vehicle by its unique identifier.
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)

	// FindVehicleByCode retrieves a vehicle by company and account code.
	// The lookup is case-insensitive.
	FindVehicleByCode(ctx context.Context, companyID, code string) (*domain.Vehicle, error)

	// ListVehicles retrieves vehicles for a company ordered by code.
	ListVehicles(ctx context.Context, companyID string, activeOnly bool) ([]domain.Vehicle, error)
}

// VehicleWriter defines write operations for vehicle account data.
type VehicleWriter interface {
	// SaveVehicle persists a new vehicle.
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error

	// UpdateVehicle updates an existing vehicle's details.
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error

	// DeactivateVehicle marks a vehicle as inactive.
	DeactivateVehicle(ctx context.Context, vehicleID string, now time.Time) error

	// MergeVehicles reassigns every voucher from the source vehicle to the
	// target and deletes the source, all inside one transaction. Partial
	// failure leaves the original state untouched.
	MergeVehicles(ctx context.Context, companyID, sourceVehicleID, targetVehicleID string) error
}

// VehicleRepositoryFacade combines all vehicle-related repository interfaces.
type VehicleRepositoryFacade interface {
	VehicleReader
	VehicleWriter
}
