package repositories

import (
	"context"
	"time"

	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// ReportingRepository defines the aggregate queries the report generator
// composes. Everything here is read-only.
type ReportingRepository interface {
	// GetConsolidatedDayTotals returns per-date debit/credit totals for the
	// range, date ascending. Dates with no vouchers produce no row.
	GetConsolidatedDayTotals(ctx context.Context, companyID string, from, to time.Time) ([]domain.ConsolidatedDayRow, error)

	// GetVehicleNets returns one row per active vehicle with its net balance
	// as of the cutoff, ordered by vehicle code ascending. Vehicles without
	// vouchers are included at zero.
	GetVehicleNets(ctx context.Context, companyID string, asOf time.Time) ([]domain.VehicleNet, error)

	// GetRecoveryData returns per active vehicle: current balance, the date
	// of the most recent voucher of any kind, and the amount of the most
	// recent credit voucher. Ordered by vehicle code ascending.
	GetRecoveryData(ctx context.Context, companyID string) ([]domain.RecoveryData, error)
}
