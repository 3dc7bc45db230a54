package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/pagination"
)

// LedgerSvc computes balances and assembles paginated vehicle ledgers.
type LedgerSvc interface {
	// Balance returns the vehicle's signed balance as of the cutoff
	// (nil means all time). Zero for a vehicle with no postings.
	Balance(ctx context.Context, companyID, vehicleID string, asOf *time.Time) (decimal.Decimal, error)

	// GetLedger returns one display window of the vehicle's history with the
	// true cumulative running balance attached to every row. Pagination is
	// transparent to the values, only to the transport.
	GetLedger(ctx context.Context, companyID, vehicleID string, page pagination.Page) (*domain.LedgerPage, error)
}
