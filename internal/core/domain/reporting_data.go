package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleNet is the raw per-vehicle net figure the trial balance is built
// from. Net follows the Dr-positive convention; vehicles with no vouchers in
// range carry a zero net.
type VehicleNet struct {
	VehicleID string
	Code      string
	Net       decimal.Decimal
}

// RecoveryData is the raw per-vehicle aggregate the aging statement filters.
// LastTxnDate is nil for vehicles that never transacted; LastCreditAmount is
// nil when no credit voucher exists.
type RecoveryData struct {
	VehicleID        string
	Code             string
	Balance          decimal.Decimal
	LastTxnDate      *time.Time
	LastCreditAmount *decimal.Decimal
}
