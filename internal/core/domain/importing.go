package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleRecord is one already-parsed account row from an external dump.
type VehicleRecord struct {
	Code      string `json:"code"`
	Narration string `json:"narration"`
}

// VoucherRecord is one already-parsed voucher row from an external dump.
// Number is the external voucher number, kept verbatim.
type VoucherRecord struct {
	Number      int64           `json:"number"`
	Date        time.Time       `json:"date"`
	VehicleCode string          `json:"vehicleCode"`
	Amount      decimal.Decimal `json:"amount"`
	Side        VoucherSide     `json:"side"`
	Narration   string          `json:"narration"`
}

// ImportRecords is the validated input the reconciliation importer works
// from, regardless of which parsing strategy produced it.
type ImportRecords struct {
	Vehicles []VehicleRecord `json:"vehicles"`
	Vouchers []VoucherRecord `json:"vouchers"`
}

// ImportOptions controls a reconciliation import run.
type ImportOptions struct {
	DryRun                bool `json:"dryRun"`
	CreateMissingVehicles bool `json:"createMissingVehicles"`
}

// ImportResult summarises an import run. A dry run produces the same shape
// with zero writes so it can be shown as a preview.
type ImportResult struct {
	VehiclesParsed   int      `json:"vehiclesParsed"`
	VehiclesInserted int      `json:"vehiclesInserted"`
	VouchersParsed   int      `json:"vouchersParsed"`
	VouchersInserted int      `json:"vouchersInserted"`
	Warnings         []string `json:"warnings"`
	Errors           []string `json:"errors"`
}
