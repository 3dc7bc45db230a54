package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayBookLineKind discriminates voucher detail lines from day-subtotal lines.
type DayBookLineKind string

const (
	DayBookVoucherLine  DayBookLineKind = "VOUCHER"
	DayBookSubtotalLine DayBookLineKind = "DAY_SUBTOTAL"
)

// DayBookVoucher is one voucher row in the full day book, with the
// company-wide running balance threaded across the whole range.
type DayBookVoucher struct {
	VoucherID      int64           `json:"voucherID"`
	VoucherNumber  int64           `json:"voucherNumber"`
	Date           time.Time       `json:"date"`
	VehicleID      string          `json:"vehicleID"`
	VehicleCode    string          `json:"vehicleCode"`
	Amount         decimal.Decimal `json:"amount"`
	Side           VoucherSide     `json:"side"`
	Narration      string          `json:"narration"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// DaySubtotal is the boundary row emitted when the date changes: that day's
// debit/credit totals plus the running balance as of the end of the day.
type DaySubtotal struct {
	Date           time.Time       `json:"date"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// DayBookLine is either a voucher line or a day subtotal.
type DayBookLine struct {
	Kind     DayBookLineKind `json:"kind"`
	Voucher  *DayBookVoucher `json:"voucher,omitempty"`
	Subtotal *DaySubtotal    `json:"subtotal,omitempty"`
}

// DayBookBatch is one increment of a streamed full day book. Batches arrive
// strictly in page order; running-balance and subtotal state is carried
// across batch boundaries by the generator.
type DayBookBatch struct {
	Lines      []DayBookLine `json:"lines"`
	Processed  int           `json:"processed"`
	TotalCount int           `json:"totalCount"`
	IsLast     bool          `json:"isLast"`
}

// ConsolidatedDayRow is one calendar date's debit/credit totals. Dates with
// no vouchers produce no row.
type ConsolidatedDayRow struct {
	Date        time.Time       `json:"date"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// TrialBalanceRow is one active vehicle's balance snapshot as of the report
// end date. A zero balance is reported on the debit side.
type TrialBalanceRow struct {
	VehicleID string          `json:"vehicleID"`
	Code      string          `json:"code"`
	Amount    decimal.Decimal `json:"amount"` // |net|
	Side      VoucherSide     `json:"side"`   // Debit when net >= 0
}

// NeverDaysSince is the sentinel reported for vehicles with no vouchers.
const NeverDaysSince = 9999

// RecoveryRow describes one stale account in the aging statement.
// LastTxnDate is nil when the vehicle has never transacted.
type RecoveryRow struct {
	VehicleID        string          `json:"vehicleID"`
	Code             string          `json:"code"`
	LastCreditAmount decimal.Decimal `json:"lastCreditAmount"`
	LastTxnDate      *time.Time      `json:"lastTxnDate,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
	DaysSince        int             `json:"daysSince"`
}

// RecoveryGroup collects recovery rows sharing an account-code prefix
// (state code + digit run, e.g. "UP-25"). ShowHeader is set only for groups
// with at least three members.
type RecoveryGroup struct {
	Prefix     string        `json:"prefix"`
	ShowHeader bool          `json:"showHeader"`
	Rows       []RecoveryRow `json:"rows"`
}
