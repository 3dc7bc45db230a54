package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher mirrors the vouchers table.
type Voucher struct {
	VoucherID     int64
	CompanyID     string
	VehicleID     string
	VoucherNumber int64
	Date          time.Time
	Amount        decimal.Decimal
	Side          string
	Narration     string
	AuditFields
}
