package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherSide indicates whether a voucher debits or credits its vehicle account.
type VoucherSide string

const (
	Debit  VoucherSide = "DEBIT"
	Credit VoucherSide = "CREDIT"
)

// Voucher is a single dated Dr/Cr entry against one vehicle account.
// VoucherNumber is assigned once at creation from the company sequence and is
// never changed on update. The database id is a bigserial so that two vouchers
// dated the same day keep a deterministic, insertion-stable order.
type Voucher struct {
	VoucherID     int64           `json:"voucherID"` // Primary Key (BIGSERIAL)
	CompanyID     string          `json:"companyID"`
	VehicleID     string          `json:"vehicleID"`
	VoucherNumber int64           `json:"voucherNumber"` // Unique within (company, number)
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"` // Positive magnitude
	Side          VoucherSide     `json:"side"`
	Narration     string          `json:"narration"`
	AuditFields
}
