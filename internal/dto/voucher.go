package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// CreateVoucherRequest is the payload for posting a new voucher. The voucher
// number is allocated server-side and must not be supplied.
type CreateVoucherRequest struct {
	VehicleID string          `json:"vehicleID" binding:"required"`
	Date      time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Side      string          `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Narration string          `json:"narration"`
}

// UpdateVoucherRequest is the payload for amending a voucher. The number is
// immutable; nil fields are left unchanged.
type UpdateVoucherRequest struct {
	Date      *time.Time       `json:"date,omitempty" time_format:"2006-01-02"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Side      *string          `json:"side,omitempty" binding:"omitempty,oneof=DEBIT CREDIT"`
	Narration *string          `json:"narration,omitempty"`
}

// VoucherResponse is the API representation of a voucher.
type VoucherResponse struct {
	VoucherID     int64           `json:"voucherID"`
	CompanyID     string          `json:"companyID"`
	VehicleID     string          `json:"vehicleID"`
	VoucherNumber int64           `json:"voucherNumber"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Side          string          `json:"side"`
	Narration     string          `json:"narration"`
}

// ToVoucherResponse converts a domain Voucher to its API representation.
func ToVoucherResponse(v domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:     v.VoucherID,
		CompanyID:     v.CompanyID,
		VehicleID:     v.VehicleID,
		VoucherNumber: v.VoucherNumber,
		Date:          v.Date.Format("2006-01-02"),
		Amount:        v.Amount,
		Side:          string(v.Side),
		Narration:     v.Narration,
	}
}
