package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// LedgerRowResponse is one ledger row with its running balance.
type LedgerRowResponse struct {
	VoucherID      int64           `json:"voucherID"`
	VoucherNumber  int64           `json:"voucherNumber"`
	Date           string          `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Side           string          `json:"side"`
	Narration      string          `json:"narration"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerPageResponse is one display window of a vehicle's ledger.
type LedgerPageResponse struct {
	Rows       []LedgerRowResponse `json:"rows"`
	TotalCount int                 `json:"totalCount"`
	HasMore    bool                `json:"hasMore"`
}

// BalanceResponse is a vehicle balance snapshot.
type BalanceResponse struct {
	VehicleID string          `json:"vehicleID"`
	AsOf      string          `json:"asOf,omitempty"` // Empty means all time
	Balance   decimal.Decimal `json:"balance"`
}

// ToLedgerPageResponse converts a domain LedgerPage to its API representation.
func ToLedgerPageResponse(p domain.LedgerPage) LedgerPageResponse {
	resp := LedgerPageResponse{
		Rows:       make([]LedgerRowResponse, len(p.Rows)),
		TotalCount: p.TotalCount,
		HasMore:    p.HasMore,
	}
	for i, r := range p.Rows {
		resp.Rows[i] = LedgerRowResponse{
			VoucherID:      r.VoucherID,
			VoucherNumber:  r.VoucherNumber,
			Date:           r.Date.Format("2006-01-02"),
			Amount:         r.Amount,
			Side:           string(r.Side),
			Narration:      r.Narration,
			RunningBalance: r.RunningBalance,
		}
	}
	return resp
}
