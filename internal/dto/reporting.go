package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// DayBookLineResponse is one line of the full day book: either a voucher row
// or a day-subtotal row.
type DayBookLineResponse struct {
	Kind           string          `json:"kind"`
	VoucherNumber  int64           `json:"voucherNumber,omitempty"`
	Date           string          `json:"date"`
	VehicleCode    string          `json:"vehicleCode,omitempty"`
	Amount         decimal.Decimal `json:"amount,omitempty"`
	Side           string          `json:"side,omitempty"`
	Narration      string          `json:"narration,omitempty"`
	TotalDebit     decimal.Decimal `json:"totalDebit,omitempty"`
	TotalCredit    decimal.Decimal `json:"totalCredit,omitempty"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// DayBookResponse is a fully accumulated day book (the non-streaming shape).
type DayBookResponse struct {
	FromDate   string                `json:"fromDate"`
	ToDate     string                `json:"toDate"`
	Lines      []DayBookLineResponse `json:"lines"`
	TotalCount int                   `json:"totalCount"`
	Complete   bool                  `json:"complete"`
}

// ConsolidatedDayBookResponse lists per-day totals for the range.
type ConsolidatedDayBookResponse struct {
	FromDate string                       `json:"fromDate"`
	ToDate   string                       `json:"toDate"`
	Rows     []ConsolidatedDayRowResponse `json:"rows"`
}

// ConsolidatedDayRowResponse is one calendar date's totals.
type ConsolidatedDayRowResponse struct {
	Date        string          `json:"date"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// TrialBalanceRowResponse is one vehicle's trial balance row.
type TrialBalanceRowResponse struct {
	VehicleID string          `json:"vehicleID"`
	Code      string          `json:"code"`
	Amount    decimal.Decimal `json:"amount"`
	Side      string          `json:"side"`
}

// TrialBalanceResponse is the trial balance report.
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// RecoveryRowResponse is one stale account in the aging statement.
type RecoveryRowResponse struct {
	VehicleID        string          `json:"vehicleID"`
	Code             string          `json:"code"`
	LastCreditAmount decimal.Decimal `json:"lastCreditAmount"`
	LastTxnDate      string          `json:"lastTxnDate,omitempty"` // Empty means never
	Balance          decimal.Decimal `json:"balance"`
	DaysSince        int             `json:"daysSince"`
}

// RecoveryGroupResponse is one account-code prefix group.
type RecoveryGroupResponse struct {
	Prefix     string                `json:"prefix"`
	ShowHeader bool                  `json:"showHeader"`
	Rows       []RecoveryRowResponse `json:"rows"`
}

// RecoveryResponse is the aging/recovery statement.
type RecoveryResponse struct {
	Days          int                     `json:"days"`
	MinimumAmount decimal.Decimal         `json:"minimumAmount"`
	Groups        []RecoveryGroupResponse `json:"groups"`
}

// ToDayBookLineResponse converts a domain day-book line.
func ToDayBookLineResponse(l domain.DayBookLine) DayBookLineResponse {
	if l.Kind == domain.DayBookSubtotalLine && l.Subtotal != nil {
		return DayBookLineResponse{
			Kind:           string(l.Kind),
			Date:           l.Subtotal.Date.Format("2006-01-02"),
			TotalDebit:     l.Subtotal.TotalDebit,
			TotalCredit:    l.Subtotal.TotalCredit,
			RunningBalance: l.Subtotal.ClosingBalance,
		}
	}
	v := l.Voucher
	return DayBookLineResponse{
		Kind:           string(l.Kind),
		VoucherNumber:  v.VoucherNumber,
		Date:           v.Date.Format("2006-01-02"),
		VehicleCode:    v.VehicleCode,
		Amount:         v.Amount,
		Side:           string(v.Side),
		Narration:      v.Narration,
		RunningBalance: v.RunningBalance,
	}
}

// ToConsolidatedDayBookResponse converts per-day totals.
func ToConsolidatedDayBookResponse(rows []domain.ConsolidatedDayRow, from, to string) ConsolidatedDayBookResponse {
	resp := ConsolidatedDayBookResponse{
		FromDate: from,
		ToDate:   to,
		Rows:     make([]ConsolidatedDayRowResponse, len(rows)),
	}
	for i, r := range rows {
		resp.Rows[i] = ConsolidatedDayRowResponse{
			Date:        r.Date.Format("2006-01-02"),
			TotalDebit:  r.TotalDebit,
			TotalCredit: r.TotalCredit,
		}
	}
	return resp
}

// ToTrialBalanceResponse converts trial balance rows, accumulating side totals.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, asOf string) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		AsOf: asOf,
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, r := range rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			VehicleID: r.VehicleID,
			Code:      r.Code,
			Amount:    r.Amount,
			Side:      string(r.Side),
		}
		if r.Side == domain.Debit {
			totalDebit = totalDebit.Add(r.Amount)
		} else {
			totalCredit = totalCredit.Add(r.Amount)
		}
	}
	resp.Totals.Debit = totalDebit
	resp.Totals.Credit = totalCredit
	return resp
}

// ToRecoveryResponse converts grouped recovery rows.
func ToRecoveryResponse(groups []domain.RecoveryGroup, days int, minimumAmount decimal.Decimal) RecoveryResponse {
	resp := RecoveryResponse{
		Days:          days,
		MinimumAmount: minimumAmount,
		Groups:        make([]RecoveryGroupResponse, len(groups)),
	}
	for i, g := range groups {
		gr := RecoveryGroupResponse{
			Prefix:     g.Prefix,
			ShowHeader: g.ShowHeader,
			Rows:       make([]RecoveryRowResponse, len(g.Rows)),
		}
		for j, r := range g.Rows {
			row := RecoveryRowResponse{
				VehicleID:        r.VehicleID,
				Code:             r.Code,
				LastCreditAmount: r.LastCreditAmount,
				Balance:          r.Balance,
				DaysSince:        r.DaysSince,
			}
			if r.LastTxnDate != nil {
				row.LastTxnDate = r.LastTxnDate.Format("2006-01-02")
			}
			gr.Rows[j] = row
		}
		resp.Groups[i] = gr
	}
	return resp
}
