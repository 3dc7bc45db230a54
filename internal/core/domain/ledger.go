package domain

import "github.com/shopspring/decimal"

// LedgerRow is one voucher with its precomputed running balance attached.
// The running balance is cumulative from the beginning of the vehicle's
// history regardless of which page window the row was fetched through.
type LedgerRow struct {
	Voucher
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerPage is one display window over a vehicle's transaction history.
// Rows are ordered most-recent-first for display; the running balances were
// computed chronologically before slicing.
type LedgerPage struct {
	Rows       []LedgerRow `json:"rows"`
	TotalCount int         `json:"totalCount"`
	HasMore    bool        `json:"hasMore"`
}
