package ledgermath

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// SignedAmount applies the sign convention to a voucher amount:
// a Debit increases the vehicle balance, a Credit decreases it.
// A side that is neither is a data-integrity bug and fails loudly.
func SignedAmount(v domain.Voucher) (decimal.Decimal, error) {
	switch v.Side {
	case domain.Debit:
		return v.Amount, nil
	case domain.Credit:
		return v.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown voucher side '%s' for voucher %d", v.Side, v.VoucherID)
	}
}

// RunningBalances folds vouchers (already in chronological order) into ledger
// rows, attaching the cumulative balance to each. The fold is strictly
// sequential; the caller must not shard it.
func RunningBalances(vouchers []domain.Voucher) ([]domain.LedgerRow, error) {
	rows := make([]domain.LedgerRow, len(vouchers))
	running := decimal.Zero
	for i, v := range vouchers {
		signed, err := SignedAmount(v)
		if err != nil {
			return nil, err
		}
		running = running.Add(signed)
		rows[i] = domain.LedgerRow{Voucher: v, RunningBalance: running}
	}
	return rows, nil
}

// NetSide returns the display side and magnitude for a net balance:
// Debit when net >= 0, Credit otherwise.
func NetSide(net decimal.Decimal) (domain.VoucherSide, decimal.Decimal) {
	if net.IsNegative() {
		return domain.Credit, net.Abs()
	}
	return domain.Debit, net
}
