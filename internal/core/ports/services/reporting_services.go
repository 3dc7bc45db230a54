package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// DayBookSink consumes one batch of a streamed day book. Returning an error
// stops the stream.
type DayBookSink func(batch domain.DayBookBatch) error

// ReportingSvc builds the four report shapes.
type ReportingSvc interface {
	// StreamDayBook produces the full day book for [from, to] in batches of
	// batchSize source rows, threading the company-wide running balance and
	// day subtotals across batch boundaries. Cancellation is honoured at
	// every batch boundary; a mid-stream failure terminates with
	// apperrors.ErrReportIncomplete wrapping the cause.
	StreamDayBook(ctx context.Context, companyID string, from, to time.Time, batchSize int, sink DayBookSink) error

	// ConsolidatedDayBook returns one row per non-empty calendar date.
	ConsolidatedDayBook(ctx context.Context, companyID string, from, to time.Time) ([]domain.ConsolidatedDayRow, error)

	// TrialBalance returns one row per active vehicle as of endDate, ordered
	// by code. Zero balances appear on the debit side.
	TrialBalance(ctx context.Context, companyID string, endDate time.Time) ([]domain.TrialBalanceRow, error)

	// Recovery builds the aging statement, grouped by account-code prefix.
	Recovery(ctx context.Context, companyID string, days int, minimumAmount decimal.Decimal, today time.Time) ([]domain.RecoveryGroup, error)
}
