package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/grouping"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/ledgermath"
)

// reportingService implements the ReportingSvc interface.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	voucherRepo   portsrepo.VoucherRepositoryFacade
	vehicleRepo   portsrepo.VehicleRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, voucherRepo portsrepo.VoucherRepositoryFacade, vehicleRepo portsrepo.VehicleRepositoryFacade) portssvc.ReportingSvc {
	return &reportingService{
		reportingRepo: reportingRepo,
		voucherRepo:   voucherRepo,
		vehicleRepo:   vehicleRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// dayBookState is the fold state carried across source pages: the
// company-wide running balance plus the open day's aggregates. It is never
// recomputed from scratch mid-stream.
type dayBookState struct {
	running   decimal.Decimal
	dayOpen   bool
	day       time.Time
	dayDebit  decimal.Decimal
	dayCredit decimal.Decimal
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StreamDayBook produces the full day book for [from, to] in source pages of
// batchSize rows, delivering each page to the sink as soon as it is folded.
// The single company-wide running balance threads across the whole range; a
// subtotal line is emitted whenever the date changes, and once more after the
// final voucher. Batches are produced strictly in page order because the fold
// state carries forward. Cancellation is checked at every batch boundary; any
// mid-stream failure is wrapped in ErrReportIncomplete so the caller knows to
// discard partial output rather than present it as a complete report.
func (s *reportingService) StreamDayBook(ctx context.Context, companyID string, from, to time.Time, batchSize int, sink portssvc.DayBookSink) error {
	if batchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", apperrors.ErrValidation, batchSize)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}

	total, err := s.voucherRepo.CountVouchersByCompany(ctx, companyID, from, to)
	if err != nil {
		return fmt.Errorf("%w: counting day book rows: %w", apperrors.ErrReportIncomplete, err)
	}

	codes, err := s.vehicleCodes(ctx, companyID)
	if err != nil {
		return fmt.Errorf("%w: loading vehicle codes: %w", apperrors.ErrReportIncomplete, err)
	}

	if total == 0 {
		return sink(domain.DayBookBatch{Lines: []domain.DayBookLine{}, Processed: 0, TotalCount: 0, IsLast: true})
	}

	state := dayBookState{
		running:   decimal.Zero,
		dayDebit:  decimal.Zero,
		dayCredit: decimal.Zero,
	}
	processed := 0

	for offset := 0; offset < total; offset += batchSize {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: cancelled after %d of %d rows: %w", apperrors.ErrReportIncomplete, processed, total, err)
		}

		vouchers, err := s.voucherRepo.ListVouchersByCompany(ctx, companyID, from, to, batchSize, offset)
		if err != nil {
			return fmt.Errorf("%w: fetching day book page at offset %d: %w", apperrors.ErrReportIncomplete, offset, err)
		}

		lines := make([]domain.DayBookLine, 0, len(vouchers)+1)
		for _, v := range vouchers {
			if state.dayOpen && !sameDay(v.Date, state.day) {
				lines = append(lines, subtotalLine(state))
				state.dayDebit = decimal.Zero
				state.dayCredit = decimal.Zero
			}

			signed, err := ledgermath.SignedAmount(v)
			if err != nil {
				return fmt.Errorf("%w: %w", apperrors.ErrReportIncomplete, err)
			}
			state.running = state.running.Add(signed)
			state.day = v.Date
			state.dayOpen = true
			if v.Side == domain.Debit {
				state.dayDebit = state.dayDebit.Add(v.Amount)
			} else {
				state.dayCredit = state.dayCredit.Add(v.Amount)
			}

			lines = append(lines, domain.DayBookLine{
				Kind: domain.DayBookVoucherLine,
				Voucher: &domain.DayBookVoucher{
					VoucherID:      v.VoucherID,
					VoucherNumber:  v.VoucherNumber,
					Date:           v.Date,
					VehicleID:      v.VehicleID,
					VehicleCode:    codes[v.VehicleID],
					Amount:         v.Amount,
					Side:           v.Side,
					Narration:      v.Narration,
					RunningBalance: state.running,
				},
			})
			processed++
		}

		isLast := processed >= total
		if isLast && state.dayOpen {
			lines = append(lines, subtotalLine(state))
		}

		if err := sink(domain.DayBookBatch{
			Lines:      lines,
			Processed:  processed,
			TotalCount: total,
			IsLast:     isLast,
		}); err != nil {
			return fmt.Errorf("%w: sink rejected batch at %d of %d rows: %w", apperrors.ErrReportIncomplete, processed, total, err)
		}
	}

	return nil
}

func subtotalLine(state dayBookState) domain.DayBookLine {
	return domain.DayBookLine{
		Kind: domain.DayBookSubtotalLine,
		Subtotal: &domain.DaySubtotal{
			Date:           state.day,
			TotalDebit:     state.dayDebit,
			TotalCredit:    state.dayCredit,
			ClosingBalance: state.running,
		},
	}
}

// ConsolidatedDayBook returns one row per non-empty calendar date in range,
// date ascending. Empty days produce no row at all.
func (s *reportingService) ConsolidatedDayBook(ctx context.Context, companyID string, from, to time.Time) ([]domain.ConsolidatedDayRow, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}
	rows, err := s.reportingRepo.GetConsolidatedDayTotals(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build consolidated day book: %w", err)
	}
	return rows, nil
}

// TrialBalance returns one row per active vehicle as of endDate, ordered by
// account code. The row carries |net| with the side convention Debit when
// net >= 0; a vehicle with no postings still produces a zero row on the
// debit side.
func (s *reportingService) TrialBalance(ctx context.Context, companyID string, endDate time.Time) ([]domain.TrialBalanceRow, error) {
	nets, err := s.reportingRepo.GetVehicleNets(ctx, companyID, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to build trial balance: %w", err)
	}

	rows := make([]domain.TrialBalanceRow, len(nets))
	for i, n := range nets {
		side, amount := ledgermath.NetSide(n.Net)
		rows[i] = domain.TrialBalanceRow{
			VehicleID: n.VehicleID,
			Code:      n.Code,
			Amount:    amount,
			Side:      side,
		}
	}
	return rows, nil
}

// Recovery builds the aging statement: active vehicles whose most recent
// voucher of ANY kind is older than today-days (or who never transacted),
// whose balance is strictly positive, and whose most recent CREDIT amount
// (zero if none) meets minimumAmount. The days filter looks at all voucher
// kinds while the amount filter looks only at credits; that asymmetry is the
// established report behaviour.
func (s *reportingService) Recovery(ctx context.Context, companyID string, days int, minimumAmount decimal.Decimal, today time.Time) ([]domain.RecoveryGroup, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must not be negative, got %d", apperrors.ErrValidation, days)
	}

	data, err := s.reportingRepo.GetRecoveryData(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to build recovery statement: %w", err)
	}

	groupIndex := map[string]int{}
	groups := []domain.RecoveryGroup{}

	for _, d := range data {
		daysSince := domain.NeverDaysSince
		if d.LastTxnDate != nil {
			daysSince = int(today.Sub(*d.LastTxnDate).Hours() / 24)
		}
		if daysSince <= days {
			continue
		}
		if !d.Balance.IsPositive() {
			continue
		}
		lastCredit := decimal.Zero
		if d.LastCreditAmount != nil {
			lastCredit = *d.LastCreditAmount
		}
		if lastCredit.LessThan(minimumAmount) {
			continue
		}

		row := domain.RecoveryRow{
			VehicleID:        d.VehicleID,
			Code:             d.Code,
			LastCreditAmount: lastCredit,
			LastTxnDate:      d.LastTxnDate,
			Balance:          d.Balance,
			DaysSince:        daysSince,
		}

		prefix := grouping.CodePrefix(d.Code)
		idx, ok := groupIndex[prefix]
		if !ok {
			idx = len(groups)
			groupIndex[prefix] = idx
			groups = append(groups, domain.RecoveryGroup{Prefix: prefix})
		}
		groups[idx].Rows = append(groups[idx].Rows, row)
	}

	// Source rows arrive ordered by code, so rows within a group are already
	// sorted; only the header flag is decided after grouping.
	for i := range groups {
		groups[i].ShowHeader = len(groups[i].Rows) >= 3
	}
	return groups, nil
}

func (s *reportingService) vehicleCodes(ctx context.Context, companyID string) (map[string]string, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx, companyID, false)
	if err != nil {
		return nil, err
	}
	codes := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		codes[v.VehicleID] = v.Code
	}
	return codes, nil
}
