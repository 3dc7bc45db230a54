package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockVoucherRepo   *MockVoucherRepository
	mockVehicleRepo   *MockVehicleRepository
	service           portssvc.ReportingSvc

	companyID string
	vehicleID string
	from      time.Time
	to        time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockVehicleRepo = new(MockVehicleRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockVoucherRepo, suite.mockVehicleRepo)

	suite.companyID = uuid.NewString()
	suite.vehicleID = uuid.NewString()
	suite.from = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) expectVehicleList() {
	vehicles := []domain.Vehicle{{VehicleID: suite.vehicleID, CompanyID: suite.companyID, Code: "UP-25C-1234", IsActive: true}}
	suite.mockVehicleRepo.On("ListVehicles", context.Background(), suite.companyID, false).Return(vehicles, nil).Once()
}

// dayBookVouchers: day1 carries D100 and C40, day2 carries D20. Running
// balance ends at 80.
func (suite *ReportingServiceTestSuite) dayBookVouchers() []domain.Voucher {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	return []domain.Voucher{
		{VoucherID: 1, CompanyID: suite.companyID, VehicleID: suite.vehicleID, VoucherNumber: 1, Date: day1, Amount: decimal.NewFromInt(100), Side: domain.Debit},
		{VoucherID: 2, CompanyID: suite.companyID, VehicleID: suite.vehicleID, VoucherNumber: 2, Date: day1, Amount: decimal.NewFromInt(40), Side: domain.Credit},
		{VoucherID: 3, CompanyID: suite.companyID, VehicleID: suite.vehicleID, VoucherNumber: 3, Date: day2, Amount: decimal.NewFromInt(20), Side: domain.Debit},
	}
}

func (suite *ReportingServiceTestSuite) TestStreamDayBook_SubtotalsAndRunningBalanceAcrossBatches() {
	ctx := context.Background()
	vouchers := suite.dayBookVouchers()

	suite.mockVoucherRepo.On("CountVouchersByCompany", ctx, suite.companyID, suite.from, suite.to).Return(3, nil).Once()
	suite.expectVehicleList()
	suite.mockVoucherRepo.On("ListVouchersByCompany", ctx, suite.companyID, suite.from, suite.to, 2, 0).Return(vouchers[0:2], nil).Once()
	suite.mockVoucherRepo.On("ListVouchersByCompany", ctx, suite.companyID, suite.from, suite.to, 2, 2).Return(vouchers[2:3], nil).Once()

	var batches []domain.DayBookBatch
	err := suite.service.StreamDayBook(ctx, suite.companyID, suite.from, suite.to, 2, func(b domain.DayBookBatch) error {
		batches = append(batches, b)
		return nil
	})

	suite.Require().NoError(err)
	suite.Require().Len(batches, 2)

	// First batch: two day-1 vouchers, the day still open (its subtotal
	// belongs to the next batch, emitted when day 2 begins).
	suite.Equal(2, batches[0].Processed)
	suite.Equal(3, batches[0].TotalCount)
	suite.False(batches[0].IsLast)
	suite.Require().Len(batches[0].Lines, 2)
	suite.Equal(domain.DayBookVoucherLine, batches[0].Lines[0].Kind)
	suite.True(batches[0].Lines[0].Voucher.RunningBalance.Equal(decimal.NewFromInt(100)))
	suite.True(batches[0].Lines[1].Voucher.RunningBalance.Equal(decimal.NewFromInt(60)))
	suite.Equal("UP-25C-1234", batches[0].Lines[0].Voucher.VehicleCode)

	// Second batch: day-1 subtotal, the day-2 voucher, then the closing
	// day-2 subtotal.
	suite.Equal(3, batches[1].Processed)
	suite.True(batches[1].IsLast)
	suite.Require().Len(batches[1].Lines, 3)

	day1Subtotal := batches[1].Lines[0]
	suite.Equal(domain.DayBookSubtotalLine, day1Subtotal.Kind)
	suite.True(day1Subtotal.Subtotal.TotalDebit.Equal(decimal.NewFromInt(100)))
	suite.True(day1Subtotal.Subtotal.TotalCredit.Equal(decimal.NewFromInt(40)))
	suite.True(day1Subtotal.Subtotal.ClosingBalance.Equal(decimal.NewFromInt(60)))

	suite.Equal(domain.DayBookVoucherLine, batches[1].Lines[1].Kind)
	suite.True(batches[1].Lines[1].Voucher.RunningBalance.Equal(decimal.NewFromInt(80)))

	day2Subtotal := batches[1].Lines[2]
	suite.Equal(domain.DayBookSubtotalLine, day2Subtotal.Kind)
	suite.True(day2Subtotal.Subtotal.TotalDebit.Equal(decimal.NewFromInt(20)))
	suite.True(day2Subtotal.Subtotal.TotalCredit.Equal(decimal.Zero))
	suite.True(day2Subtotal.Subtotal.ClosingBalance.Equal(decimal.NewFromInt(80)))

	// Summing all per-day subtotal pairs equals the grand totals for the
	// range: 120 debit, 40 credit.
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, b := range batches {
		for _, line := range b.Lines {
			if line.Kind == domain.DayBookSubtotalLine {
				totalDebit = totalDebit.Add(line.Subtotal.TotalDebit)
				totalCredit = totalCredit.Add(line.Subtotal.TotalCredit)
			}
		}
	}
	suite.True(totalDebit.Equal(decimal.NewFromInt(120)))
	suite.True(totalCredit.Equal(decimal.NewFromInt(40)))
}

func (suite *ReportingServiceTestSuite) TestStreamDayBook_EmptyRange() {
	ctx := context.Background()
	suite.mockVoucherRepo.On("CountVouchersByCompany", ctx, suite.companyID, suite.from, suite.to).Return(0, nil).Once()
	suite.expectVehicleList()

	var batches []domain.DayBookBatch
	err := suite.service.StreamDayBook(ctx, suite.companyID, suite.from, suite.to, 100, func(b domain.DayBookBatch) error {
		batches = append(batches, b)
		return nil
	})

	suite.Require().NoError(err)
	suite.Require().Len(batches, 1)
	suite.Empty(batches[0].Lines)
	suite.True(batches[0].IsLast)
}

func (suite *ReportingServiceTestSuite) TestStreamDayBook_CancelledMidStream() {
	ctx, cancel := context.WithCancel(context.Background())
	vouchers := suite.dayBookVouchers()

	suite.mockVoucherRepo.On("CountVouchersByCompany", ctx, suite.companyID, suite.from, suite.to).Return(3, nil).Once()
	vehicles := []domain.Vehicle{{VehicleID: suite.vehicleID, CompanyID: suite.companyID, Code: "UP-25C-1234", IsActive: true}}
	suite.mockVehicleRepo.On("ListVehicles", ctx, suite.companyID, false).Return(vehicles, nil).Once()
	suite.mockVoucherRepo.On("ListVouchersByCompany", ctx, suite.companyID, suite.from, suite.to, 2, 0).Return(vouchers[0:2], nil).Once()

	err := suite.service.StreamDayBook(ctx, suite.companyID, suite.from, suite.to, 2, func(b domain.DayBookBatch) error {
		cancel()
		return nil
	})

	// The caller is told "cancelled", never handed a silently truncated
	// report.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReportIncomplete)
	suite.ErrorIs(err, context.Canceled)
}

func (suite *ReportingServiceTestSuite) TestStreamDayBook_SinkErrorStopsStream() {
	ctx := context.Background()
	vouchers := suite.dayBookVouchers()

	suite.mockVoucherRepo.On("CountVouchersByCompany", ctx, suite.companyID, suite.from, suite.to).Return(3, nil).Once()
	suite.expectVehicleList()
	suite.mockVoucherRepo.On("ListVouchersByCompany", ctx, suite.companyID, suite.from, suite.to, 2, 0).Return(vouchers[0:2], nil).Once()

	sinkErr := errors.New("renderer went away")
	err := suite.service.StreamDayBook(ctx, suite.companyID, suite.from, suite.to, 2, func(b domain.DayBookBatch) error {
		return sinkErr
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReportIncomplete)
	suite.ErrorIs(err, sinkErr)
}

func (suite *ReportingServiceTestSuite) TestStreamDayBook_RejectsBadBatchSize() {
	err := suite.service.StreamDayBook(context.Background(), suite.companyID, suite.from, suite.to, 0, func(b domain.DayBookBatch) error {
		return nil
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestConsolidatedDayBook_SkipsEmptyDays() {
	ctx := context.Background()
	// Only two of the days in range have activity; no zero rows appear for
	// the rest.
	rows := []domain.ConsolidatedDayRow{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), TotalDebit: decimal.NewFromInt(100), TotalCredit: decimal.NewFromInt(40)},
		{Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), TotalDebit: decimal.NewFromInt(20), TotalCredit: decimal.Zero},
	}
	suite.mockReportingRepo.On("GetConsolidatedDayTotals", ctx, suite.companyID, suite.from, suite.to).Return(rows, nil).Once()

	got, err := suite.service.ConsolidatedDayBook(ctx, suite.companyID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(rows[0].Date, got[0].Date)
	suite.Equal(rows[1].Date, got[1].Date)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_SidesAndClosure() {
	ctx := context.Background()
	nets := []domain.VehicleNet{
		{VehicleID: uuid.NewString(), Code: "UP-25A-0001", Net: decimal.NewFromInt(150)},
		{VehicleID: uuid.NewString(), Code: "UP-25B-0002", Net: decimal.NewFromInt(-70)},
		{VehicleID: uuid.NewString(), Code: "UP-25C-0003", Net: decimal.Zero},
	}
	suite.mockReportingRepo.On("GetVehicleNets", ctx, suite.companyID, suite.to).Return(nets, nil).Once()

	rows, err := suite.service.TrialBalance(ctx, suite.companyID, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal(domain.Debit, rows[0].Side)
	suite.True(rows[0].Amount.Equal(decimal.NewFromInt(150)))
	suite.Equal(domain.Credit, rows[1].Side)
	suite.True(rows[1].Amount.Equal(decimal.NewFromInt(70)))
	// Zero still produces a debit-side row.
	suite.Equal(domain.Debit, rows[2].Side)
	suite.True(rows[2].Amount.Equal(decimal.Zero))

	// Closure: debit total minus credit total equals the sum of nets.
	debits, credits := decimal.Zero, decimal.Zero
	for _, r := range rows {
		if r.Side == domain.Debit {
			debits = debits.Add(r.Amount)
		} else {
			credits = credits.Add(r.Amount)
		}
	}
	netSum := decimal.Zero
	for _, n := range nets {
		netSum = netSum.Add(n.Net)
	}
	suite.True(debits.Sub(credits).Equal(netSum))
}

func (suite *ReportingServiceTestSuite) TestRecovery_Filters() {
	ctx := context.Background()
	today := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	daysAgo := func(n int) *time.Time {
		d := today.AddDate(0, 0, -n)
		return &d
	}
	amt := func(n int64) *decimal.Decimal {
		d := decimal.NewFromInt(n)
		return &d
	}

	data := []domain.RecoveryData{
		// Balance 300: excluded regardless of age.
		{VehicleID: uuid.NewString(), Code: "UP-25A-0001", Balance: decimal.NewFromInt(300), LastTxnDate: daysAgo(90), LastCreditAmount: amt(600)},
		// Last credit 400 < 500: excluded by the minimum-amount filter.
		{VehicleID: uuid.NewString(), Code: "UP-25B-0002", Balance: decimal.NewFromInt(600), LastTxnDate: daysAgo(90), LastCreditAmount: amt(400)},
		// Balance 600, last credit 500, 45 days stale: included.
		{VehicleID: uuid.NewString(), Code: "UP-25C-0003", Balance: decimal.NewFromInt(600), LastTxnDate: daysAgo(45), LastCreditAmount: amt(500)},
		// Recent activity: excluded by the days filter.
		{VehicleID: uuid.NewString(), Code: "UP-25D-0004", Balance: decimal.NewFromInt(600), LastTxnDate: daysAgo(10), LastCreditAmount: amt(500)},
	}
	suite.mockReportingRepo.On("GetRecoveryData", ctx, suite.companyID).Return(data, nil).Once()

	groups, err := suite.service.Recovery(ctx, suite.companyID, 30, decimal.NewFromInt(500), today)

	suite.Require().NoError(err)
	suite.Require().Len(groups, 1)
	suite.Equal("UP-25", groups[0].Prefix)
	suite.Require().Len(groups[0].Rows, 1)
	suite.Equal("UP-25C-0003", groups[0].Rows[0].Code)
	suite.Equal(45, groups[0].Rows[0].DaysSince)
	suite.False(groups[0].ShowHeader)
}

func (suite *ReportingServiceTestSuite) TestRecovery_NeverTransactedSentinel() {
	ctx := context.Background()
	today := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	// Positive balance with no vouchers can only arise from stale data, but
	// the filter must still cope: no last date means "never", sentinel 9999,
	// last credit treated as zero.
	data := []domain.RecoveryData{
		{VehicleID: uuid.NewString(), Code: "UP-25A-0001", Balance: decimal.NewFromInt(600), LastTxnDate: nil, LastCreditAmount: nil},
	}
	suite.mockReportingRepo.On("GetRecoveryData", ctx, suite.companyID).Return(data, nil).Once()

	groups, err := suite.service.Recovery(ctx, suite.companyID, 30, decimal.Zero, today)

	suite.Require().NoError(err)
	suite.Require().Len(groups, 1)
	suite.Require().Len(groups[0].Rows, 1)
	suite.Equal(domain.NeverDaysSince, groups[0].Rows[0].DaysSince)
	suite.Nil(groups[0].Rows[0].LastTxnDate)
	suite.True(groups[0].Rows[0].LastCreditAmount.Equal(decimal.Zero))
}

func (suite *ReportingServiceTestSuite) TestRecovery_HeaderNeedsThreeMembers() {
	ctx := context.Background()
	today := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	stale := today.AddDate(0, 0, -90)
	credit := decimal.NewFromInt(500)

	mk := func(code string) domain.RecoveryData {
		return domain.RecoveryData{
			VehicleID:        uuid.NewString(),
			Code:             code,
			Balance:          decimal.NewFromInt(600),
			LastTxnDate:      &stale,
			LastCreditAmount: &credit,
		}
	}
	data := []domain.RecoveryData{
		mk("UP-25A-0001"), mk("UP-25B-0002"), mk("UP-25C-0003"),
		mk("UP-78X-0009"),
	}
	suite.mockReportingRepo.On("GetRecoveryData", ctx, suite.companyID).Return(data, nil).Once()

	groups, err := suite.service.Recovery(ctx, suite.companyID, 30, decimal.Zero, today)

	suite.Require().NoError(err)
	suite.Require().Len(groups, 2)
	suite.Equal("UP-25", groups[0].Prefix)
	suite.True(groups[0].ShowHeader)
	suite.Len(groups[0].Rows, 3)
	suite.Equal("UP-78", groups[1].Prefix)
	suite.False(groups[1].ShowHeader)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
