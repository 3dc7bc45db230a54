package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/pagination"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockVehicleRepo *MockVehicleRepository
	service         portssvc.LedgerSvc

	companyID string
	vehicle   domain.Vehicle
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockVehicleRepo = new(MockVehicleRepository)
	suite.service = services.NewLedgerService(suite.mockVoucherRepo, suite.mockVehicleRepo)

	suite.companyID = uuid.NewString()
	suite.vehicle = domain.Vehicle{
		VehicleID: uuid.NewString(),
		CompanyID: suite.companyID,
		Code:      "UP-25C-1234",
		IsActive:  true,
	}
}

func (suite *LedgerServiceTestSuite) expectVehicleLookup() {
	suite.mockVehicleRepo.On("FindVehicleByID", context.Background(), suite.vehicle.VehicleID).Return(&suite.vehicle, nil).Once()
}

// history returns vouchers (D 100 day1), (C 40 day1), (D 20 day2) in
// chronological order: balance 80, running balances 100, 60, 80.
func (suite *LedgerServiceTestSuite) history() []domain.Voucher {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	return []domain.Voucher{
		{VoucherID: 1, CompanyID: suite.companyID, VehicleID: suite.vehicle.VehicleID, VoucherNumber: 101, Date: day1, Amount: decimal.NewFromInt(100), Side: domain.Debit},
		{VoucherID: 2, CompanyID: suite.companyID, VehicleID: suite.vehicle.VehicleID, VoucherNumber: 102, Date: day1, Amount: decimal.NewFromInt(40), Side: domain.Credit},
		{VoucherID: 3, CompanyID: suite.companyID, VehicleID: suite.vehicle.VehicleID, VoucherNumber: 103, Date: day2, Amount: decimal.NewFromInt(20), Side: domain.Debit},
	}
}

func (suite *LedgerServiceTestSuite) TestBalance_AllTime() {
	ctx := context.Background()
	suite.expectVehicleLookup()
	suite.mockVoucherRepo.On("SumSignedByVehicle", ctx, suite.vehicle.VehicleID, (*time.Time)(nil)).Return(decimal.NewFromInt(80), nil).Once()

	balance, err := suite.service.Balance(ctx, suite.companyID, suite.vehicle.VehicleID, nil)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(80)))
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestBalance_VehicleInOtherCompany() {
	ctx := context.Background()
	suite.expectVehicleLookup()

	_, err := suite.service.Balance(ctx, uuid.NewString(), suite.vehicle.VehicleID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_RunningBalances() {
	ctx := context.Background()
	suite.expectVehicleLookup()
	suite.mockVoucherRepo.On("ListVouchersByVehicle", ctx, suite.vehicle.VehicleID).Return(suite.history(), nil).Once()

	page, err := suite.service.GetLedger(ctx, suite.companyID, suite.vehicle.VehicleID, pagination.Page{Size: 10, Offset: 0})

	suite.Require().NoError(err)
	suite.Equal(3, page.TotalCount)
	suite.False(page.HasMore)
	suite.Require().Len(page.Rows, 3)

	// Display order is most recent first; chronological running balances are
	// 100, 60, 80, so the display sequence reads 80, 60, 100.
	suite.True(page.Rows[0].RunningBalance.Equal(decimal.NewFromInt(80)))
	suite.True(page.Rows[1].RunningBalance.Equal(decimal.NewFromInt(60)))
	suite.True(page.Rows[2].RunningBalance.Equal(decimal.NewFromInt(100)))
	suite.Equal(int64(3), page.Rows[0].VoucherID)
	suite.Equal(int64(1), page.Rows[2].VoucherID)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_PaginationTransparent() {
	ctx := context.Background()

	suite.expectVehicleLookup()
	suite.mockVoucherRepo.On("ListVouchersByVehicle", ctx, suite.vehicle.VehicleID).Return(suite.history(), nil).Twice()

	full, err := suite.service.GetLedger(ctx, suite.companyID, suite.vehicle.VehicleID, pagination.Page{Size: 1000, Offset: 0})
	suite.Require().NoError(err)

	suite.expectVehicleLookup()
	windowed, err := suite.service.GetLedger(ctx, suite.companyID, suite.vehicle.VehicleID, pagination.Page{Size: 1, Offset: 1})
	suite.Require().NoError(err)

	// The middle voucher's running balance must be identical whether seen
	// through the full view or a one-row window.
	suite.Require().Len(windowed.Rows, 1)
	suite.Equal(int64(2), windowed.Rows[0].VoucherID)
	suite.True(windowed.Rows[0].RunningBalance.Equal(full.Rows[1].RunningBalance))
	suite.True(windowed.HasMore)
	suite.Equal(3, windowed.TotalCount)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_EmptyVehicle() {
	ctx := context.Background()
	suite.expectVehicleLookup()
	suite.mockVoucherRepo.On("ListVouchersByVehicle", ctx, suite.vehicle.VehicleID).Return([]domain.Voucher{}, nil).Once()

	page, err := suite.service.GetLedger(ctx, suite.companyID, suite.vehicle.VehicleID, pagination.Page{Size: 10, Offset: 0})

	suite.Require().NoError(err)
	suite.Empty(page.Rows)
	suite.Equal(0, page.TotalCount)
	suite.False(page.HasMore)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_OffsetPastEnd() {
	ctx := context.Background()
	suite.expectVehicleLookup()
	suite.mockVoucherRepo.On("ListVouchersByVehicle", ctx, suite.vehicle.VehicleID).Return(suite.history(), nil).Once()

	page, err := suite.service.GetLedger(ctx, suite.companyID, suite.vehicle.VehicleID, pagination.Page{Size: 10, Offset: 50})

	suite.Require().NoError(err)
	suite.Empty(page.Rows)
	suite.Equal(3, page.TotalCount)
	suite.False(page.HasMore)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_InvalidPageSize() {
	_, err := suite.service.GetLedger(context.Background(), suite.companyID, suite.vehicle.VehicleID, pagination.Page{Size: 0, Offset: 0})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "ListVouchersByVehicle")
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
