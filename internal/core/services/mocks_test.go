package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) SetLastVoucherNumber(ctx context.Context, companyID string, n int64, now time.Time) error {
	args := m.Called(ctx, companyID, n, now)
	return args.Error(0)
}

// --- Mock VehicleRepository ---
type MockVehicleRepository struct {
	mock.Mock
}

var _ portsrepo.VehicleRepositoryFacade = (*MockVehicleRepository)(nil)

func (m *MockVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindVehicleByCode(ctx context.Context, companyID, code string) (*domain.Vehicle, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListVehicles(ctx context.Context, companyID string, activeOnly bool) ([]domain.Vehicle, error) {
	args := m.Called(ctx, companyID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) DeactivateVehicle(ctx context.Context, vehicleID string, now time.Time) error {
	args := m.Called(ctx, vehicleID, now)
	return args.Error(0)
}

func (m *MockVehicleRepository) MergeVehicles(ctx context.Context, companyID, sourceVehicleID, targetVehicleID string) error {
	args := m.Called(ctx, companyID, sourceVehicleID, targetVehicleID)
	return args.Error(0)
}

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID int64) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherByNumber(ctx context.Context, companyID string, number int64) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByVehicle(ctx context.Context, vehicleID string) ([]domain.Voucher, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID string, from, to time.Time, limit, offset int) ([]domain.Voucher, error) {
	args := m.Called(ctx, companyID, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) CountVouchersByCompany(ctx context.Context, companyID string, from, to time.Time) (int, error) {
	args := m.Called(ctx, companyID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) SumSignedByVehicle(ctx context.Context, vehicleID string, asOf *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, vehicleID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) (int64, error) {
	args := m.Called(ctx, voucher)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, voucherID int64) error {
	args := m.Called(ctx, voucherID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetConsolidatedDayTotals(ctx context.Context, companyID string, from, to time.Time) ([]domain.ConsolidatedDayRow, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsolidatedDayRow), args.Error(1)
}

func (m *MockReportingRepository) GetVehicleNets(ctx context.Context, companyID string, asOf time.Time) ([]domain.VehicleNet, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleNet), args.Error(1)
}

func (m *MockReportingRepository) GetRecoveryData(ctx context.Context, companyID string) ([]domain.RecoveryData, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecoveryData), args.Error(1)
}

// --- Mock SequenceService ---
type MockSequenceService struct {
	mock.Mock
}

var _ portssvc.SequenceSvc = (*MockSequenceService)(nil)

func (m *MockSequenceService) NextNumber(ctx context.Context, companyID string) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceService) Advance(ctx context.Context, companyID string, n int64) error {
	args := m.Called(ctx, companyID, n)
	return args.Error(0)
}
