package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// VoucherReader defines read operations for voucher data. All listings come
// back ordered (date asc, voucher_id asc): the chronological order every
// running-balance fold depends on.
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher by its unique identifier.
	FindVoucherByID(ctx context.Context, voucherID int64) (*domain.Voucher, error)

	// FindVoucherByNumber retrieves a voucher by company and voucher number.
	FindVoucherByNumber(ctx context.Context, companyID string, number int64) (*domain.Voucher, error)

	// ListVouchersByVehicle retrieves the full voucher history of a vehicle.
	ListVouchersByVehicle(ctx context.Context, vehicleID string) ([]domain.Voucher, error)

	// ListVouchersByCompany retrieves one page of a company's vouchers within
	// an inclusive date range, ordered (date asc, voucher_number asc).
	ListVouchersByCompany(ctx context.Context, companyID string, from, to time.Time, limit, offset int) ([]domain.Voucher, error)

	// CountVouchersByCompany counts a company's vouchers within an inclusive
	// date range.
	CountVouchersByCompany(ctx context.Context, companyID string, from, to time.Time) (int, error)

	// SumSignedByVehicle computes the vehicle's signed balance (debits
	// positive, credits negative) storage-side. A nil asOf means all time.
	SumSignedByVehicle(ctx context.Context, vehicleID string, asOf *time.Time) (decimal.Decimal, error)
}

// VoucherWriter defines write operations for voucher data.
type VoucherWriter interface {
	// SaveVoucher persists a new voucher and returns its generated id.
	// A (company, number) collision surfaces as apperrors.ErrDuplicate.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) (int64, error)

	// UpdateVoucher updates an existing voucher. The voucher number is
	// immutable and is not written here.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error

	// DeleteVoucher removes a voucher.
	DeleteVoucher(ctx context.Context, voucherID int64) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces.
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}
