package services

import (
	"context"

	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
)

// VoucherSvc manages voucher entries. Creation allocates the company voucher
// number and retries on allocation races.
type VoucherSvc interface {
	CreateVoucher(ctx context.Context, companyID string, req dto.CreateVoucherRequest) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, companyID string, voucherID int64) (*domain.Voucher, error)
	UpdateVoucher(ctx context.Context, companyID string, voucherID int64, req dto.UpdateVoucherRequest) (*domain.Voucher, error)
	DeleteVoucher(ctx context.Context, companyID string, voucherID int64) error
}
