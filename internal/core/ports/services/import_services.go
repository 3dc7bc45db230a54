package services

import (
	"context"

	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// ImportSvc reconciles external account/voucher dumps into a company.
type ImportSvc interface {
	// Import matches or creates vehicle accounts, inserts non-duplicate
	// vouchers and advances the voucher sequence once at the end. Dry runs
	// issue zero writes but return an identical result shape.
	Import(ctx context.Context, companyID string, records domain.ImportRecords, opts domain.ImportOptions) (*domain.ImportResult, error)
}
