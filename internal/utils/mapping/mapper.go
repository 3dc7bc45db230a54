package mapping

import (
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	"github.com/vehicleledger/vehicle_ledger_app/internal/models"
)

// ToModelCompany converts a domain Company to a model Company.
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:         d.CompanyID,
		Name:              d.Name,
		FinancialYearFrom: d.FinancialYearFrom,
		FinancialYearTo:   d.FinancialYearTo,
		LastVoucherNumber: d.LastVoucherNumber,
		IsActive:          d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainCompany converts a model Company to a domain Company.
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:         m.CompanyID,
		Name:              m.Name,
		FinancialYearFrom: m.FinancialYearFrom,
		FinancialYearTo:   m.FinancialYearTo,
		LastVoucherNumber: m.LastVoucherNumber,
		IsActive:          m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToModelVehicle converts a domain Vehicle to a model Vehicle.
func ToModelVehicle(d domain.Vehicle) models.Vehicle {
	return models.Vehicle{
		VehicleID: d.VehicleID,
		CompanyID: d.CompanyID,
		Code:      d.Code,
		Narration: d.Narration,
		IsActive:  d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainVehicle converts a model Vehicle to a domain Vehicle.
func ToDomainVehicle(m models.Vehicle) domain.Vehicle {
	return domain.Vehicle{
		VehicleID: m.VehicleID,
		CompanyID: m.CompanyID,
		Code:      m.Code,
		Narration: m.Narration,
		IsActive:  m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainVehicleSlice converts a slice of model Vehicles to domain Vehicles.
func ToDomainVehicleSlice(ms []models.Vehicle) []domain.Vehicle {
	ds := make([]domain.Vehicle, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVehicle(m)
	}
	return ds
}

// ToModelVoucher converts a domain Voucher to a model Voucher.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:     d.VoucherID,
		CompanyID:     d.CompanyID,
		VehicleID:     d.VehicleID,
		VoucherNumber: d.VoucherNumber,
		Date:          d.Date,
		Amount:        d.Amount,
		Side:          string(d.Side),
		Narration:     d.Narration,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:     m.VoucherID,
		CompanyID:     m.CompanyID,
		VehicleID:     m.VehicleID,
		VoucherNumber: m.VoucherNumber,
		Date:          m.Date,
		Amount:        m.Amount,
		Side:          domain.VoucherSide(m.Side),
		Narration:     m.Narration,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainVoucherSlice converts a slice of model Vouchers to domain Vouchers.
func ToDomainVoucherSlice(ms []models.Voucher) []domain.Voucher {
	ds := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucher(m)
	}
	return ds
}
