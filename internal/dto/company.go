package dto

import (
	"time"

	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

// CreateCompanyRequest is the payload for creating a company.
type CreateCompanyRequest struct {
	Name              string    `json:"name" binding:"required"`
	FinancialYearFrom time.Time `json:"financialYearFrom" binding:"required" time_format:"2006-01-02"`
	FinancialYearTo   time.Time `json:"financialYearTo" binding:"required" time_format:"2006-01-02"`
}

// CompanyResponse is the API representation of a company.
type CompanyResponse struct {
	CompanyID         string `json:"companyID"`
	Name              string `json:"name"`
	FinancialYearFrom string `json:"financialYearFrom"`
	FinancialYearTo   string `json:"financialYearTo"`
	LastVoucherNumber int64  `json:"lastVoucherNumber"`
	IsActive          bool   `json:"isActive"`
}

// ToCompanyResponse converts a domain Company to its API representation.
func ToCompanyResponse(c domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:         c.CompanyID,
		Name:              c.Name,
		FinancialYearFrom: c.FinancialYearFrom.Format("2006-01-02"),
		FinancialYearTo:   c.FinancialYearTo.Format("2006-01-02"),
		LastVoucherNumber: c.LastVoucherNumber,
		IsActive:          c.IsActive,
	}
}

// ToCompanyResponseSlice converts domain Companies to their API representation.
func ToCompanyResponseSlice(cs []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCompanyResponse(c)
	}
	return out
}
