package domain

import "time"

// Company is the owning scope for vehicles and vouchers. Each company carries
// its own monotonic voucher-number counter.
type Company struct {
	CompanyID         string    `json:"companyID"` // Primary Key (UUID)
	Name              string    `json:"name"`
	FinancialYearFrom time.Time `json:"financialYearFrom"`
	FinancialYearTo   time.Time `json:"financialYearTo"`
	LastVoucherNumber int64     `json:"lastVoucherNumber"` // Mutated only by the sequence allocator, only ever increases
	IsActive          bool      `json:"isActive"`
	AuditFields
}
