package models

import "time"

// Company mirrors the companies table.
type Company struct {
	CompanyID         string
	Name              string
	FinancialYearFrom time.Time
	FinancialYearTo   time.Time
	LastVoucherNumber int64
	IsActive          bool
	AuditFields
}
