package domain

// Vehicle is the ledger subject: a per-vehicle account within a company.
// Its balance is always derived from vouchers, never stored.
type Vehicle struct {
	VehicleID string `json:"vehicleID"` // Primary Key (UUID)
	CompanyID string `json:"companyID"` // FK -> companies.company_id
	Code      string `json:"code"`      // Vehicle number, unique per company (case-insensitive)
	Narration string `json:"narration"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}
