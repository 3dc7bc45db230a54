package models

// Vehicle mirrors the vehicles table.
type Vehicle struct {
	VehicleID string
	CompanyID string
	Code      string
	Narration string
	IsActive  bool
	AuditFields
}
