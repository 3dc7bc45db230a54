package dto

import "github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"

// ImportRequest carries a reconciliation import payload. Records may come
// pre-parsed (JSON) or as raw legacy text to run through the legacy parser.
type ImportRequest struct {
	Records               *domain.ImportRecords `json:"records,omitempty"`
	LegacyText            string                `json:"legacyText,omitempty"`
	DryRun                bool                  `json:"dryRun"`
	CreateMissingVehicles bool                  `json:"createMissingVehicles"`
}

// ImportResultResponse mirrors domain.ImportResult for the API.
type ImportResultResponse struct {
	VehiclesParsed   int      `json:"vehiclesParsed"`
	VehiclesInserted int      `json:"vehiclesInserted"`
	VouchersParsed   int      `json:"vouchersParsed"`
	VouchersInserted int      `json:"vouchersInserted"`
	Warnings         []string `json:"warnings"`
	Errors           []string `json:"errors"`
}

// ToImportResultResponse converts a domain ImportResult.
func ToImportResultResponse(r domain.ImportResult) ImportResultResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return ImportResultResponse{
		VehiclesParsed:   r.VehiclesParsed,
		VehiclesInserted: r.VehiclesInserted,
		VouchersParsed:   r.VouchersParsed,
		VouchersInserted: r.VouchersInserted,
		Warnings:         warnings,
		Errors:           errs,
	}
}
