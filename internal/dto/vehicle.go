package dto

import "github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"

// CreateVehicleRequest is the payload for creating a vehicle account.
type CreateVehicleRequest struct {
	Code      string `json:"code" binding:"required"`
	Narration string `json:"narration"`
}

// UpdateVehicleRequest is the payload for updating a vehicle account.
// Nil fields are left unchanged.
type UpdateVehicleRequest struct {
	Narration *string `json:"narration,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// MergeVehiclesRequest names the source and target of a merge operation.
type MergeVehiclesRequest struct {
	SourceVehicleID string `json:"sourceVehicleID" binding:"required"`
	TargetVehicleID string `json:"targetVehicleID" binding:"required"`
}

// VehicleResponse is the API representation of a vehicle account.
type VehicleResponse struct {
	VehicleID string `json:"vehicleID"`
	CompanyID string `json:"companyID"`
	Code      string `json:"code"`
	Narration string `json:"narration"`
	IsActive  bool   `json:"isActive"`
}

// ToVehicleResponse converts a domain Vehicle to its API representation.
func ToVehicleResponse(v domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID: v.VehicleID,
		CompanyID: v.CompanyID,
		Code:      v.Code,
		Narration: v.Narration,
		IsActive:  v.IsActive,
	}
}

// ToVehicleResponseSlice converts domain Vehicles to their API representation.
func ToVehicleResponseSlice(vs []domain.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, len(vs))
	for i, v := range vs {
		out[i] = ToVehicleResponse(v)
	}
	return out
}
