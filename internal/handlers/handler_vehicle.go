package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
	"github.com/vehicleledger/vehicle_ledger_app/internal/middleware"
)

// vehicleHandler handles HTTP requests related to vehicle accounts.
type vehicleHandler struct {
	vehicleService portssvc.VehicleSvc
}

func registerVehicleRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleSvc) {
	h := &vehicleHandler{vehicleService: vehicleService}

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:vehicleID", h.getVehicle)
		vehicles.PUT("/:vehicleID", h.updateVehicle)
		vehicles.POST("/merge", h.mergeVehicles)
	}
}

func (h *vehicleHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), c.Param("companyID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create vehicle")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(*vehicle))
}

func (h *vehicleHandler) getVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), c.Param("companyID"), c.Param("vehicleID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(*vehicle))
}

func (h *vehicleHandler) listVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), c.Param("companyID"), activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponseSlice(vehicles))
}

func (h *vehicleHandler) updateVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("companyID"), c.Param("vehicleID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(*vehicle))
}

func (h *vehicleHandler) mergeVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MergeVehiclesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	err := h.vehicleService.MergeVehicles(c.Request.Context(), c.Param("companyID"), req.SourceVehicleID, req.TargetVehicleID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to merge vehicles")
		return
	}
	c.Status(http.StatusNoContent)
}
