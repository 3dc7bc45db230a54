package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
	"github.com/vehicleledger/vehicle_ledger_app/internal/importing/legacy"
	"github.com/vehicleledger/vehicle_ledger_app/internal/middleware"
)

// importHandler handles reconciliation import requests.
type importHandler struct {
	importService portssvc.ImportSvc
}

func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvc) {
	h := &importHandler{importService: importService}

	rg.POST("/import", h.runImport)
}

// runImport accepts either pre-parsed records or raw legacy text. Legacy text
// goes through the flat-file parsing strategy first; parse warnings join the
// import result so the caller sees one consolidated report.
func (h *importHandler) runImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var records domain.ImportRecords
	var parseWarnings []string
	switch {
	case req.Records != nil:
		records = *req.Records
	case req.LegacyText != "":
		var err error
		records, parseWarnings, err = legacy.Parse(strings.NewReader(req.LegacyText))
		if err != nil {
			respondServiceError(c, logger, err, "Failed to parse legacy text")
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either records or legacyText must be provided"})
		return
	}

	opts := domain.ImportOptions{
		DryRun:                req.DryRun,
		CreateMissingVehicles: req.CreateMissingVehicles,
	}
	result, err := h.importService.Import(c.Request.Context(), c.Param("companyID"), records, opts)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to run import")
		return
	}

	result.Warnings = append(parseWarnings, result.Warnings...)
	c.JSON(http.StatusOK, dto.ToImportResultResponse(*result))
}
