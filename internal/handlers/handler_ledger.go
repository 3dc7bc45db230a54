package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
	"github.com/vehicleledger/vehicle_ledger_app/internal/middleware"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/pagination"
)

// ledgerHandler handles HTTP requests for vehicle ledgers and balances.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := &ledgerHandler{ledgerService: ledgerService}

	rg.GET("/vehicles/:vehicleID/ledger", h.getLedger)
	rg.GET("/vehicles/:vehicleID/balance", h.getBalance)
}

func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	size, err := strconv.Atoi(c.DefaultQuery("size", "50"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size parameter"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset parameter"})
		return
	}

	page, err := h.ledgerService.GetLedger(c.Request.Context(), c.Param("companyID"), c.Param("vehicleID"), pagination.Page{Size: size, Offset: offset})
	if err != nil {
		respondServiceError(c, logger, err, "Failed to assemble ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerPageResponse(*page))
}

func (h *ledgerHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var asOf *time.Time
	asOfParam := c.Query("asOf")
	if asOfParam != "" {
		parsed, err := time.Parse("2006-01-02", asOfParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = &parsed
	}

	vehicleID := c.Param("vehicleID")
	balance, err := h.ledgerService.Balance(c.Request.Context(), c.Param("companyID"), vehicleID, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		VehicleID: vehicleID,
		AsOf:      asOfParam,
		Balance:   balance,
	})
}
