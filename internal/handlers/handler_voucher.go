package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
	"github.com/vehicleledger/vehicle_ledger_app/internal/middleware"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvc
}

func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvc) {
	h := &voucherHandler{voucherService: voucherService}

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.PUT("/:voucherID", h.updateVoucher)
		vouchers.DELETE("/:voucherID", h.deleteVoucher)
	}
}

func (h *voucherHandler) voucherID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("voucherID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid voucher id"})
		return 0, false
	}
	return id, true
}

func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), c.Param("companyID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create voucher")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(*voucher))
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := h.voucherID(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), c.Param("companyID"), id)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(*voucher))
}

func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := h.voucherID(c)
	if !ok {
		return
	}

	var req dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	voucher, err := h.voucherService.UpdateVoucher(c.Request.Context(), c.Param("companyID"), id, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(*voucher))
}

func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := h.voucherID(c)
	if !ok {
		return
	}

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), c.Param("companyID"), id); err != nil {
		respondServiceError(c, logger, err, "Failed to delete voucher")
		return
	}
	c.Status(http.StatusNoContent)
}
