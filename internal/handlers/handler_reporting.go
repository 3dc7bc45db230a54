package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
	"github.com/vehicleledger/vehicle_ledger_app/internal/middleware"
	"github.com/vehicleledger/vehicle_ledger_app/pkg/config"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for the report shapes.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	batchSize        int
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, cfg *config.Config) {
	h := &reportingHandler{
		reportingService: reportingService,
		batchSize:        cfg.ReportBatchSize,
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/daybook", h.getDayBook)
		reports.GET("/daybook/consolidated", h.getConsolidatedDayBook)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/recovery", h.getRecovery)
	}
}

func (h *reportingHandler) dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse(reportDateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing from date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(reportDateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing to date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// getDayBook accumulates the streamed day book into one response. The engine
// still produces it batch-wise, so a caller that wants progressive rendering
// can be given a streaming transport later without touching the generator.
func (h *reportingHandler) getDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}

	batchSize := h.batchSize
	if param := c.Query("batchSize"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid batchSize parameter"})
			return
		}
		batchSize = parsed
	}

	resp := dto.DayBookResponse{
		FromDate: from.Format(reportDateLayout),
		ToDate:   to.Format(reportDateLayout),
		Lines:    []dto.DayBookLineResponse{},
	}

	err := h.reportingService.StreamDayBook(c.Request.Context(), c.Param("companyID"), from, to, batchSize, func(batch domain.DayBookBatch) error {
		for _, line := range batch.Lines {
			resp.Lines = append(resp.Lines, dto.ToDayBookLineResponse(line))
		}
		resp.TotalCount = batch.TotalCount
		return nil
	})
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build day book")
		return
	}

	resp.Complete = true
	c.JSON(http.StatusOK, resp)
}

func (h *reportingHandler) getConsolidatedDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.ConsolidatedDayBook(c.Request.Context(), c.Param("companyID"), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build consolidated day book")
		return
	}
	c.JSON(http.StatusOK, dto.ToConsolidatedDayBookResponse(rows, from.Format(reportDateLayout), to.Format(reportDateLayout)))
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOfParam := c.DefaultQuery("asOf", time.Now().UTC().Format(reportDateLayout))
	asOf, err := time.Parse(reportDateLayout, asOfParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), c.Param("companyID"), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, asOfParam))
}

func (h *reportingHandler) getRecovery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
		return
	}
	minimumAmount, err := decimal.NewFromString(c.DefaultQuery("minimumAmount", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minimumAmount parameter"})
		return
	}

	groups, err := h.reportingService.Recovery(c.Request.Context(), c.Param("companyID"), days, minimumAmount, time.Now().UTC())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build recovery statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecoveryResponse(groups, days, minimumAmount))
}
