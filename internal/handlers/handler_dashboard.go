package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/SscSPs/truck_invoice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	reportingService portssvc.ReportingService
}

func newDashboardHandler(rs portssvc.ReportingService) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// RegisterDashboardRoutes registers the dashboard route
func RegisterDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newDashboardHandler(reportingService)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard report
// @Description KPIs, a revenue/expense series and the per-truck comparison. An empty or "all" value selects everything. With a year and month the series is daily, otherwise monthly.
// @Tags dashboard
// @Produce json
// @Param truckNumber query string false "Truck number or all"
// @Param year query string false "Year or all"
// @Param month query string false "Month 1-12 or all"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind dashboard query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.Dashboard(c.Request.Context(), query.ToFilter())
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(report))
}
