package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/SscSPs/truck_invoice_app/internal/middleware"
	"github.com/SscSPs/truck_invoice_app/internal/utils"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	exportService portssvc.ExportService
	posthogClient *utils.PosthogClientWrapper
}

func newExportHandler(es portssvc.ExportService, posthogClient *utils.PosthogClientWrapper) *exportHandler {
	return &exportHandler{exportService: es, posthogClient: posthogClient}
}

// RegisterExportRoutes registers the document download routes. posthogClient may be nil.
func RegisterExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportService, posthogClient *utils.PosthogClientWrapper) {
	h := newExportHandler(exportService, posthogClient)

	excel := rg.Group("/excel")
	{
		excel.GET("/export/:invoiceId", h.exportInvoiceWorkbook)
		excel.GET("/summary", h.exportSummaryWorkbook)
	}
	rg.GET("/pdf/export/:invoiceId", h.exportInvoicePDF)
}

// exportInvoiceWorkbook godoc
// @Summary Download the workbook of an invoice
// @Description Trip rows followed by the totals block, named <truck>_<YYYY-MM>.xlsx
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param invoiceId path int true "Invoice ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /excel/export/{invoiceId} [get]
func (h *exportHandler) exportInvoiceWorkbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, logger, "invoiceId")
	if !ok {
		return
	}

	file, err := h.exportService.InvoiceWorkbook(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, logger, err, "Failed to export invoice workbook")
		return
	}

	logger.Info("Invoice workbook exported", slog.Int64("invoice_id", invoiceID), slog.String("file", file.Name))
	middleware.PosthogEvent(c, h.posthogClient, "invoice_workbook_exported", map[string]any{"invoice_id": invoiceID})
	sendFile(c, file)
}

// exportSummaryWorkbook godoc
// @Summary Download the dashboard as a workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query string false "Year or all"
// @Param month query string false "Month 1-12 or all"
// @Param truckId query int false "Truck ID, 0 or absent for every truck"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} map[string]string "Truck not found"
// @Router /excel/summary [get]
func (h *exportHandler) exportSummaryWorkbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.SummaryExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind summary export query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	file, err := h.exportService.SummaryWorkbook(c.Request.Context(), query.Year, query.Month, query.TruckID)
	if err != nil {
		respondError(c, logger, err, "Failed to export summary workbook")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "summary_workbook_exported", map[string]any{
		"year":     query.Year,
		"month":    query.Month,
		"truck_id": query.TruckID,
	})
	sendFile(c, file)
}

// exportInvoicePDF godoc
// @Summary Download the PDF statement of an invoice
// @Tags export
// @Produce application/pdf
// @Param invoiceId path int true "Invoice ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /pdf/export/{invoiceId} [get]
func (h *exportHandler) exportInvoicePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, logger, "invoiceId")
	if !ok {
		return
	}

	file, err := h.exportService.InvoicePDF(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, logger, err, "Failed to export invoice statement")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "invoice_pdf_exported", map[string]any{"invoice_id": invoiceID})
	sendFile(c, file)
}
