package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/SscSPs/truck_invoice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type invoiceDetailHandler struct {
	detailService portssvc.InvoiceDetailSvcFacade
}

func newInvoiceDetailHandler(ds portssvc.InvoiceDetailSvcFacade) *invoiceDetailHandler {
	return &invoiceDetailHandler{detailService: ds}
}

// RegisterInvoiceDetailRoutes registers routes related to invoice line items
func RegisterInvoiceDetailRoutes(rg *gin.RouterGroup, detailService portssvc.InvoiceDetailSvcFacade) {
	h := newInvoiceDetailHandler(detailService)

	details := rg.Group("/invoiceDetails")
	{
		details.GET("/all", h.listAllLineItems)
		details.GET("/:invoiceId", h.listDetailsByInvoice)
		details.POST("/add", h.createDetail)
		details.PUT("/updateDetails/:id", h.updateDetail)
		details.DELETE("/delete/:id", h.deleteDetail)
		details.POST("/bulkImport", h.bulkImport)
	}
}

// listAllLineItems godoc
// @Summary List every line item with its truck
// @Description Raw feed of stored line items. Amounts are returned exactly as stored.
// @Tags invoiceDetails
// @Produce json
// @Success 200 {array} dto.LineItemResponse
// @Router /invoiceDetails/all [get]
func (h *invoiceDetailHandler) listAllLineItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.detailService.ListAllLineItems(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list line items")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLineItemResponse(items))
}

// listDetailsByInvoice godoc
// @Summary List the line items of an invoice
// @Tags invoiceDetails
// @Produce json
// @Param invoiceId path int true "Invoice ID"
// @Success 200 {array} dto.InvoiceDetailResponse
// @Router /invoiceDetails/{invoiceId} [get]
func (h *invoiceDetailHandler) listDetailsByInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, logger, "invoiceId")
	if !ok {
		return
	}

	details, err := h.detailService.ListDetailsByInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, logger, err, "Failed to list invoice details")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceDetailResponse(details))
}

// createDetail godoc
// @Summary Add a line item to an invoice
// @Tags invoiceDetails
// @Accept json
// @Produce json
// @Param detail body dto.CreateInvoiceDetailRequest true "Line item"
// @Success 201 {object} dto.InvoiceDetailResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice or customer not found"
// @Router /invoiceDetails/add [post]
func (h *invoiceDetailHandler) createDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDetail", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	detail, err := h.detailService.CreateDetail(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice detail")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceDetailResponse(detail))
}

// updateDetail godoc
// @Summary Update a line item
// @Tags invoiceDetails
// @Accept json
// @Produce json
// @Param id path int true "Line item ID"
// @Param detail body dto.UpdateInvoiceDetailRequest true "Line item"
// @Success 200 {object} dto.InvoiceDetailResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Line item not found"
// @Router /invoiceDetails/updateDetails/{id} [put]
func (h *invoiceDetailHandler) updateDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	detailID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	var req dto.UpdateInvoiceDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateDetail", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	detail, err := h.detailService.UpdateDetail(c.Request.Context(), detailID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update invoice detail")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceDetailResponse(detail))
}

// deleteDetail godoc
// @Summary Delete a line item
// @Tags invoiceDetails
// @Param id path int true "Line item ID"
// @Success 204
// @Failure 404 {object} map[string]string "Line item not found"
// @Router /invoiceDetails/delete/{id} [delete]
func (h *invoiceDetailHandler) deleteDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	detailID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	if err := h.detailService.DeleteDetail(c.Request.Context(), detailID); err != nil {
		respondError(c, logger, err, "Failed to delete invoice detail")
		return
	}

	c.Status(http.StatusNoContent)
}

// bulkImport godoc
// @Summary Import pasted trips into an invoice
// @Description Accepts structured rows or the raw tab separated text copied from a customer statement. Unknown customers are created.
// @Tags invoiceDetails
// @Accept json
// @Produce json
// @Param import body dto.BulkImportRequest true "Rows or raw paste"
// @Success 201 {object} dto.BulkImportResponse
// @Failure 400 {object} map[string]string "Nothing importable or malformed row"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /invoiceDetails/bulkImport [post]
func (h *invoiceDetailHandler) bulkImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulkImport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	logger.Info("Received bulk import", slog.Int64("invoice_id", req.InvoiceID), slog.Int("rows", len(req.Rows)))
	inserted, err := h.detailService.BulkImport(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to import invoice details")
		return
	}

	c.JSON(http.StatusCreated, dto.BulkImportResponse{Inserted: inserted})
}
