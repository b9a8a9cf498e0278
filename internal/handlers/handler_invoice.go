package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/SscSPs/truck_invoice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// RegisterInvoiceRoutes registers routes related to monthly invoices
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/byTruck/:truckId", h.listInvoicesByTruck)
		invoices.GET("/get/withTruck/:invoiceId", h.getInvoiceWithTruck)
		invoices.POST("/add", h.createInvoice)
		invoices.DELETE("/delete/:invoiceId", h.deleteInvoice)
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists every invoice with its truck number
// @Tags invoices
// @Produce json
// @Success 200 {array} dto.InvoiceResponse
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// listInvoicesByTruck godoc
// @Summary List the invoices of a truck
// @Tags invoices
// @Produce json
// @Param truckId path int true "Truck ID"
// @Success 200 {object} dto.TruckInvoicesResponse
// @Failure 404 {object} map[string]string "Truck not found"
// @Router /invoices/byTruck/{truckId} [get]
func (h *invoiceHandler) listInvoicesByTruck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	truckID, ok := parseIDParam(c, logger, "truckId")
	if !ok {
		return
	}

	result, err := h.invoiceService.ListInvoicesByTruck(c.Request.Context(), truckID)
	if err != nil {
		respondError(c, logger, err, "Failed to list invoices of truck")
		return
	}

	c.JSON(http.StatusOK, dto.ToTruckInvoicesResponse(result))
}

// getInvoiceWithTruck godoc
// @Summary Get an invoice with its truck number
// @Tags invoices
// @Produce json
// @Param invoiceId path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /invoices/get/withTruck/{invoiceId} [get]
func (h *invoiceHandler) getInvoiceWithTruck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, logger, "invoiceId")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceWithTruck(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, logger, err, "Failed to get invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// createInvoice godoc
// @Summary Open a monthly invoice for a truck
// @Description Month is YYYY-MM and is stored as the first day of the month. A truck has one invoice per month.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Truck not found"
// @Failure 409 {object} map[string]string "Invoice already exists for this month"
// @Router /invoices/add [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("truck_id", req.TruckID), slog.String("month", req.Month))
	logger.Info("Received request to create invoice")

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete an invoice and its line items
// @Tags invoices
// @Param invoiceId path int true "Invoice ID"
// @Success 204
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /invoices/delete/{invoiceId} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, logger, "invoiceId")
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		respondError(c, logger, err, "Failed to delete invoice")
		return
	}

	c.Status(http.StatusNoContent)
}
