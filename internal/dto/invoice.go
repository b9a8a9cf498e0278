package dto

import (
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
)

// CreateInvoiceRequest defines the data needed to open a monthly invoice.
// Month accepts YYYY-MM or YYYY-MM-DD; the day is discarded.
type CreateInvoiceRequest struct {
	Month   string `json:"month" binding:"required,yearmonth"`
	TruckID int64  `json:"truck_id" binding:"required,gt=0"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID          int64  `json:"id"`
	TruckID     int64  `json:"truck_id"`
	TruckNumber string `json:"truck_number,omitempty"`
	Month       string `json:"month"` // YYYY-MM-DD, first of month
}

// TruckInvoicesResponse lists the invoices of a single truck.
type TruckInvoicesResponse struct {
	TruckID     int64             `json:"truck_id"`
	TruckNumber string            `json:"truck_number"`
	Invoices    []InvoiceResponse `json:"invoices"`
}

func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		TruckID:     inv.TruckID,
		TruckNumber: inv.TruckNumber,
		Month:       inv.Month.Format("2006-01-02"),
	}
}

func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

func ToTruckInvoicesResponse(ti *domain.TruckInvoices) TruckInvoicesResponse {
	return TruckInvoicesResponse{
		TruckID:     ti.Truck.ID,
		TruckNumber: ti.Truck.TruckNumber,
		Invoices:    ToListInvoiceResponse(ti.Invoices),
	}
}
