package dto

import (
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceDetailRequest carries the editable fields of a line item.
// Amounts may be sent as numbers or numeric strings; omitted amounts are zero.
type InvoiceDetailRequest struct {
	CustomerID    int64           `json:"customer_id" binding:"required,gt=0"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Order         string          `json:"order" binding:"max=100"`
	Loading       string          `json:"loading" binding:"max=255"`
	Returning     string          `json:"returning" binding:"max=255"`
	Destination   string          `json:"destination" binding:"max=255"`
	Freight       decimal.Decimal `json:"freight"`
	Toll          decimal.Decimal `json:"toll"`
	Gas           decimal.Decimal `json:"gas"`
	ExtraExpense  decimal.Decimal `json:"extra_expense"`
	DriverAdvance decimal.Decimal `json:"driver_advance"`
	Remark        string          `json:"remark"`
}

// CreateInvoiceDetailRequest adds a line item to an invoice.
type CreateInvoiceDetailRequest struct {
	InvoiceID int64 `json:"invoice_id" binding:"required,gt=0"`
	InvoiceDetailRequest
}

// UpdateInvoiceDetailRequest replaces the editable fields of an existing line item.
type UpdateInvoiceDetailRequest struct {
	InvoiceDetailRequest
}

// InvoiceDetailResponse defines the data returned for a line item.
type InvoiceDetailResponse struct {
	ID            int64           `json:"id"`
	InvoiceID     int64           `json:"invoice_id"`
	CustomerID    int64           `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	Date          string          `json:"date"`
	Order         string          `json:"order"`
	Loading       string          `json:"loading"`
	Returning     string          `json:"returning"`
	Destination   string          `json:"destination"`
	Freight       decimal.Decimal `json:"freight"`
	Toll          decimal.Decimal `json:"toll"`
	Gas           decimal.Decimal `json:"gas"`
	ExtraExpense  decimal.Decimal `json:"extra_expense"`
	DriverAdvance decimal.Decimal `json:"driver_advance"`
	Remark        string          `json:"remark"`
}

// BulkImportRow is one pasted trip. Date is dd/mm/yyyy as in the customer statements.
type BulkImportRow struct {
	Date         string          `json:"date" binding:"required"`
	Order        string          `json:"order"`
	CustomerName string          `json:"customer_name" binding:"required"`
	Pickup       string          `json:"pickup"`
	ReturnLoc    string          `json:"return_loc"`
	Goods        string          `json:"goods"`
	Freight      decimal.Decimal `json:"freight"`
}

// BulkImportRequest imports trips into an invoice either from structured rows
// or from a raw tab separated clipboard paste. Rows wins when both are set.
type BulkImportRequest struct {
	InvoiceID int64           `json:"invoice_id" binding:"required,gt=0"`
	Rows      []BulkImportRow `json:"rows" binding:"omitempty,dive"`
	Raw       string          `json:"raw"`
}

// BulkImportResponse reports how many line items were created.
type BulkImportResponse struct {
	Inserted int `json:"inserted"`
}

// LineItemResponse is a raw line item joined with its truck. Amounts are
// passed through as stored.
type LineItemResponse struct {
	ID            int64   `json:"id"`
	InvoiceID     int64   `json:"invoice_id"`
	Date          string  `json:"date"`
	TruckID       int64   `json:"truck_id"`
	TruckNumber   string  `json:"truck_number"`
	CustomerName  string  `json:"customer_name"`
	Order         string  `json:"order"`
	Loading       string  `json:"loading"`
	Returning     string  `json:"returning"`
	Destination   string  `json:"destination"`
	Freight       *string `json:"freight"`
	Toll          *string `json:"toll"`
	Gas           *string `json:"gas"`
	ExtraExpense  *string `json:"extra_expense"`
	DriverAdvance *string `json:"driver_advance"`
	Remark        *string `json:"remark"`
}

func ToInvoiceDetailResponse(d *domain.InvoiceDetail) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:            d.ID,
		InvoiceID:     d.InvoiceID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		Date:          d.Date.Format("2006-01-02"),
		Order:         d.Order,
		Loading:       d.Loading,
		Returning:     d.Returning,
		Destination:   d.Destination,
		Freight:       d.Freight,
		Toll:          d.Toll,
		Gas:           d.Gas,
		ExtraExpense:  d.ExtraExpense,
		DriverAdvance: d.DriverAdvance,
		Remark:        d.Remark,
	}
}

func ToListInvoiceDetailResponse(details []domain.InvoiceDetail) []InvoiceDetailResponse {
	res := make([]InvoiceDetailResponse, len(details))
	for i := range details {
		res[i] = ToInvoiceDetailResponse(&details[i])
	}
	return res
}

func ToListLineItemResponse(items []domain.InvoiceLineItem) []LineItemResponse {
	res := make([]LineItemResponse, len(items))
	for i, it := range items {
		res[i] = LineItemResponse{
			ID:            it.ID,
			InvoiceID:     it.InvoiceID,
			Date:          it.Date.Format("2006-01-02"),
			TruckID:       it.TruckID,
			TruckNumber:   it.TruckNumber,
			CustomerName:  it.CustomerName,
			Order:         it.Order,
			Loading:       it.Loading,
			Returning:     it.Returning,
			Destination:   it.Destination,
			Freight:       it.Freight,
			Toll:          it.Toll,
			Gas:           it.Gas,
			ExtraExpense:  it.ExtraExpense,
			DriverAdvance: it.DriverAdvance,
			Remark:        it.Remark,
		}
	}
	return res
}
