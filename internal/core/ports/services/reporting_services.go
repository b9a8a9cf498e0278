package services

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
)

// ReportingService runs the aggregation engine over stored line items.
// Every presentation (dashboard, workbooks, PDF) goes through it.
type ReportingService interface {
	// Dashboard aggregates every line item matching filter.
	Dashboard(ctx context.Context, filter domain.Filter) (*domain.DashboardReport, error)

	// InvoiceReport aggregates the line items of one invoice.
	InvoiceReport(ctx context.Context, invoiceID int64) (*domain.Invoice, *domain.DashboardReport, error)
}

// ExportService renders reports as downloadable documents.
type ExportService interface {
	InvoiceWorkbook(ctx context.Context, invoiceID int64) (*domain.ExportFile, error)

	// SummaryWorkbook exports the dashboard. A zero truckID selects every truck.
	SummaryWorkbook(ctx context.Context, year, month string, truckID int64) (*domain.ExportFile, error)

	InvoicePDF(ctx context.Context, invoiceID int64) (*domain.ExportFile, error)
}
