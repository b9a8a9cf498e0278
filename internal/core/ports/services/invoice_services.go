package services

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// ListInvoicesByTruck returns the truck with its invoices, or a not found error.
	ListInvoicesByTruck(ctx context.Context, truckID int64) (*domain.TruckInvoices, error)

	GetInvoiceWithTruck(ctx context.Context, invoiceID int64) (*domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice opens the invoice of a truck for a month. A truck has at
	// most one invoice per calendar month.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	DeleteInvoice(ctx context.Context, invoiceID int64) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
