package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// ListInvoices retrieves all invoices joined with their truck number.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// ListInvoicesByTruck retrieves the invoices of one truck, newest month first.
	ListInvoicesByTruck(ctx context.Context, truckID int64) ([]domain.Invoice, error)

	// FindInvoiceWithTruck retrieves one invoice joined with its truck number.
	FindInvoiceWithTruck(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// ExistsForTruckMonth reports whether truckID already has an invoice in month's calendar month.
	ExistsForTruckMonth(ctx context.Context, truckID int64, month time.Time) (bool, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice and its details, returning apperrors.ErrNotFound when absent.
	DeleteInvoice(ctx context.Context, invoiceID int64) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
