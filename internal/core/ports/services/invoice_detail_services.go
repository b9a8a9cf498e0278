package services

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
)

// InvoiceDetailReaderSvc defines read operations for line items
type InvoiceDetailReaderSvc interface {
	// ListAllLineItems returns every line item joined with its truck, as stored.
	ListAllLineItems(ctx context.Context) ([]domain.InvoiceLineItem, error)

	ListDetailsByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceDetail, error)
}

// InvoiceDetailWriterSvc defines write operations for line items
type InvoiceDetailWriterSvc interface {
	CreateDetail(ctx context.Context, req dto.CreateInvoiceDetailRequest) (*domain.InvoiceDetail, error)
	UpdateDetail(ctx context.Context, detailID int64, req dto.UpdateInvoiceDetailRequest) (*domain.InvoiceDetail, error)
	DeleteDetail(ctx context.Context, detailID int64) error

	// BulkImport inserts pasted trips into an invoice and returns the number inserted.
	BulkImport(ctx context.Context, req dto.BulkImportRequest) (int, error)
}

// InvoiceDetailSvcFacade combines all line item service interfaces
type InvoiceDetailSvcFacade interface {
	InvoiceDetailReaderSvc
	InvoiceDetailWriterSvc
}
