package repositories

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
)

// InvoiceDetailReader defines read operations for invoice detail data
type InvoiceDetailReader interface {
	// ListDetailsByInvoice retrieves the details of one invoice ordered by date, with customer names.
	ListDetailsByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceDetail, error)
}

// InvoiceDetailWriter defines write operations for invoice detail data
type InvoiceDetailWriter interface {
	SaveDetail(ctx context.Context, detail domain.InvoiceDetail) (*domain.InvoiceDetail, error)

	// UpdateDetail overwrites every editable column, returning apperrors.ErrNotFound when absent.
	UpdateDetail(ctx context.Context, detail domain.InvoiceDetail) error

	DeleteDetail(ctx context.Context, detailID int64) error

	// ImportDetails inserts rows under invoiceID in a single store transaction,
	// creating customers that do not exist yet (matched by exact name).
	// It returns the number of rows inserted.
	ImportDetails(ctx context.Context, invoiceID int64, rows []domain.ImportRow) (int, error)
}

// InvoiceDetailRepositoryFacade combines all invoice detail repository interfaces
type InvoiceDetailRepositoryFacade interface {
	InvoiceDetailReader
	InvoiceDetailWriter
}
