package repositories

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
)

// LineItemReader feeds the reporting engine. Rows are joined with the truck
// of their parent invoice and amounts are returned as stored, unparsed.
type LineItemReader interface {
	ListLineItems(ctx context.Context, query domain.LineItemQuery) ([]domain.InvoiceLineItem, error)
}
