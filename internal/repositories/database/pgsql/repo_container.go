package pgsql

import (
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TruckRepo:         newPgxTruckRepository(dbPool),
		CustomerRepo:      newPgxCustomerRepository(dbPool),
		InvoiceRepo:       newPgxInvoiceRepository(dbPool),
		InvoiceDetailRepo: newPgxInvoiceDetailRepository(dbPool),
		LineItemRepo:      newLineItemRepository(dbPool),
	}
}
