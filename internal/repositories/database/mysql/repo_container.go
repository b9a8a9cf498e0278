package mysql

import (
	"database/sql"

	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TruckRepo:         newMySQLTruckRepository(db),
		CustomerRepo:      newMySQLCustomerRepository(db),
		InvoiceRepo:       newMySQLInvoiceRepository(db),
		InvoiceDetailRepo: newMySQLInvoiceDetailRepository(db),
		LineItemRepo:      newLineItemRepository(db),
	}
}
