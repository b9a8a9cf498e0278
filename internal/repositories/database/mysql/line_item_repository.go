package mysql

import (
	"context"
	"database/sql"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/truck_invoice_app/internal/models"
	"github.com/SscSPs/truck_invoice_app/internal/utils/mapping"
)

type lineItemRepository struct {
	db *sql.DB
}

func newLineItemRepository(db *sql.DB) portsrepo.LineItemReader {
	return &lineItemRepository{db: db}
}

var _ portsrepo.LineItemReader = (*lineItemRepository)(nil)

// ListLineItems returns detail rows joined with the truck of their invoice.
func (r *lineItemRepository) ListLineItems(ctx context.Context, query domain.LineItemQuery) ([]domain.InvoiceLineItem, error) {
	stmt := "SELECT d.id, d.invoice_id, d.date, i.truck_id, COALESCE(t.truck_number, ''), " +
		"COALESCE(c.name, ''), d.`order`, d.loading, d.returning, d.destination, " +
		"CAST(d.freight AS CHAR), CAST(d.toll AS CHAR), CAST(d.gas AS CHAR), " +
		"CAST(d.extra_expense AS CHAR), CAST(d.driver_advance AS CHAR), d.remark " +
		"FROM invoices_details d " +
		"JOIN invoices i ON i.id = d.invoice_id " +
		"LEFT JOIN trucks t ON t.id = i.truck_id " +
		"LEFT JOIN customers c ON c.id = d.customer_id " +
		"WHERE (? = 0 OR d.invoice_id = ?) " +
		"ORDER BY d.date, d.id"

	rows, err := r.db.QueryContext(ctx, stmt, query.InvoiceID, query.InvoiceID)
	if err != nil {
		return nil, storeError(err, "failed to query line items")
	}
	defer rows.Close()

	modelItems := []models.LineItem{}
	for rows.Next() {
		var m models.LineItem
		if err := rows.Scan(
			&m.ID, &m.InvoiceID, &m.Date, &m.TruckID, &m.TruckNumber,
			&m.CustomerName, &m.Order, &m.Loading, &m.Returning, &m.Destination,
			&m.Freight, &m.Toll, &m.Gas, &m.ExtraExpense, &m.DriverAdvance, &m.Remark,
		); err != nil {
			return nil, storeError(err, "failed to scan line items")
		}
		modelItems = append(modelItems, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate line items")
	}
	return mapping.ToDomainLineItemSlice(modelItems), nil
}
