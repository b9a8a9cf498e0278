package pgsql

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/truck_invoice_app/internal/models"
	"github.com/SscSPs/truck_invoice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// lineItemRepository is the read side used by the reporting engine.
type lineItemRepository struct {
	pool *pgxpool.Pool
}

func newLineItemRepository(pool *pgxpool.Pool) portsrepo.LineItemReader {
	return &lineItemRepository{pool: pool}
}

var _ portsrepo.LineItemReader = (*lineItemRepository)(nil)

// ListLineItems returns detail rows joined with the truck of their invoice.
// Amounts are cast to text so the engine sees exactly what was stored.
func (r *lineItemRepository) ListLineItems(ctx context.Context, query domain.LineItemQuery) ([]domain.InvoiceLineItem, error) {
	sql := `
		SELECT d.id, d.invoice_id, d.date, i.truck_id, COALESCE(t.truck_number, ''),
		       COALESCE(c.name, ''), d."order", d.loading, d.returning, d.destination,
		       d.freight::text, d.toll::text, d.gas::text, d.extra_expense::text,
		       d.driver_advance::text, d.remark
		FROM invoices_details d
		JOIN invoices i ON i.id = d.invoice_id
		LEFT JOIN trucks t ON t.id = i.truck_id
		LEFT JOIN customers c ON c.id = d.customer_id
		WHERE ($1::bigint = 0 OR d.invoice_id = $1)
		ORDER BY d.date, d.id;
	`
	rows, err := r.pool.Query(ctx, sql, query.InvoiceID)
	if err != nil {
		return nil, storeError(err, "failed to query line items")
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LineItem, error) {
		var m models.LineItem
		err := row.Scan(
			&m.ID, &m.InvoiceID, &m.Date, &m.TruckID, &m.TruckNumber,
			&m.CustomerName, &m.Order, &m.Loading, &m.Returning, &m.Destination,
			&m.Freight, &m.Toll, &m.Gas, &m.ExtraExpense, &m.DriverAdvance, &m.Remark,
		)
		return m, err
	})
	if err != nil {
		return nil, storeError(err, "failed to scan line items")
	}
	return mapping.ToDomainLineItemSlice(modelItems), nil
}
