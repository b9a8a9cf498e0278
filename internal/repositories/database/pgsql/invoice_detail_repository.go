package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/truck_invoice_app/internal/models"
	"github.com/SscSPs/truck_invoice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceDetailRepository struct {
	BaseRepository
}

func newPgxInvoiceDetailRepository(pool *pgxpool.Pool) portsrepo.InvoiceDetailRepositoryFacade {
	return &PgxInvoiceDetailRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceDetailRepositoryFacade = (*PgxInvoiceDetailRepository)(nil)

// ListDetailsByInvoice retrieves the details of one invoice, oldest trip first.
func (r *PgxInvoiceDetailRepository) ListDetailsByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceDetail, error) {
	query := `
		SELECT d.id, d.invoice_id, d.customer_id, COALESCE(c.name, ''), d.date, d."order",
		       d.loading, d.returning, d.destination,
		       COALESCE(d.freight, 0), COALESCE(d.toll, 0), COALESCE(d.gas, 0),
		       COALESCE(d.extra_expense, 0), COALESCE(d.driver_advance, 0), COALESCE(d.remark, '')
		FROM invoices_details d
		LEFT JOIN customers c ON c.id = d.customer_id
		WHERE d.invoice_id = $1
		ORDER BY d.date, d.id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, storeError(err, "failed to query details of invoice %d", invoiceID)
	}
	defer rows.Close()

	modelDetails, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceDetail, error) {
		var m models.InvoiceDetail
		err := row.Scan(
			&m.ID, &m.InvoiceID, &m.CustomerID, &m.CustomerName, &m.Date, &m.Order,
			&m.Loading, &m.Returning, &m.Destination,
			&m.Freight, &m.Toll, &m.Gas, &m.ExtraExpense, &m.DriverAdvance, &m.Remark,
		)
		return m, err
	})
	if err != nil {
		return nil, storeError(err, "failed to scan details of invoice %d", invoiceID)
	}
	return mapping.ToDomainInvoiceDetailSlice(modelDetails), nil
}

func (r *PgxInvoiceDetailRepository) SaveDetail(ctx context.Context, detail domain.InvoiceDetail) (*domain.InvoiceDetail, error) {
	m := mapping.ToModelInvoiceDetail(detail)
	query := `
		INSERT INTO invoices_details (invoice_id, customer_id, date, "order", loading, returning, destination,
		                              freight, toll, gas, extra_expense, driver_advance, remark)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.InvoiceID, m.CustomerID, m.Date, m.Order, m.Loading, m.Returning, m.Destination,
		m.Freight, m.Toll, m.Gas, m.ExtraExpense, m.DriverAdvance, m.Remark,
	).Scan(&m.ID)
	if err != nil {
		return nil, storeError(err, "failed to save detail for invoice %d", m.InvoiceID)
	}
	saved := mapping.ToDomainInvoiceDetail(m)
	return &saved, nil
}

func (r *PgxInvoiceDetailRepository) UpdateDetail(ctx context.Context, detail domain.InvoiceDetail) error {
	m := mapping.ToModelInvoiceDetail(detail)
	query := `
		UPDATE invoices_details
		SET customer_id = $2, date = $3, "order" = $4, loading = $5, returning = $6, destination = $7,
		    freight = $8, toll = $9, gas = $10, extra_expense = $11, driver_advance = $12, remark = $13
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID, m.CustomerID, m.Date, m.Order, m.Loading, m.Returning, m.Destination,
		m.Freight, m.Toll, m.Gas, m.ExtraExpense, m.DriverAdvance, m.Remark,
	)
	if err != nil {
		return storeError(err, "failed to update detail %d", m.ID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice detail %d not found", m.ID)
	}
	return nil
}

func (r *PgxInvoiceDetailRepository) DeleteDetail(ctx context.Context, detailID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices_details WHERE id = $1;`, detailID)
	if err != nil {
		return storeError(err, "failed to delete detail %d", detailID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice detail %d not found", detailID)
	}
	return nil
}

// ImportDetails inserts the rows in one transaction. Customers are resolved
// by exact name, once per distinct name, and created when missing.
func (r *PgxInvoiceDetailRepository) ImportDetails(ctx context.Context, invoiceID int64, rows []domain.ImportRow) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	customerIDs := make(map[string]int64)
	for _, row := range rows {
		customerID, ok := customerIDs[row.CustomerName]
		if !ok {
			customerID, err = findOrCreateCustomer(ctx, tx, row.CustomerName)
			if err != nil {
				return 0, err
			}
			customerIDs[row.CustomerName] = customerID
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO invoices_details (invoice_id, customer_id, date, "order", loading, returning, destination,
			                              freight, toll, gas, extra_expense, driver_advance, remark)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, 0, 0, '');`,
			invoiceID, customerID, row.Date, row.Order, row.Pickup, row.ReturnLoc, row.Goods, row.Freight,
		)
		if err != nil {
			return 0, storeError(err, "failed to import detail into invoice %d", invoiceID)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func findOrCreateCustomer(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM customers WHERE name = $1 ORDER BY id LIMIT 1;`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, storeError(err, "failed to look up customer %q", name)
	}
	if err := tx.QueryRow(ctx, `INSERT INTO customers (name) VALUES ($1) RETURNING id;`, name).Scan(&id); err != nil {
		return 0, storeError(err, "failed to create customer %q", name)
	}
	return id, nil
}
