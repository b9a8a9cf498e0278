package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/truck_invoice_app/internal/models"
	"github.com/SscSPs/truck_invoice_app/internal/utils/mapping"
)

const insertDetail = "INSERT INTO invoices_details (invoice_id, customer_id, date, `order`, loading, returning, destination, " +
	"freight, toll, gas, extra_expense, driver_advance, remark) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

type MySQLInvoiceDetailRepository struct {
	BaseRepository
}

func newMySQLInvoiceDetailRepository(db *sql.DB) portsrepo.InvoiceDetailRepositoryFacade {
	return &MySQLInvoiceDetailRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.InvoiceDetailRepositoryFacade = (*MySQLInvoiceDetailRepository)(nil)

func (r *MySQLInvoiceDetailRepository) ListDetailsByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceDetail, error) {
	query := "SELECT d.id, d.invoice_id, d.customer_id, COALESCE(c.name, ''), d.date, d.`order`, " +
		"d.loading, d.returning, d.destination, " +
		"COALESCE(d.freight, 0), COALESCE(d.toll, 0), COALESCE(d.gas, 0), " +
		"COALESCE(d.extra_expense, 0), COALESCE(d.driver_advance, 0), COALESCE(d.remark, '') " +
		"FROM invoices_details d LEFT JOIN customers c ON c.id = d.customer_id " +
		"WHERE d.invoice_id = ? ORDER BY d.date, d.id"

	rows, err := r.DB.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, storeError(err, "failed to query details of invoice %d", invoiceID)
	}
	defer rows.Close()

	modelDetails := []models.InvoiceDetail{}
	for rows.Next() {
		var m models.InvoiceDetail
		if err := rows.Scan(
			&m.ID, &m.InvoiceID, &m.CustomerID, &m.CustomerName, &m.Date, &m.Order,
			&m.Loading, &m.Returning, &m.Destination,
			&m.Freight, &m.Toll, &m.Gas, &m.ExtraExpense, &m.DriverAdvance, &m.Remark,
		); err != nil {
			return nil, storeError(err, "failed to scan details of invoice %d", invoiceID)
		}
		modelDetails = append(modelDetails, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate details of invoice %d", invoiceID)
	}
	return mapping.ToDomainInvoiceDetailSlice(modelDetails), nil
}

func (r *MySQLInvoiceDetailRepository) SaveDetail(ctx context.Context, detail domain.InvoiceDetail) (*domain.InvoiceDetail, error) {
	m := mapping.ToModelInvoiceDetail(detail)
	res, err := r.DB.ExecContext(ctx, insertDetail,
		m.InvoiceID, m.CustomerID, m.Date, m.Order, m.Loading, m.Returning, m.Destination,
		m.Freight, m.Toll, m.Gas, m.ExtraExpense, m.DriverAdvance, m.Remark,
	)
	if err != nil {
		return nil, storeError(err, "failed to save detail for invoice %d", m.InvoiceID)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return nil, storeError(err, "failed to read id of detail for invoice %d", m.InvoiceID)
	}
	saved := mapping.ToDomainInvoiceDetail(m)
	return &saved, nil
}

func (r *MySQLInvoiceDetailRepository) UpdateDetail(ctx context.Context, detail domain.InvoiceDetail) error {
	m := mapping.ToModelInvoiceDetail(detail)
	query := "UPDATE invoices_details SET customer_id = ?, date = ?, `order` = ?, loading = ?, returning = ?, " +
		"destination = ?, freight = ?, toll = ?, gas = ?, extra_expense = ?, driver_advance = ?, remark = ? WHERE id = ?"

	res, err := r.DB.ExecContext(ctx, query,
		m.CustomerID, m.Date, m.Order, m.Loading, m.Returning, m.Destination,
		m.Freight, m.Toll, m.Gas, m.ExtraExpense, m.DriverAdvance, m.Remark, m.ID,
	)
	if err != nil {
		return storeError(err, "failed to update detail %d", m.ID)
	}
	// MySQL reports 0 affected rows for an unchanged row, so confirm existence.
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError("failed to read affected rows", err)
	}
	if n > 0 {
		return nil
	}
	var exists int
	err = r.DB.QueryRowContext(ctx, "SELECT 1 FROM invoices_details WHERE id = ?", m.ID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewNotFoundError("invoice detail %d not found", m.ID)
	}
	if err != nil {
		return storeError(err, "failed to check detail %d", m.ID)
	}
	return nil
}

func (r *MySQLInvoiceDetailRepository) DeleteDetail(ctx context.Context, detailID int64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM invoices_details WHERE id = ?", detailID)
	if err != nil {
		return storeError(err, "failed to delete detail %d", detailID)
	}
	return rowsAffected(res, func() error {
		return apperrors.NewNotFoundError("invoice detail %d not found", detailID)
	})
}

// ImportDetails inserts the rows in one transaction, creating missing customers.
func (r *MySQLInvoiceDetailRepository) ImportDetails(ctx context.Context, invoiceID int64, rows []domain.ImportRow) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(tx) }()

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

		_, err = tx.ExecContext(ctx, insertDetail,
			invoiceID, customerID, row.Date, row.Order, row.Pickup, row.ReturnLoc, row.Goods,
			row.Freight, 0, 0, 0, 0, "",
		)
		if err != nil {
			return 0, storeError(err, "failed to import detail into invoice %d", invoiceID)
		}
	}

	if err := r.Commit(tx); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func findOrCreateCustomer(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, "SELECT id FROM customers WHERE name = ? ORDER BY id LIMIT 1", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, storeError(err, "failed to look up customer %q", name)
	}
	res, err := tx.ExecContext(ctx, "INSERT INTO customers (name) VALUES (?)", name)
	if err != nil {
		return 0, storeError(err, "failed to create customer %q", name)
	}
	if id, err = res.LastInsertId(); err != nil {
		return 0, storeError(err, "failed to read id of customer %q", name)
	}
	return id, nil
}
