package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/truck_invoice_app/internal/models"
	"github.com/SscSPs/truck_invoice_app/internal/utils/mapping"
)

const selectInvoiceWithTruck = "SELECT i.id, i.truck_id, COALESCE(t.truck_number, ''), i.month " +
	"FROM invoices i LEFT JOIN trucks t ON t.id = i.truck_id"

type MySQLInvoiceRepository struct {
	BaseRepository
}

func newMySQLInvoiceRepository(db *sql.DB) portsrepo.InvoiceRepositoryFacade {
	return &MySQLInvoiceRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*MySQLInvoiceRepository)(nil)

func (r *MySQLInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return r.queryInvoices(ctx, selectInvoiceWithTruck+" ORDER BY i.month DESC, i.id DESC")
}

func (r *MySQLInvoiceRepository) ListInvoicesByTruck(ctx context.Context, truckID int64) ([]domain.Invoice, error) {
	return r.queryInvoices(ctx, selectInvoiceWithTruck+" WHERE i.truck_id = ? ORDER BY i.month DESC", truckID)
}

func (r *MySQLInvoiceRepository) FindInvoiceWithTruck(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	var m models.Invoice
	err := r.DB.QueryRowContext(ctx, selectInvoiceWithTruck+" WHERE i.id = ?", invoiceID).
		Scan(&m.ID, &m.TruckID, &m.TruckNumber, &m.Month)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invoice %d not found", invoiceID)
		}
		return nil, storeError(err, "failed to find invoice %d", invoiceID)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

func (r *MySQLInvoiceRepository) ExistsForTruckMonth(ctx context.Context, truckID int64, month time.Time) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM invoices WHERE truck_id = ? AND YEAR(month) = ? AND MONTH(month) = ?",
		truckID, month.Year(), int(month.Month()),
	).Scan(&count)
	if err != nil {
		return false, storeError(err, "failed to check invoice month for truck %d", truckID)
	}
	return count > 0, nil
}

func (r *MySQLInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	m := mapping.ToModelInvoice(invoice)
	res, err := r.DB.ExecContext(ctx, "INSERT INTO invoices (truck_id, month) VALUES (?, ?)", m.TruckID, m.Month)
	if err != nil {
		return nil, storeError(err, "failed to save invoice for truck %d", m.TruckID)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return nil, storeError(err, "failed to read id of invoice for truck %d", m.TruckID)
	}
	saved := mapping.ToDomainInvoice(m)
	return &saved, nil
}

func (r *MySQLInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM invoices WHERE id = ?", invoiceID)
	if err != nil {
		return storeError(err, "failed to delete invoice %d", invoiceID)
	}
	return rowsAffected(res, func() error {
		return apperrors.NewNotFoundError("invoice %d not found", invoiceID)
	})
}

func (r *MySQLInvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query invoices")
	}
	defer rows.Close()

	modelInvoices := []models.Invoice{}
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(&m.ID, &m.TruckID, &m.TruckNumber, &m.Month); err != nil {
			return nil, storeError(err, "failed to scan invoices")
		}
		modelInvoices = append(modelInvoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate invoices")
	}
	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}
