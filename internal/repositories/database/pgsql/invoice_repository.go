package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/truck_invoice_app/internal/models"
	"github.com/SscSPs/truck_invoice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectInvoiceWithTruck = `
	SELECT i.id, i.truck_id, COALESCE(t.truck_number, ''), i.month
	FROM invoices i
	LEFT JOIN trucks t ON t.id = i.truck_id`

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// ListInvoices retrieves all invoices with their truck number, newest month first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return r.queryInvoices(ctx, selectInvoiceWithTruck+` ORDER BY i.month DESC, i.id DESC;`)
}

func (r *PgxInvoiceRepository) ListInvoicesByTruck(ctx context.Context, truckID int64) ([]domain.Invoice, error) {
	return r.queryInvoices(ctx, selectInvoiceWithTruck+` WHERE i.truck_id = $1 ORDER BY i.month DESC;`, truckID)
}

func (r *PgxInvoiceRepository) FindInvoiceWithTruck(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	var m models.Invoice
	err := r.Pool.QueryRow(ctx, selectInvoiceWithTruck+` WHERE i.id = $1;`, invoiceID).
		Scan(&m.ID, &m.TruckID, &m.TruckNumber, &m.Month)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invoice %d not found", invoiceID)
		}
		return nil, storeError(err, "failed to find invoice %d", invoiceID)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// ExistsForTruckMonth checks the calendar month of month, whatever its day.
func (r *PgxInvoiceRepository) ExistsForTruckMonth(ctx context.Context, truckID int64, month time.Time) (bool, error) {
	var exists bool
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM invoices
			WHERE truck_id = $1 AND month >= $2 AND month < $3
		);`,
		truckID, start, start.AddDate(0, 1, 0),
	).Scan(&exists)
	if err != nil {
		return false, storeError(err, "failed to check invoice month for truck %d", truckID)
	}
	return exists, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	m := mapping.ToModelInvoice(invoice)
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO invoices (truck_id, month) VALUES ($1, $2) RETURNING id;`,
		m.TruckID, m.Month,
	).Scan(&m.ID)
	if err != nil {
		return nil, storeError(err, "failed to save invoice for truck %d", m.TruckID)
	}
	saved := mapping.ToDomainInvoice(m)
	return &saved, nil
}

// DeleteInvoice removes an invoice; its details go with it (ON DELETE CASCADE).
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1;`, invoiceID)
	if err != nil {
		return storeError(err, "failed to delete invoice %d", invoiceID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice %d not found", invoiceID)
	}
	return nil
}

func (r *PgxInvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query invoices")
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		var m models.Invoice
		err := row.Scan(&m.ID, &m.TruckID, &m.TruckNumber, &m.Month)
		return m, err
	})
	if err != nil {
		return nil, storeError(err, "failed to scan invoices")
	}
	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}
