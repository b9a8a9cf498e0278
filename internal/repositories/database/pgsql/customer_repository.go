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

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return r.queryCustomers(ctx, `SELECT id, name FROM customers ORDER BY name;`)
}

// SearchCustomersByName matches name fragments case-insensitively.
func (r *PgxCustomerRepository) SearchCustomersByName(ctx context.Context, fragment string) ([]domain.Customer, error) {
	return r.queryCustomers(ctx,
		`SELECT id, name FROM customers WHERE name ILIKE '%' || $1 || '%' ORDER BY name;`,
		fragment,
	)
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	var m models.Customer
	err := r.Pool.QueryRow(ctx, `SELECT id, name FROM customers WHERE id = $1;`, customerID).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("customer %d not found", customerID)
		}
		return nil, storeError(err, "failed to find customer %d", customerID)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)
	if err := r.Pool.QueryRow(ctx, `INSERT INTO customers (name) VALUES ($1) RETURNING id;`, m.Name).Scan(&m.ID); err != nil {
		return nil, storeError(err, "failed to save customer %q", m.Name)
	}
	saved := mapping.ToDomainCustomer(m)
	return &saved, nil
}

func (r *PgxCustomerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query customers")
	}
	defer rows.Close()

	modelCustomers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Customer, error) {
		var c models.Customer
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, storeError(err, "failed to scan customers")
	}
	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}
