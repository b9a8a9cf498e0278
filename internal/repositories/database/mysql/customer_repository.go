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

type MySQLCustomerRepository struct {
	BaseRepository
}

func newMySQLCustomerRepository(db *sql.DB) portsrepo.CustomerRepositoryFacade {
	return &MySQLCustomerRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CustomerRepositoryFacade = (*MySQLCustomerRepository)(nil)

func (r *MySQLCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return r.queryCustomers(ctx, "SELECT id, name FROM customers ORDER BY name")
}

// SearchCustomersByName relies on the column collation for case folding.
func (r *MySQLCustomerRepository) SearchCustomersByName(ctx context.Context, fragment string) ([]domain.Customer, error) {
	return r.queryCustomers(ctx,
		"SELECT id, name FROM customers WHERE name LIKE CONCAT('%', ?, '%') ORDER BY name",
		fragment,
	)
}

func (r *MySQLCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	var m models.Customer
	err := r.DB.QueryRowContext(ctx, "SELECT id, name FROM customers WHERE id = ?", customerID).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("customer %d not found", customerID)
		}
		return nil, storeError(err, "failed to find customer %d", customerID)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *MySQLCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)
	res, err := r.DB.ExecContext(ctx, "INSERT INTO customers (name) VALUES (?)", m.Name)
	if err != nil {
		return nil, storeError(err, "failed to save customer %q", m.Name)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return nil, storeError(err, "failed to read id of customer %q", m.Name)
	}
	saved := mapping.ToDomainCustomer(m)
	return &saved, nil
}

func (r *MySQLCustomerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query customers")
	}
	defer rows.Close()

	modelCustomers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, storeError(err, "failed to scan customers")
		}
		modelCustomers = append(modelCustomers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate customers")
	}
	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}
