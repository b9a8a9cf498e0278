package repositories

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// SearchCustomersByName returns customers whose name contains fragment.
	SearchCustomersByName(ctx context.Context, fragment string) ([]domain.Customer, error)

	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
