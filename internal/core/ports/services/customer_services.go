package services

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// SearchCustomers returns customers whose name contains the fragment.
	SearchCustomers(ctx context.Context, fragment string) ([]domain.Customer, error)

	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
