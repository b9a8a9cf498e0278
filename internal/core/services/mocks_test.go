package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock TruckRepository ---
type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) ListTrucks(ctx context.Context) ([]domain.Truck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Truck), args.Error(1)
}

func (m *MockTruckRepository) FindTruckByID(ctx context.Context, truckID int64) (*domain.Truck, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}

func (m *MockTruckRepository) SaveTruck(ctx context.Context, truck domain.Truck) (*domain.Truck, error) {
	args := m.Called(ctx, truck)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SearchCustomersByName(ctx context.Context, fragment string) ([]domain.Customer, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByTruck(ctx context.Context, truckID int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceWithTruck(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsForTruckMonth(ctx context.Context, truckID int64, month time.Time) (bool, error) {
	args := m.Called(ctx, truckID, month)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Mock InvoiceDetailRepository ---
type MockInvoiceDetailRepository struct {
	mock.Mock
}

func (m *MockInvoiceDetailRepository) ListDetailsByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceDetail, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceDetailRepository) SaveDetail(ctx context.Context, detail domain.InvoiceDetail) (*domain.InvoiceDetail, error) {
	args := m.Called(ctx, detail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceDetailRepository) UpdateDetail(ctx context.Context, detail domain.InvoiceDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockInvoiceDetailRepository) DeleteDetail(ctx context.Context, detailID int64) error {
	args := m.Called(ctx, detailID)
	return args.Error(0)
}

func (m *MockInvoiceDetailRepository) ImportDetails(ctx context.Context, invoiceID int64, rows []domain.ImportRow) (int, error) {
	args := m.Called(ctx, invoiceID, rows)
	return args.Int(0), args.Error(1)
}

// --- Mock LineItemRepository ---
type MockLineItemRepository struct {
	mock.Mock
}

func (m *MockLineItemRepository) ListLineItems(ctx context.Context, query domain.LineItemQuery) ([]domain.InvoiceLineItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLineItem), args.Error(1)
}

func strPtr(s string) *string { return &s }
