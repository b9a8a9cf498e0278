package handlers_test

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TruckService ---
type MockTruckService struct {
	mock.Mock
}

func (m *MockTruckService) ListTrucks(ctx context.Context) ([]domain.Truck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Truck), args.Error(1)
}
func (m *MockTruckService) GetTruckByID(ctx context.Context, truckID int64) (*domain.Truck, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}
func (m *MockTruckService) CreateTruck(ctx context.Context, req dto.CreateTruckRequest) (*domain.Truck, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}

var _ portssvc.TruckSvcFacade = (*MockTruckService)(nil)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) SearchCustomers(ctx context.Context, fragment string) ([]domain.Customer, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoicesByTruck(ctx context.Context, truckID int64) (*domain.TruckInvoices, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TruckInvoices), args.Error(1)
}
func (m *MockInvoiceService) GetInvoiceWithTruck(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock InvoiceDetailService ---
type MockInvoiceDetailService struct {
	mock.Mock
}

func (m *MockInvoiceDetailService) ListAllLineItems(ctx context.Context) ([]domain.InvoiceLineItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLineItem), args.Error(1)
}
func (m *MockInvoiceDetailService) ListDetailsByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceDetail, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceDetail), args.Error(1)
}
func (m *MockInvoiceDetailService) CreateDetail(ctx context.Context, req dto.CreateInvoiceDetailRequest) (*domain.InvoiceDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.Error(1)
}
func (m *MockInvoiceDetailService) UpdateDetail(ctx context.Context, detailID int64, req dto.UpdateInvoiceDetailRequest) (*domain.InvoiceDetail, error) {
	args := m.Called(ctx, detailID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.Error(1)
}
func (m *MockInvoiceDetailService) DeleteDetail(ctx context.Context, detailID int64) error {
	args := m.Called(ctx, detailID)
	return args.Error(0)
}
func (m *MockInvoiceDetailService) BulkImport(ctx context.Context, req dto.BulkImportRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

var _ portssvc.InvoiceDetailSvcFacade = (*MockInvoiceDetailService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Dashboard(ctx context.Context, filter domain.Filter) (*domain.DashboardReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardReport), args.Error(1)
}
func (m *MockReportingService) InvoiceReport(ctx context.Context, invoiceID int64) (*domain.Invoice, *domain.DashboardReport, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Invoice), args.Get(1).(*domain.DashboardReport), args.Error(2)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) InvoiceWorkbook(ctx context.Context, invoiceID int64) (*domain.ExportFile, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}
func (m *MockExportService) SummaryWorkbook(ctx context.Context, year, month string, truckID int64) (*domain.ExportFile, error) {
	args := m.Called(ctx, year, month, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}
func (m *MockExportService) InvoicePDF(ctx context.Context, invoiceID int64) (*domain.ExportFile, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}

var _ portssvc.ExportService = (*MockExportService)(nil)
