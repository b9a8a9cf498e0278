package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/adapters/pdf"
	"github.com/SscSPs/truck_invoice_app/internal/adapters/spreadsheet"
	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/core/services"
	"github.com/SscSPs/truck_invoice_app/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockLineItemRepo *MockLineItemRepository
	mockInvoiceRepo  *MockInvoiceRepository
	mockTruckRepo    *MockTruckRepository
	service          portssvc.ExportService
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockLineItemRepo = new(MockLineItemRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockTruckRepo = new(MockTruckRepository)

	statements, err := pdf.NewRenderer(accounting.DefaultWageRate, "")
	suite.Require().NoError(err)

	reporting := services.NewReportingService(suite.mockLineItemRepo, suite.mockInvoiceRepo)
	suite.service = services.NewExportService(reporting, suite.mockTruckRepo, spreadsheet.NewRenderer(accounting.DefaultWageRate), statements)
}

func (suite *ExportServiceTestSuite) expectInvoice(id int64) {
	invoice := &domain.Invoice{ID: id, TruckID: 1, TruckNumber: "70-1234", Month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	suite.mockInvoiceRepo.On("FindInvoiceWithTruck", mock.Anything, id).Return(invoice, nil).Once()
	suite.mockLineItemRepo.On("ListLineItems", mock.Anything, domain.LineItemQuery{InvoiceID: id}).Return(reportingItems()[:1], nil).Once()
}

func (suite *ExportServiceTestSuite) TestInvoiceWorkbook() {
	suite.expectInvoice(1)

	file, err := suite.service.InvoiceWorkbook(context.Background(), 1)

	suite.Require().NoError(err)
	suite.Equal("70-1234_2024-01.xlsx", file.Name)
	suite.Equal(spreadsheet.ContentType, file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	suite.Require().NoError(err)
	defer f.Close()
	total, err := f.GetCellValue("Invoice Details", "H4", excelize.Options{RawCellValue: true})
	suite.Require().NoError(err)
	suite.Equal("1000", total)
}

func (suite *ExportServiceTestSuite) TestInvoiceWorkbook_NotFound() {
	suite.mockInvoiceRepo.On("FindInvoiceWithTruck", mock.Anything, int64(5)).Return(nil, apperrors.NewNotFoundError("invoice 5 not found")).Once()

	file, err := suite.service.InvoiceWorkbook(context.Background(), 5)

	suite.Nil(file)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExportServiceTestSuite) TestInvoicePDF() {
	suite.expectInvoice(2)

	file, err := suite.service.InvoicePDF(context.Background(), 2)

	suite.Require().NoError(err)
	suite.Equal("70-1234_2024-01.pdf", file.Name)
	suite.True(bytes.HasPrefix(file.Content, []byte("%PDF-")))
}

func (suite *ExportServiceTestSuite) TestSummaryWorkbook_ResolvesTruck() {
	suite.mockTruckRepo.On("FindTruckByID", mock.Anything, int64(2)).Return(&domain.Truck{ID: 2, TruckNumber: "80-5555"}, nil).Once()
	suite.mockLineItemRepo.On("ListLineItems", mock.Anything, domain.LineItemQuery{}).Return(reportingItems(), nil).Once()

	file, err := suite.service.SummaryWorkbook(context.Background(), "2024", "2", 2)

	suite.Require().NoError(err)
	suite.Equal("summary_80-5555_2024-02.xlsx", file.Name)
}

func (suite *ExportServiceTestSuite) TestSummaryWorkbook_AllTrucks() {
	suite.mockLineItemRepo.On("ListLineItems", mock.Anything, domain.LineItemQuery{}).Return(reportingItems(), nil).Once()

	file, err := suite.service.SummaryWorkbook(context.Background(), "", "", 0)

	suite.Require().NoError(err)
	suite.Equal("summary_all_all.xlsx", file.Name)
	suite.mockTruckRepo.AssertNotCalled(suite.T(), "FindTruckByID", mock.Anything, mock.Anything)
}

func (suite *ExportServiceTestSuite) TestSummaryWorkbook_UnknownTruck() {
	suite.mockTruckRepo.On("FindTruckByID", mock.Anything, int64(9)).Return(nil, apperrors.NewNotFoundError("truck 9 not found")).Once()

	file, err := suite.service.SummaryWorkbook(context.Background(), "2024", "", 9)

	suite.Nil(file)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
