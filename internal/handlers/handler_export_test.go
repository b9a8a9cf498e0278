package handlers_test

import (
	"net/http"

	"github.com/SscSPs/truck_invoice_app/internal/adapters/pdf"
	"github.com/SscSPs/truck_invoice_app/internal/adapters/spreadsheet"
	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestExportInvoiceWorkbook() {
	suite.mockExportService.On("InvoiceWorkbook", mock.Anything, int64(42)).Return(&domain.ExportFile{
		Name:        "70-1234_2024-05.xlsx",
		ContentType: spreadsheet.ContentType,
		Content:     []byte("PK\x03\x04"),
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/excel/export/42", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(spreadsheet.ContentType, w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="70-1234_2024-05.xlsx"`, w.Header().Get("Content-Disposition"))
	suite.Equal([]byte("PK\x03\x04"), w.Body.Bytes())
}

func (suite *HandlersTestSuite) TestExportInvoiceWorkbook_ThaiFileName() {
	suite.mockExportService.On("InvoiceWorkbook", mock.Anything, int64(43)).Return(&domain.ExportFile{
		Name:        "กท-1234_2024-05.xlsx",
		ContentType: spreadsheet.ContentType,
		Content:     []byte("PK"),
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/excel/export/43", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "filename*=utf-8''")
}

func (suite *HandlersTestSuite) TestExportInvoiceWorkbook_NotFound() {
	suite.mockExportService.On("InvoiceWorkbook", mock.Anything, int64(404)).
		Return(nil, apperrors.NewNotFoundError("invoice %d not found", 404)).Once()

	w := suite.serve(http.MethodGet, "/api/excel/export/404", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Empty(w.Header().Get("Content-Disposition"))
}

func (suite *HandlersTestSuite) TestExportSummaryWorkbook() {
	suite.mockExportService.On("SummaryWorkbook", mock.Anything, "2024", "5", int64(3)).Return(&domain.ExportFile{
		Name:        "summary_70-1234_2024-05.xlsx",
		ContentType: spreadsheet.ContentType,
		Content:     []byte("PK"),
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/excel/summary?year=2024&month=5&truckId=3", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "summary_70-1234_2024-05.xlsx")
}

func (suite *HandlersTestSuite) TestExportSummaryWorkbook_AllTrucks() {
	suite.mockExportService.On("SummaryWorkbook", mock.Anything, "", "", int64(0)).Return(&domain.ExportFile{
		Name:        "summary_all_all.xlsx",
		ContentType: spreadsheet.ContentType,
		Content:     []byte("PK"),
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/excel/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestExportSummaryWorkbook_NegativeTruck() {
	w := suite.serve(http.MethodGet, "/api/excel/summary?truckId=-1", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExportService.AssertNotCalled(suite.T(), "SummaryWorkbook", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestExportInvoicePDF() {
	suite.mockExportService.On("InvoicePDF", mock.Anything, int64(42)).Return(&domain.ExportFile{
		Name:        "70-1234_2024-05.pdf",
		ContentType: pdf.ContentType,
		Content:     []byte("%PDF-1.3"),
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/pdf/export/42", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(pdf.ContentType, w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="70-1234_2024-05.pdf"`, w.Header().Get("Content-Disposition"))
}
