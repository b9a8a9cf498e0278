package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func may2024() time.Time {
	return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *HandlersTestSuite) TestCreateInvoice_Success() {
	req := dto.CreateInvoiceRequest{Month: "2024-05", TruckID: 1}
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, req).
		Return(&domain.Invoice{ID: 42, TruckID: 1, TruckNumber: "70-1234", Month: may2024()}, nil).Once()

	w := suite.serve(http.MethodPost, "/api/invoices/add", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.decode(w, &resp)
	suite.Equal(dto.InvoiceResponse{ID: 42, TruckID: 1, TruckNumber: "70-1234", Month: "2024-05-01"}, resp)
}

func (suite *HandlersTestSuite) TestCreateInvoice_InvalidMonth() {
	w := suite.serve(http.MethodPost, "/api/invoices/add", map[string]any{"month": "May 2024", "truck_id": 1})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "yearmonth")
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateInvoice_DuplicateMonth() {
	req := dto.CreateInvoiceRequest{Month: "2024-05-17", TruckID: 1}
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, req).
		Return(nil, apperrors.NewDuplicateError("invoice for truck %d in %s already exists", 1, "2024-05")).Once()

	w := suite.serve(http.MethodPost, "/api/invoices/add", req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorMessage(w), "already exists")
}

func (suite *HandlersTestSuite) TestCreateInvoice_UnknownTruck() {
	req := dto.CreateInvoiceRequest{Month: "2024-05", TruckID: 99}
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, req).
		Return(nil, apperrors.NewNotFoundError("truck %d not found", 99)).Once()

	w := suite.serve(http.MethodPost, "/api/invoices/add", req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestListInvoicesByTruck() {
	suite.mockInvoiceService.On("ListInvoicesByTruck", mock.Anything, int64(1)).Return(&domain.TruckInvoices{
		Truck:    domain.Truck{ID: 1, TruckNumber: "70-1234"},
		Invoices: []domain.Invoice{{ID: 42, TruckID: 1, TruckNumber: "70-1234", Month: may2024()}},
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/invoices/byTruck/1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TruckInvoicesResponse
	suite.decode(w, &resp)
	suite.Equal("70-1234", resp.TruckNumber)
	suite.Require().Len(resp.Invoices, 1)
	suite.Equal("2024-05-01", resp.Invoices[0].Month)
}

func (suite *HandlersTestSuite) TestGetInvoiceWithTruck_NotFound() {
	suite.mockInvoiceService.On("GetInvoiceWithTruck", mock.Anything, int64(7)).
		Return(nil, apperrors.NewNotFoundError("invoice %d not found", 7)).Once()

	w := suite.serve(http.MethodGet, "/api/invoices/get/withTruck/7", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("invoice 7 not found", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestListInvoices() {
	suite.mockInvoiceService.On("ListInvoices", mock.Anything).
		Return([]domain.Invoice{{ID: 1, TruckID: 2, TruckNumber: "80-1111", Month: may2024()}}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/invoices", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"id":1,"truck_id":2,"truck_number":"80-1111","month":"2024-05-01"}]`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteInvoice() {
	suite.mockInvoiceService.On("DeleteInvoice", mock.Anything, int64(42)).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/invoices/delete/42", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteInvoice_InvalidID() {
	w := suite.serve(http.MethodDelete, "/api/invoices/delete/0", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything)
}
