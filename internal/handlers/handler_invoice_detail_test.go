package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func sampleDetail() *domain.InvoiceDetail {
	return &domain.InvoiceDetail{
		ID: 8, InvoiceID: 42, CustomerID: 3, CustomerName: "ACME",
		Date:    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Order:   "WO-1",
		Freight: decimal.NewFromInt(1500),
		Toll:    decimal.NewFromInt(120),
		Remark:  "ซ่อมยาง",
	}
}

func (suite *HandlersTestSuite) TestListAllLineItems_PassesRawAmounts() {
	suite.mockInvoiceDetailService.On("ListAllLineItems", mock.Anything).Return([]domain.InvoiceLineItem{
		{
			ID: 1, InvoiceID: 42, TruckID: 1, TruckNumber: "70-1234", CustomerName: "ACME",
			Date:    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			Freight: strPtr("1,500"), Toll: nil,
		},
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/invoiceDetails/all", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.LineItemResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 1)
	suite.Equal("1,500", *resp[0].Freight)
	suite.Nil(resp[0].Toll)
	suite.Equal("2024-05-02", resp[0].Date)
}

func (suite *HandlersTestSuite) TestListDetailsByInvoice() {
	suite.mockInvoiceDetailService.On("ListDetailsByInvoice", mock.Anything, int64(42)).
		Return([]domain.InvoiceDetail{*sampleDetail()}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/invoiceDetails/42", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.InvoiceDetailResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 1)
	suite.Equal("ACME", resp[0].CustomerName)
	suite.True(resp[0].Freight.Equal(decimal.NewFromInt(1500)))
}

func (suite *HandlersTestSuite) TestCreateDetail_Success() {
	suite.mockInvoiceDetailService.On("CreateDetail", mock.Anything, mock.MatchedBy(func(req dto.CreateInvoiceDetailRequest) bool {
		return req.InvoiceID == 42 &&
			req.CustomerID == 3 &&
			req.Date == "2024-05-02" &&
			req.Freight.Equal(decimal.NewFromInt(1500)) &&
			req.Toll.Equal(decimal.NewFromInt(120)) &&
			req.Gas.IsZero()
	})).Return(sampleDetail(), nil).Once()

	w := suite.serve(http.MethodPost, "/api/invoiceDetails/add", map[string]any{
		"invoice_id":  42,
		"customer_id": 3,
		"date":        "2024-05-02",
		"order":       "WO-1",
		"freight":     1500,
		"toll":        "120",
		"remark":      "ซ่อมยาง",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceDetailResponse
	suite.decode(w, &resp)
	suite.Equal(int64(8), resp.ID)
	suite.Equal("ซ่อมยาง", resp.Remark)
}

func (suite *HandlersTestSuite) TestCreateDetail_BadDate() {
	w := suite.serve(http.MethodPost, "/api/invoiceDetails/add", map[string]any{
		"invoice_id":  42,
		"customer_id": 3,
		"date":        "02/05/2024",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceDetailService.AssertNotCalled(suite.T(), "CreateDetail", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateDetail_NegativeAmount() {
	suite.mockInvoiceDetailService.On("CreateDetail", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("gas must not be negative")).Once()

	w := suite.serve(http.MethodPost, "/api/invoiceDetails/add", map[string]any{
		"invoice_id":  42,
		"customer_id": 3,
		"date":        "2024-05-02",
		"gas":         -10,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("gas must not be negative", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestUpdateDetail() {
	suite.mockInvoiceDetailService.On("UpdateDetail", mock.Anything, int64(8), mock.MatchedBy(func(req dto.UpdateInvoiceDetailRequest) bool {
		return req.CustomerID == 3 && req.Freight.Equal(decimal.NewFromInt(1600))
	})).Return(sampleDetail(), nil).Once()

	w := suite.serve(http.MethodPut, "/api/invoiceDetails/updateDetails/8", map[string]any{
		"customer_id": 3,
		"date":        "2024-05-02",
		"freight":     1600,
	})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateDetail_NotFound() {
	suite.mockInvoiceDetailService.On("UpdateDetail", mock.Anything, int64(404), mock.Anything).
		Return(nil, apperrors.NewNotFoundError("invoice detail %d not found", 404)).Once()

	w := suite.serve(http.MethodPut, "/api/invoiceDetails/updateDetails/404", map[string]any{
		"customer_id": 3,
		"date":        "2024-05-02",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteDetail() {
	suite.mockInvoiceDetailService.On("DeleteDetail", mock.Anything, int64(8)).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/invoiceDetails/delete/8", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestBulkImport_Rows() {
	suite.mockInvoiceDetailService.On("BulkImport", mock.Anything, mock.MatchedBy(func(req dto.BulkImportRequest) bool {
		return req.InvoiceID == 42 && len(req.Rows) == 2 && req.Rows[1].CustomerName == "Siam Logistics"
	})).Return(2, nil).Once()

	w := suite.serve(http.MethodPost, "/api/invoiceDetails/bulkImport", map[string]any{
		"invoice_id": 42,
		"rows": []map[string]any{
			{"date": "02/05/2024", "customer_name": "ACME", "freight": 1500},
			{"date": "03/05/2024", "customer_name": "Siam Logistics", "freight": "2000"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"inserted":2}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestBulkImport_RowMissingCustomer() {
	w := suite.serve(http.MethodPost, "/api/invoiceDetails/bulkImport", map[string]any{
		"invoice_id": 42,
		"rows":       []map[string]any{{"date": "02/05/2024"}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceDetailService.AssertNotCalled(suite.T(), "BulkImport", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestBulkImport_NothingToImport() {
	suite.mockInvoiceDetailService.On("BulkImport", mock.Anything, dto.BulkImportRequest{InvoiceID: 42}).
		Return(0, apperrors.NewValidationError("nothing to import")).Once()

	w := suite.serve(http.MethodPost, "/api/invoiceDetails/bulkImport", map[string]any{"invoice_id": 42})

	suite.Equal(http.StatusBadRequest, w.Code)
}
