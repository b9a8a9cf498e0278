package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestListTrucks_Success() {
	suite.mockTruckService.On("ListTrucks", mock.Anything).
		Return([]domain.Truck{{ID: 1, TruckNumber: "70-1234"}, {ID: 2, TruckNumber: "70-5678"}}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/trucks", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TruckResponse
	suite.decode(w, &resp)
	suite.Equal([]dto.TruckResponse{{ID: 1, TruckNumber: "70-1234"}, {ID: 2, TruckNumber: "70-5678"}}, resp)
}

func (suite *HandlersTestSuite) TestListTrucks_StoreFailure() {
	suite.mockTruckService.On("ListTrucks", mock.Anything).
		Return(nil, apperrors.NewStoreError("failed to list trucks", errors.New("connection refused"))).Once()

	w := suite.serve(http.MethodGet, "/api/trucks", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(suite.errorMessage(w), "failed to list trucks")
}

func (suite *HandlersTestSuite) TestGetTruck_NotFound() {
	suite.mockTruckService.On("GetTruckByID", mock.Anything, int64(9)).
		Return(nil, apperrors.NewNotFoundError("truck %d not found", 9)).Once()

	w := suite.serve(http.MethodGet, "/api/trucks/9", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestGetTruck_InvalidID() {
	w := suite.serve(http.MethodGet, "/api/trucks/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("invalid truckId", suite.errorMessage(w))
	suite.mockTruckService.AssertNotCalled(suite.T(), "GetTruckByID")
}

func (suite *HandlersTestSuite) TestCreateTruck() {
	req := dto.CreateTruckRequest{TruckNumber: "70-1234"}
	suite.mockTruckService.On("CreateTruck", mock.Anything, req).
		Return(&domain.Truck{ID: 5, TruckNumber: "70-1234"}, nil).Once()

	w := suite.serve(http.MethodPost, "/api/trucks", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TruckResponse
	suite.decode(w, &resp)
	suite.Equal(int64(5), resp.ID)
}

func (suite *HandlersTestSuite) TestCreateTruck_MissingNumber() {
	w := suite.serve(http.MethodPost, "/api/trucks", map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "Invalid request body")
}

func (suite *HandlersTestSuite) TestCreateTruck_Duplicate() {
	req := dto.CreateTruckRequest{TruckNumber: "70-1234"}
	suite.mockTruckService.On("CreateTruck", mock.Anything, req).
		Return(nil, apperrors.NewDuplicateError("truck %s already exists", "70-1234")).Once()

	w := suite.serve(http.MethodPost, "/api/trucks", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestSearchCustomers() {
	suite.mockCustomerService.On("SearchCustomers", mock.Anything, "siam").
		Return([]domain.Customer{{ID: 3, Name: "Siam Logistics"}}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/customer/siam", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CustomerResponse
	suite.decode(w, &resp)
	suite.Equal([]dto.CustomerResponse{{ID: 3, Name: "Siam Logistics"}}, resp)
}

func (suite *HandlersTestSuite) TestGetCustomerByID() {
	suite.mockCustomerService.On("GetCustomerByID", mock.Anything, int64(3)).
		Return(&domain.Customer{ID: 3, Name: "Siam Logistics"}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/customer/byId/3", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCustomerService.AssertNotCalled(suite.T(), "SearchCustomers", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListCustomers_Empty() {
	suite.mockCustomerService.On("ListCustomers", mock.Anything).Return([]domain.Customer{}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/customer", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateCustomer() {
	req := dto.CreateCustomerRequest{Name: "ACME"}
	suite.mockCustomerService.On("CreateCustomer", mock.Anything, req).
		Return(&domain.Customer{ID: 11, Name: "ACME"}, nil).Once()

	w := suite.serve(http.MethodPost, "/api/customer/add", req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"id":11,"name":"ACME"}`, w.Body.String())
}
