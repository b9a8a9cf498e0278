package handlers_test

import (
	"net/http"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestDashboard_PassesFilterAndRounds() {
	filter := domain.Filter{TruckNumber: "70-1234", Year: "2024", Month: "3"}
	report := &domain.DashboardReport{
		Filter: filter,
		Summary: domain.SummaryStatistics{
			Revenue:   decimal.RequireFromString("3000"),
			Expense:   decimal.RequireFromString("1114.005"),
			NetProfit: decimal.RequireFromString("1885.995"),
			ItemCount: 2,
		},
		Comparison: map[string]domain.TruckTotals{
			"70-1234": {Revenue: decimal.RequireFromString("3000"), Expense: decimal.RequireFromString("1114.005")},
		},
	}
	suite.mockReportingService.On("Dashboard", mock.Anything, filter).Return(report, nil).Once()

	w := suite.serve(http.MethodGet, "/api/dashboard?truckNumber=70-1234&year=2024&month=3", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	suite.decode(w, &resp)
	suite.Equal("70-1234", resp.Filter.TruckNumber)
	suite.Equal(2, resp.Summary.ItemCount)
	suite.True(resp.Summary.Expense.Equal(decimal.RequireFromString("1114.01")), resp.Summary.Expense.String())
	suite.True(resp.Comparison["70-1234"].Revenue.Equal(decimal.NewFromInt(3000)))
}

func (suite *HandlersTestSuite) TestDashboard_NoQueryMeansEverything() {
	suite.mockReportingService.On("Dashboard", mock.Anything, domain.Filter{}).
		Return(&domain.DashboardReport{Filter: domain.Filter{TruckNumber: "all", Year: "all", Month: "all"}}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/dashboard", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	suite.decode(w, &resp)
	suite.Equal("all", resp.Filter.Year)
}

func (suite *HandlersTestSuite) TestDashboard_InvalidMonth() {
	filter := domain.Filter{Year: "2024", Month: "13"}
	suite.mockReportingService.On("Dashboard", mock.Anything, filter).
		Return(nil, apperrors.NewValidationError("invalid month %q", "13")).Once()

	w := suite.serve(http.MethodGet, "/api/dashboard?year=2024&month=13", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}
