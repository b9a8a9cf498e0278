package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/handlers"
	"github.com/SscSPs/truck_invoice_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(ping handlers.PingFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Truck:         new(MockTruckService),
		Customer:      new(MockCustomerService),
		Invoice:       new(MockInvoiceService),
		InvoiceDetail: new(MockInvoiceDetailService),
		Reporting:     new(MockReportingService),
		Export:        new(MockExportService),
	}, nil, ping)
	return r
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		ping       handlers.PingFunc
		wantStatus int
		wantBody   string
	}{
		{"no database check", nil, http.StatusOK, "OK"},
		{"database up", func(context.Context) error { return nil }, http.StatusOK, "OK"},
		{"database down", func(context.Context) error { return errors.New("dial tcp: refused") }, http.StatusServiceUnavailable, "Database unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(tt.ping).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRegisterRoutes_NoSwaggerInProduction(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
