package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	lineItemRepo portsrepo.LineItemReader
	invoiceRepo  portsrepo.InvoiceReader
	rules        accounting.Rules
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithRules replaces the default wage and classification rules.
func WithRules(rules accounting.Rules) ReportingServiceOption {
	return func(s *reportingService) {
		s.rules = rules
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(lineItemRepo portsrepo.LineItemReader, invoiceRepo portsrepo.InvoiceReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		lineItemRepo: lineItemRepo,
		invoiceRepo:  invoiceRepo,
		rules:        accounting.DefaultRules(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// Dashboard aggregates every stored line item matching filter. A malformed
// filter fails before the store is read.
func (s *reportingService) Dashboard(ctx context.Context, filter domain.Filter) (*domain.DashboardReport, error) {
	f, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	items, err := s.lineItemRepo.ListLineItems(ctx, domain.LineItemQuery{})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve line items for dashboard")
		return nil, err
	}

	report, err := accounting.Aggregate(s.rules, items, f)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Dashboard report generated",
		slog.String("truck_number", f.TruckNumber),
		slog.String("year", f.Year),
		slog.String("month", f.Month),
		slog.Int("item_count", report.Summary.ItemCount))
	return report, nil
}

// InvoiceReport aggregates the line items of one invoice with an all filter.
func (s *reportingService) InvoiceReport(ctx context.Context, invoiceID int64) (*domain.Invoice, *domain.DashboardReport, error) {
	invoice, err := s.invoiceRepo.FindInvoiceWithTruck(ctx, invoiceID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find invoice for report", slog.Int64("invoice_id", invoiceID))
		return nil, nil, err
	}

	items, err := s.lineItemRepo.ListLineItems(ctx, domain.LineItemQuery{InvoiceID: invoiceID})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve line items for invoice", slog.Int64("invoice_id", invoiceID))
		return nil, nil, err
	}

	report, err := accounting.Aggregate(s.rules, items, domain.Filter{})
	if err != nil {
		return nil, nil, err
	}

	s.LogDebug(ctx, "Invoice report generated",
		slog.Int64("invoice_id", invoiceID),
		slog.Int("item_count", report.Summary.ItemCount))
	return invoice, report, nil
}
