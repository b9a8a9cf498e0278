package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
)

// WorkbookRenderer renders reports as spreadsheets.
type WorkbookRenderer interface {
	InvoiceWorkbook(invoice domain.Invoice, report *domain.DashboardReport) (*domain.ExportFile, error)
	SummaryWorkbook(report *domain.DashboardReport) (*domain.ExportFile, error)
}

// StatementRenderer renders an invoice report as a printable statement.
type StatementRenderer interface {
	InvoiceStatement(invoice domain.Invoice, report *domain.DashboardReport) (*domain.ExportFile, error)
}

type exportService struct {
	BaseService
	reporting  portssvc.ReportingService
	truckRepo  portsrepo.TruckReader
	workbooks  WorkbookRenderer
	statements StatementRenderer
}

// NewExportService creates an export service. Every document is rendered from
// a report produced by the reporting service.
func NewExportService(reporting portssvc.ReportingService, truckRepo portsrepo.TruckReader, workbooks WorkbookRenderer, statements StatementRenderer) portssvc.ExportService {
	return &exportService{
		reporting:  reporting,
		truckRepo:  truckRepo,
		workbooks:  workbooks,
		statements: statements,
	}
}

var _ portssvc.ExportService = (*exportService)(nil)

func (s *exportService) InvoiceWorkbook(ctx context.Context, invoiceID int64) (*domain.ExportFile, error) {
	invoice, report, err := s.reporting.InvoiceReport(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	file, err := s.workbooks.InvoiceWorkbook(*invoice, report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render invoice workbook", slog.Int64("invoice_id", invoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice workbook exported", slog.Int64("invoice_id", invoiceID), slog.String("file", file.Name))
	return file, nil
}

// SummaryWorkbook resolves truckID to its number, then exports the dashboard
// for that truck (or all trucks when truckID is zero).
func (s *exportService) SummaryWorkbook(ctx context.Context, year, month string, truckID int64) (*domain.ExportFile, error) {
	truckNumber := domain.FilterAll
	if truckID > 0 {
		truck, err := s.truckRepo.FindTruckByID(ctx, truckID)
		if err != nil {
			s.LogUnexpected(ctx, err, "Failed to find truck for summary export", slog.Int64("truck_id", truckID))
			return nil, err
		}
		truckNumber = truck.TruckNumber
	}

	report, err := s.reporting.Dashboard(ctx, domain.Filter{TruckNumber: truckNumber, Year: year, Month: month})
	if err != nil {
		return nil, err
	}

	file, err := s.workbooks.SummaryWorkbook(report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render summary workbook", slog.Int64("truck_id", truckID))
		return nil, err
	}

	s.LogInfo(ctx, "Summary workbook exported", slog.String("file", file.Name))
	return file, nil
}

func (s *exportService) InvoicePDF(ctx context.Context, invoiceID int64) (*domain.ExportFile, error) {
	invoice, report, err := s.reporting.InvoiceReport(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	file, err := s.statements.InvoiceStatement(*invoice, report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render invoice statement", slog.Int64("invoice_id", invoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice statement exported", slog.Int64("invoice_id", invoiceID), slog.String("file", file.Name))
	return file, nil
}
