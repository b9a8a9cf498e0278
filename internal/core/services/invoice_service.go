package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	truckRepo   portsrepo.TruckReader
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, truckRepo portsrepo.TruckReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, truckRepo: truckRepo}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) ListInvoicesByTruck(ctx context.Context, truckID int64) (*domain.TruckInvoices, error) {
	truck, err := s.truckRepo.FindTruckByID(ctx, truckID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find truck for invoices", slog.Int64("truck_id", truckID))
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListInvoicesByTruck(ctx, truckID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices of truck", slog.Int64("truck_id", truckID))
		return nil, err
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	for i := range invoices {
		invoices[i].TruckNumber = truck.TruckNumber
	}

	return &domain.TruckInvoices{Truck: *truck, Invoices: invoices}, nil
}

func (s *invoiceService) GetInvoiceWithTruck(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceWithTruck(ctx, invoiceID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find invoice", slog.Int64("invoice_id", invoiceID))
		return nil, err
	}
	return invoice, nil
}

// CreateInvoice normalises the month to its first day and rejects a second
// invoice for the same truck and month.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	month, err := domain.ParseInvoiceMonth(req.Month)
	if err != nil {
		return nil, err
	}
	if req.TruckID <= 0 {
		return nil, apperrors.NewValidationError("truck_id is required")
	}

	truck, err := s.truckRepo.FindTruckByID(ctx, req.TruckID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find truck for new invoice", slog.Int64("truck_id", req.TruckID))
		return nil, err
	}

	exists, err := s.invoiceRepo.ExistsForTruckMonth(ctx, req.TruckID, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to check existing invoice", slog.Int64("truck_id", req.TruckID))
		return nil, err
	}
	if exists {
		return nil, apperrors.NewDuplicateError("truck %s already has an invoice for %s", truck.TruckNumber, month.Format("2006-01"))
	}

	invoice, err := s.invoiceRepo.SaveInvoice(ctx, domain.Invoice{TruckID: req.TruckID, Month: month})
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to save invoice", slog.Int64("truck_id", req.TruckID))
		return nil, err
	}
	invoice.TruckNumber = truck.TruckNumber

	s.LogInfo(ctx, "Invoice created",
		slog.Int64("invoice_id", invoice.ID),
		slog.Int64("truck_id", invoice.TruckID),
		slog.String("month", invoice.MonthKey()))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete invoice", slog.Int64("invoice_id", invoiceID))
		return err
	}
	s.LogInfo(ctx, "Invoice deleted", slog.Int64("invoice_id", invoiceID))
	return nil
}
