package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/SscSPs/truck_invoice_app/internal/ingest/clipboard"
	"github.com/shopspring/decimal"
)

type invoiceDetailService struct {
	BaseService
	detailRepo   portsrepo.InvoiceDetailRepositoryFacade
	invoiceRepo  portsrepo.InvoiceReader
	lineItemRepo portsrepo.LineItemReader
}

// NewInvoiceDetailService creates a new invoice detail service
func NewInvoiceDetailService(
	detailRepo portsrepo.InvoiceDetailRepositoryFacade,
	invoiceRepo portsrepo.InvoiceReader,
	lineItemRepo portsrepo.LineItemReader,
) portssvc.InvoiceDetailSvcFacade {
	return &invoiceDetailService{
		detailRepo:   detailRepo,
		invoiceRepo:  invoiceRepo,
		lineItemRepo: lineItemRepo,
	}
}

var _ portssvc.InvoiceDetailSvcFacade = (*invoiceDetailService)(nil)

func (s *invoiceDetailService) ListAllLineItems(ctx context.Context) ([]domain.InvoiceLineItem, error) {
	items, err := s.lineItemRepo.ListLineItems(ctx, domain.LineItemQuery{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list line items")
		return nil, err
	}
	if items == nil {
		return []domain.InvoiceLineItem{}, nil
	}
	return items, nil
}

func (s *invoiceDetailService) ListDetailsByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceDetail, error) {
	details, err := s.detailRepo.ListDetailsByInvoice(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice details", slog.Int64("invoice_id", invoiceID))
		return nil, err
	}
	if details == nil {
		return []domain.InvoiceDetail{}, nil
	}
	return details, nil
}

func (s *invoiceDetailService) CreateDetail(ctx context.Context, req dto.CreateInvoiceDetailRequest) (*domain.InvoiceDetail, error) {
	if req.InvoiceID <= 0 {
		return nil, apperrors.NewValidationError("invoice_id is required")
	}
	detail, err := detailFromRequest(req.InvoiceDetailRequest)
	if err != nil {
		return nil, err
	}
	detail.InvoiceID = req.InvoiceID

	saved, err := s.detailRepo.SaveDetail(ctx, detail)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to save invoice detail", slog.Int64("invoice_id", req.InvoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice detail created", slog.Int64("detail_id", saved.ID), slog.Int64("invoice_id", saved.InvoiceID))
	return saved, nil
}

func (s *invoiceDetailService) UpdateDetail(ctx context.Context, detailID int64, req dto.UpdateInvoiceDetailRequest) (*domain.InvoiceDetail, error) {
	detail, err := detailFromRequest(req.InvoiceDetailRequest)
	if err != nil {
		return nil, err
	}
	detail.ID = detailID

	if err := s.detailRepo.UpdateDetail(ctx, detail); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update invoice detail", slog.Int64("detail_id", detailID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice detail updated", slog.Int64("detail_id", detailID))
	return &detail, nil
}

func (s *invoiceDetailService) DeleteDetail(ctx context.Context, detailID int64) error {
	if err := s.detailRepo.DeleteDetail(ctx, detailID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete invoice detail", slog.Int64("detail_id", detailID))
		return err
	}
	s.LogInfo(ctx, "Invoice detail deleted", slog.Int64("detail_id", detailID))
	return nil
}

// BulkImport accepts either structured rows or a raw clipboard paste. Nothing
// is written unless every row is valid and the invoice exists.
func (s *invoiceDetailService) BulkImport(ctx context.Context, req dto.BulkImportRequest) (int, error) {
	if req.InvoiceID <= 0 {
		return 0, apperrors.NewValidationError("invoice_id is required")
	}

	var rows []domain.ImportRow
	var err error
	switch {
	case len(req.Rows) > 0:
		rows, err = importRowsFromRequest(req.Rows)
	case strings.TrimSpace(req.Raw) != "":
		rows, err = clipboard.Parse(req.Raw)
	default:
		err = apperrors.NewValidationError("rows or raw is required")
	}
	if err != nil {
		return 0, err
	}

	if _, err := s.invoiceRepo.FindInvoiceWithTruck(ctx, req.InvoiceID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to find invoice for import", slog.Int64("invoice_id", req.InvoiceID))
		return 0, err
	}

	inserted, err := s.detailRepo.ImportDetails(ctx, req.InvoiceID, rows)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to import invoice details", slog.Int64("invoice_id", req.InvoiceID), slog.Int("rows", len(rows)))
		return 0, err
	}

	s.LogInfo(ctx, "Invoice details imported", slog.Int64("invoice_id", req.InvoiceID), slog.Int("inserted", inserted))
	return inserted, nil
}

func detailFromRequest(req dto.InvoiceDetailRequest) (domain.InvoiceDetail, error) {
	if req.CustomerID <= 0 {
		return domain.InvoiceDetail{}, apperrors.NewValidationError("customer_id is required")
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		return domain.InvoiceDetail{}, apperrors.NewValidationError("invalid date %q: expected YYYY-MM-DD", req.Date)
	}

	amounts := []struct {
		field  string
		amount decimal.Decimal
	}{
		{"freight", req.Freight},
		{"toll", req.Toll},
		{"gas", req.Gas},
		{"extra_expense", req.ExtraExpense},
		{"driver_advance", req.DriverAdvance},
	}
	for _, a := range amounts {
		if a.amount.IsNegative() {
			return domain.InvoiceDetail{}, apperrors.NewValidationError("%s must not be negative", a.field)
		}
	}

	return domain.InvoiceDetail{
		CustomerID:    req.CustomerID,
		Date:          date,
		Order:         strings.TrimSpace(req.Order),
		Loading:       strings.TrimSpace(req.Loading),
		Returning:     strings.TrimSpace(req.Returning),
		Destination:   strings.TrimSpace(req.Destination),
		Freight:       req.Freight,
		Toll:          req.Toll,
		Gas:           req.Gas,
		ExtraExpense:  req.ExtraExpense,
		DriverAdvance: req.DriverAdvance,
		Remark:        strings.TrimSpace(req.Remark),
	}, nil
}

func importRowsFromRequest(in []dto.BulkImportRow) ([]domain.ImportRow, error) {
	rows := make([]domain.ImportRow, 0, len(in))
	for i, r := range in {
		date, err := clipboard.ParseDate(r.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("row %d: invalid date %q", i+1, r.Date)
		}
		name := strings.TrimSpace(r.CustomerName)
		if name == "" {
			return nil, apperrors.NewValidationError("row %d: customer_name is required", i+1)
		}
		if r.Freight.IsNegative() {
			return nil, apperrors.NewValidationError("row %d: freight must not be negative", i+1)
		}
		rows = append(rows, domain.ImportRow{
			Date:         date,
			Order:        strings.TrimSpace(r.Order),
			CustomerName: name,
			Pickup:       strings.TrimSpace(r.Pickup),
			ReturnLoc:    strings.TrimSpace(r.ReturnLoc),
			Goods:        strings.TrimSpace(r.Goods),
			Freight:      r.Freight,
		})
	}
	return rows, nil
}
