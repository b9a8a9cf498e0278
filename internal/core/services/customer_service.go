package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: repo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

// SearchCustomers matches a name fragment; a blank fragment lists everyone.
func (s *customerService) SearchCustomers(ctx context.Context, fragment string) ([]domain.Customer, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return s.ListCustomers(ctx)
	}

	customers, err := s.customerRepo.SearchCustomersByName(ctx, fragment)
	if err != nil {
		s.LogError(ctx, err, "Failed to search customers", slog.String("fragment", fragment))
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	s.LogDebug(ctx, "Customers searched", slog.String("fragment", fragment), slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find customer", slog.Int64("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	customer, err := s.customerRepo.SaveCustomer(ctx, domain.Customer{Name: name})
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to save customer", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.Int64("customer_id", customer.ID))
	return customer, nil
}
