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

type truckService struct {
	BaseService
	truckRepo portsrepo.TruckRepositoryFacade
}

// NewTruckService creates a new truck service
func NewTruckService(repo portsrepo.TruckRepositoryFacade) portssvc.TruckSvcFacade {
	return &truckService{truckRepo: repo}
}

var _ portssvc.TruckSvcFacade = (*truckService)(nil)

func (s *truckService) ListTrucks(ctx context.Context) ([]domain.Truck, error) {
	trucks, err := s.truckRepo.ListTrucks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trucks")
		return nil, err
	}
	if trucks == nil {
		return []domain.Truck{}, nil
	}
	s.LogDebug(ctx, "Trucks listed", slog.Int("count", len(trucks)))
	return trucks, nil
}

func (s *truckService) GetTruckByID(ctx context.Context, truckID int64) (*domain.Truck, error) {
	truck, err := s.truckRepo.FindTruckByID(ctx, truckID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find truck", slog.Int64("truck_id", truckID))
		return nil, err
	}
	return truck, nil
}

func (s *truckService) CreateTruck(ctx context.Context, req dto.CreateTruckRequest) (*domain.Truck, error) {
	number := strings.TrimSpace(req.TruckNumber)
	if number == "" {
		return nil, apperrors.NewValidationError("truck_number is required")
	}

	truck, err := s.truckRepo.SaveTruck(ctx, domain.Truck{TruckNumber: number})
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to save truck", slog.String("truck_number", number))
		return nil, err
	}

	s.LogInfo(ctx, "Truck created", slog.Int64("truck_id", truck.ID), slog.String("truck_number", truck.TruckNumber))
	return truck, nil
}
