package repositories

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
)

// TruckReader defines read operations for truck data
type TruckReader interface {
	// ListTrucks retrieves every truck ordered by id.
	ListTrucks(ctx context.Context) ([]domain.Truck, error)

	// FindTruckByID retrieves a truck, returning apperrors.ErrNotFound when absent.
	FindTruckByID(ctx context.Context, truckID int64) (*domain.Truck, error)
}

// TruckWriter defines write operations for truck data
type TruckWriter interface {
	// SaveTruck inserts a truck and returns it with its generated id.
	SaveTruck(ctx context.Context, truck domain.Truck) (*domain.Truck, error)
}

// TruckRepositoryFacade combines all truck-related repository interfaces
type TruckRepositoryFacade interface {
	TruckReader
	TruckWriter
}
