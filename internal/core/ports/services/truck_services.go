package services

import (
	"context"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
)

// TruckReaderSvc defines read operations for truck data
type TruckReaderSvc interface {
	ListTrucks(ctx context.Context) ([]domain.Truck, error)
	GetTruckByID(ctx context.Context, truckID int64) (*domain.Truck, error)
}

// TruckWriterSvc defines write operations for truck data
type TruckWriterSvc interface {
	CreateTruck(ctx context.Context, req dto.CreateTruckRequest) (*domain.Truck, error)
}

// TruckSvcFacade combines all truck-related service interfaces
type TruckSvcFacade interface {
	TruckReaderSvc
	TruckWriterSvc
}
