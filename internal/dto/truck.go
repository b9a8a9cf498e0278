package dto

import "github.com/SscSPs/truck_invoice_app/internal/core/domain"

// CreateTruckRequest defines the data needed to register a truck.
type CreateTruckRequest struct {
	TruckNumber string `json:"truck_number" binding:"required,max=50"`
}

// TruckResponse defines the data returned for a truck.
type TruckResponse struct {
	ID          int64  `json:"id"`
	TruckNumber string `json:"truck_number"`
}

// ToTruckResponse converts a domain.Truck to TruckResponse DTO
func ToTruckResponse(t *domain.Truck) TruckResponse {
	return TruckResponse{ID: t.ID, TruckNumber: t.TruckNumber}
}

// ToListTruckResponse converts a slice of domain.Truck to a slice of TruckResponse DTOs
func ToListTruckResponse(trucks []domain.Truck) []TruckResponse {
	res := make([]TruckResponse, len(trucks))
	for i := range trucks {
		res[i] = ToTruckResponse(&trucks[i])
	}
	return res
}
