package dto

import "github.com/SscSPs/truck_invoice_app/internal/core/domain"

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name}
}

func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
