package mapping

import (
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/models"
)

// ToModelTruck converts a domain Truck to a model Truck
func ToModelTruck(d domain.Truck) models.Truck {
	return models.Truck{ID: d.ID, TruckNumber: d.TruckNumber}
}

// ToDomainTruck converts a model Truck to a domain Truck
func ToDomainTruck(m models.Truck) domain.Truck {
	return domain.Truck{ID: m.ID, TruckNumber: m.TruckNumber}
}

// ToDomainTruckSlice converts a slice of model Trucks to a slice of domain Trucks
func ToDomainTruckSlice(ms []models.Truck) []domain.Truck {
	ds := make([]domain.Truck, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTruck(m)
	}
	return ds
}

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{ID: d.ID, Name: d.Name}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{ID: m.ID, Name: m.Name}
}

// ToDomainCustomerSlice converts a slice of model Customers to a slice of domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
