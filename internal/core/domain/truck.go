package domain

// Truck is a vehicle the company invoices work for, identified by its plate number.
type Truck struct {
	ID          int64  `json:"id"`
	TruckNumber string `json:"truckNumber"` // Plate number, unique
}
