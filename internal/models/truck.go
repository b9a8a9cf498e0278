package models

// Truck is a row of the trucks table.
type Truck struct {
	ID          int64  `db:"id"`
	TruckNumber string `db:"truck_number"`
}

// Customer is a row of the customers table.
type Customer struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
