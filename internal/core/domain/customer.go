package domain

// Customer is the party a trip is carried out for.
type Customer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
