package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceDetail is one trip (line item) recorded under a monthly invoice.
type InvoiceDetail struct {
	ID            int64           `json:"id"`
	InvoiceID     int64           `json:"invoiceID"`
	CustomerID    int64           `json:"customerID"`
	CustomerName  string          `json:"customerName"` // Joined from customers, read only
	Date          time.Time       `json:"date"`
	Order         string          `json:"order"` // Work order number from the customer's sheet
	Loading       string          `json:"loading"`
	Returning     string          `json:"returning"`
	Destination   string          `json:"destination"`
	Freight       decimal.Decimal `json:"freight"`
	Toll          decimal.Decimal `json:"toll"`
	Gas           decimal.Decimal `json:"gas"`
	ExtraExpense  decimal.Decimal `json:"extraExpense"`
	DriverAdvance decimal.Decimal `json:"driverAdvance"`
	Remark        string          `json:"remark"`
}

// ImportRow is a single trip taken from a pasted customer statement.
// Customers are matched by exact name and created when missing.
type ImportRow struct {
	Date         time.Time
	Order        string
	CustomerName string
	Pickup       string
	ReturnLoc    string
	Goods        string
	Freight      decimal.Decimal
}
