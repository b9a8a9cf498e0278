package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table, optionally joined with trucks.
type Invoice struct {
	ID          int64     `db:"id"`
	TruckID     int64     `db:"truck_id"`
	TruckNumber string    `db:"truck_number"`
	Month       time.Time `db:"month"`
}

// InvoiceDetail is a row of the invoices_details table joined with customers.
// NULL amounts are read back as zero.
type InvoiceDetail struct {
	ID            int64           `db:"id"`
	InvoiceID     int64           `db:"invoice_id"`
	CustomerID    int64           `db:"customer_id"`
	CustomerName  string          `db:"customer_name"`
	Date          time.Time       `db:"date"`
	Order         string          `db:"order"`
	Loading       string          `db:"loading"`
	Returning     string          `db:"returning"`
	Destination   string          `db:"destination"`
	Freight       decimal.Decimal `db:"freight"`
	Toll          decimal.Decimal `db:"toll"`
	Gas           decimal.Decimal `db:"gas"`
	ExtraExpense  decimal.Decimal `db:"extra_expense"`
	DriverAdvance decimal.Decimal `db:"driver_advance"`
	Remark        string          `db:"remark"`
}

// LineItem is an invoices_details row joined with the truck of its invoice.
// Amounts and remark keep their stored text, nil for NULL.
type LineItem struct {
	ID            int64     `db:"id"`
	InvoiceID     int64     `db:"invoice_id"`
	Date          time.Time `db:"date"`
	TruckID       int64     `db:"truck_id"`
	TruckNumber   string    `db:"truck_number"`
	CustomerName  string    `db:"customer_name"`
	Order         string    `db:"order"`
	Loading       string    `db:"loading"`
	Returning     string    `db:"returning"`
	Destination   string    `db:"destination"`
	Freight       *string   `db:"freight"`
	Toll          *string   `db:"toll"`
	Gas           *string   `db:"gas"`
	ExtraExpense  *string   `db:"extra_expense"`
	DriverAdvance *string   `db:"driver_advance"`
	Remark        *string   `db:"remark"`
}
