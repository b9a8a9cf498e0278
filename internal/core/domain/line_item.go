package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineItem is an invoice detail row as read from the store for
// reporting, joined with the truck of its parent invoice. Amounts are kept
// in their stored textual form; nil means the column was NULL.
type InvoiceLineItem struct {
	ID            int64
	InvoiceID     int64
	Date          time.Time
	TruckID       int64
	TruckNumber   string
	CustomerName  string
	Order         string
	Loading       string
	Returning     string
	Destination   string
	Freight       *string
	Toll          *string
	Gas           *string
	ExtraExpense  *string
	DriverAdvance *string
	Remark        *string
}

// NormalizedLineItem is an InvoiceLineItem with every amount coerced to a
// non-negative decimal and the remark prepared for keyword matching.
type NormalizedLineItem struct {
	ID            int64
	InvoiceID     int64
	Date          time.Time
	TruckID       int64
	TruckNumber   string
	CustomerName  string
	Order         string
	Loading       string
	Returning     string
	Destination   string
	Freight       decimal.Decimal
	Toll          decimal.Decimal
	Gas           decimal.Decimal
	ExtraExpense  decimal.Decimal
	DriverAdvance decimal.Decimal
	Remark        string // Original text, trimmed, for display
	RemarkKey     string // Lower-cased remark used by keyword rules
}

// LineItemQuery narrows the rows fetched for reporting.
// A zero InvoiceID means every invoice.
type LineItemQuery struct {
	InvoiceID int64
}
