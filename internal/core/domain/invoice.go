package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
)

// Invoice groups the trips of one truck for one calendar month.
type Invoice struct {
	ID          int64     `json:"id"`
	TruckID     int64     `json:"truckID"`
	TruckNumber string    `json:"truckNumber"` // Joined from trucks, may be empty on write paths
	Month       time.Time `json:"month"`       // Always the first day of the month
}

// MonthKey returns the invoice month as YYYY-MM.
func (i Invoice) MonthKey() string {
	return i.Month.Format("2006-01")
}

// TruckInvoices is the invoice history of a single truck.
type TruckInvoices struct {
	Truck    Truck     `json:"truck"`
	Invoices []Invoice `json:"invoices"`
}

// ParseInvoiceMonth reads YYYY-MM or YYYY-MM-DD and returns the first day of that month in UTC.
func ParseInvoiceMonth(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("invalid month %q: expected YYYY-MM", s)
}
